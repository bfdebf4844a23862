package yearrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketsContiguous(t *testing.T) {
	require.Len(t, Buckets, 8)
	require.Equal(t, FirstYear, Buckets[0].Start)
	require.Equal(t, LastYear, Buckets[len(Buckets)-1].End)

	for i := 1; i < len(Buckets); i++ {
		assert.Equal(t, Buckets[i-1].End+1, Buckets[i].Start, "gap before %v", Buckets[i])
	}
}

func TestBucketEnds(t *testing.T) {
	want := map[int]int{
		1985: 1989, 1990: 1994, 1995: 1999, 2000: 2004,
		2005: 2009, 2010: 2014, 2015: 2019, 2020: 2023,
	}
	for _, b := range Buckets {
		assert.Equal(t, want[b.Start], b.End, "start %d", b.Start)
	}
}

func TestForYear(t *testing.T) {
	cases := []struct {
		year int
		name string
	}{
		{1985, "1985_1989"},
		{1989, "1985_1989"},
		{1990, "1990_1994"},
		{2004, "2000_2004"},
		{2019, "2015_2019"},
		{2020, "2020_2023"},
		{2023, "2020_2023"},
	}
	for _, tc := range cases {
		b, ok := Buckets.ForYear(tc.year)
		require.True(t, ok, "year %d", tc.year)
		assert.Equal(t, tc.name, b.Name(), "year %d", tc.year)
	}
}

func TestForYearOutOfSpan(t *testing.T) {
	for _, y := range []int{1900, 1984, 2024, 2025} {
		_, ok := Buckets.ForYear(y)
		assert.False(t, ok, "year %d", y)
	}
}

func TestEveryYearHasOneBucket(t *testing.T) {
	for y := FirstYear; y <= LastYear; y++ {
		n := 0
		for _, b := range Buckets {
			if b.Contains(y) {
				n++
			}
		}
		assert.Equal(t, 1, n, "year %d", y)
	}
}

func TestNaming(t *testing.T) {
	b := Bucket{2020, 2023}
	assert.Equal(t, "2020_2023", b.Name())
	assert.Equal(t, "lulc_2020_2023", b.SourceKey())
	assert.Equal(t, "lulc_2020-2023_ogr.pmtiles", b.ArchiveName())
	assert.Equal(t, "lulc2023", LayerID(2023))
	assert.Equal(t, "year_2023", SourceLayer(2023))
}

func TestSpan(t *testing.T) {
	first, last := Buckets.Span()
	assert.Equal(t, FirstYear, first)
	assert.Equal(t, LastYear, last)

	first, last = Table{}.Span()
	assert.Greater(t, first, last)
}

func TestTableWithGap(t *testing.T) {
	tbl := Table{{2000, 2001}, {2003, 2004}}
	_, ok := tbl.ForYear(2002)
	assert.False(t, ok)
	b, ok := tbl.ForYear(2003)
	require.True(t, ok)
	assert.Equal(t, "2003_2004", b.Name())
}
