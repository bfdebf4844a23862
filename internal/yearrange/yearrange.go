// internal/yearrange/yearrange.go
package yearrange

import "fmt"

const (
	FirstYear = 1985
	LastYear  = 2023
)

// Bucket is an inclusive span of years stored together in one consolidated
// PMTiles archive, one "year_<year>" sub-layer per year.
type Bucket struct {
	Start int
	End   int
}

// Table is an ordered list of buckets, oldest first.
type Table []Bucket

// Buckets lists every published archive. The windows are contiguous and
// non-overlapping; the last one stops at LastYear and is only 4 years wide.
var Buckets = Table{
	{1985, 1989},
	{1990, 1994},
	{1995, 1999},
	{2000, 2004},
	{2005, 2009},
	{2010, 2014},
	{2015, 2019},
	{2020, 2023},
}

// ForYear returns the bucket of t containing year, bounds included.
func (t Table) ForYear(year int) (Bucket, bool) {
	for _, b := range t {
		if b.Contains(year) {
			return b, true
		}
	}
	return Bucket{}, false
}

// Span returns the first and last year covered by t. An empty table gives
// first > last.
func (t Table) Span() (first, last int) {
	if len(t) == 0 {
		return 0, -1
	}
	return t[0].Start, t[len(t)-1].End
}

// Contains reports whether year falls inside b, bounds included.
func (b Bucket) Contains(year int) bool { return b.Start <= year && year <= b.End }

// Name is the "<start>_<end>" form used inside style keys.
func (b Bucket) Name() string { return fmt.Sprintf("%d_%d", b.Start, b.End) }

// SourceKey is the style source id, "lulc_<start>_<end>".
func (b Bucket) SourceKey() string { return "lulc_" + b.Name() }

// ArchiveName is the hosted file name. It joins start and end with a hyphen,
// unlike Name and SourceKey: the published archives are named this way and
// the mismatch has to be kept.
func (b Bucket) ArchiveName() string {
	return fmt.Sprintf("lulc_%d-%d_ogr.pmtiles", b.Start, b.End)
}

// LayerID is the style layer id for a single year.
func LayerID(year int) string { return fmt.Sprintf("lulc%d", year) }

// SourceLayer names the per-year sub-layer inside an archive.
func SourceLayer(year int) string { return fmt.Sprintf("year_%d", year) }
