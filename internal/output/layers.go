// internal/output/layers.go
package output

import (
	"fmt"
	"io"

	"lulcgen/internal/jsonutil"
	"lulcgen/internal/yearrange"
	"lulcgen/pkg/api"
)

const (
	layerTypeFill = "fill"

	// Land cover classes carried in the DN feature property.
	classColor0 = "#7AB5AA"
	classColor1 = "#5D877F"
	otherColor  = "transparent"

	fillOpacity = 0.8
)

// FillColorExpr returns the categorical fill-color expression:
// DN 0 and 1 get their class colour, everything else is transparent.
// A fresh value is returned on each call.
func FillColorExpr() []any {
	return []any{
		"case",
		[]any{"==", []any{"get", "DN"}, 0}, classColor0,
		[]any{"==", []any{"get", "DN"}, 1}, classColor1,
		otherColor,
	}
}

// ToAPILayer builds the fill layer for year, drawn from the per-year
// sub-layer of bucket b's archive.
func ToAPILayer(year int, b yearrange.Bucket, visibility string) api.LayerV1 {
	return api.LayerV1{
		ID:          yearrange.LayerID(year),
		Type:        layerTypeFill,
		Source:      b.SourceKey(),
		SourceLayer: yearrange.SourceLayer(year),
		Layout:      api.LayoutV1{Visibility: visibility},
		Paint: api.FillPaintV1{
			FillColor:   FillColorExpr(),
			FillOpacity: fillOpacity,
		},
	}
}

// WriteLayers writes one complete layer object per year of the bucket
// table's span, oldest first, separated by "," lines. Years no bucket
// contains are skipped. It returns the number of layers written.
func WriteLayers(w io.Writer, cfg Config) (int, error) {
	log := cfg.logger()
	indent := jsonutil.Indent(cfg.Indent)
	list := newFragmentList(w)
	written := 0

	table := cfg.buckets()
	first, last := table.Span()
	for year := first; year <= last; year++ {
		b, ok := table.ForYear(year)
		if !ok {
			log.WithField("year", year).Debug("no archive for year, skipped")
			continue
		}
		if err := list.next(); err != nil {
			return written, err
		}
		if err := jsonutil.EncodePretty(w, ToAPILayer(year, b, cfg.Visibility), indent); err != nil {
			return written, fmt.Errorf("write layer %s: %w", yearrange.LayerID(year), err)
		}
		written++
	}
	log.WithField("layers", written).Debug("layers written")
	return written, nil
}
