// pkg/api/style_v1.go
package api

// SourceV1 is a MapLibre style source entry. It is emitted as the value of a
// "lulc_<start>_<end>" member of the style's "sources" object.
type SourceV1 struct {
	Type string `json:"type"` // "vector"
	URL  string `json:"url"`
}

// LayerV1 is a MapLibre style layer entry for a single year.
// Field order is the emitted key order; keep it stable.
type LayerV1 struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"` // "fill"
	Source      string      `json:"source"`
	SourceLayer string      `json:"source-layer"`
	Layout      LayoutV1    `json:"layout"`
	Paint       FillPaintV1 `json:"paint"`
}

type LayoutV1 struct {
	Visibility string `json:"visibility"` // "visible" | "none"
}

// FillPaintV1 holds paint properties of a fill layer. FillColor is a style
// expression, kept as nested arrays.
type FillPaintV1 struct {
	FillColor   []any   `json:"fill-color"`
	FillOpacity float64 `json:"fill-opacity"`
}
