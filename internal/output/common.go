package output

import (
	"github.com/sirupsen/logrus"

	"lulcgen/internal/yearrange"
)

// Generation modes. Keep these in sync with the usage line.
const (
	ModeSources = "sources"
	ModeLayers  = "layers"
)

// DefaultBaseURL is the directory the consolidated archives are published in.
const DefaultBaseURL = "https://markmclaren.github.io/Infracursions-demos/combined/pmtiles/consolidated"

// Layer visibility values accepted by MapLibre.
const (
	VisibilityVisible = "visible"
	VisibilityNone    = "none"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

// Config controls how fragments are rendered. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	BaseURL    string
	Indent     int
	Visibility string
	Log        logrus.FieldLogger

	// Buckets overrides the archive table; nil means yearrange.Buckets.
	Buckets yearrange.Table
}

// DefaultConfig reproduces the published style fragments exactly.
func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Indent:     DefaultIndent,
		Visibility: VisibilityVisible,
	}
}

func (c Config) logger() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func (c Config) buckets() yearrange.Table {
	if c.Buckets != nil {
		return c.Buckets
	}
	return yearrange.Buckets
}
