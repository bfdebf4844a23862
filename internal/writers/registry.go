// internal/writers/registry.go
package writers

import (
	"io"

	"lulcgen/internal/output"
)

// GenerateFunc writes every fragment of one mode to w and returns how many
// fragments it wrote.
type GenerateFunc func(w io.Writer, cfg output.Config) (int, error)

// Generators maps a mode name to its writer. Register in init() blocks.
var Generators = map[string]GenerateFunc{}

// Register adds or replaces the writer for mode (last wins).
func Register(mode string, fn GenerateFunc) { Generators[mode] = fn }

func init() {
	Register(output.ModeSources, output.WriteSources)
	Register(output.ModeLayers, output.WriteLayers)
}

// Lookup returns the writer registered for mode.
func Lookup(mode string) (GenerateFunc, bool) {
	fn, ok := Generators[mode]
	return fn, ok
}
