package cli

import (
	"flag"
	"io"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError. Parse errors are
// returned to the caller; nothing is printed by the flag package itself.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}
