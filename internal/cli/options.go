// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"lulcgen/internal/cmdutil"
	"lulcgen/internal/output"
)

// UsageLine is printed for a missing or unknown mode. Downstream tooling
// matches on this exact text.
const UsageLine = "Usage: python generate_sources.py [sources|layers]"

const maxIndent = 16

// Options holds the selected mode and all CLI flags.
type Options struct {
	Mode string

	BaseURL    string
	Indent     int
	Visibility string
	LogLevel   logrus.Level
}

// Config returns the rendering settings carried by o.
func (o Options) Config() output.Config {
	return output.Config{BaseURL: o.BaseURL, Indent: o.Indent, Visibility: o.Visibility}
}

// ParseArgs reads argv as `<mode> [flags]`. The mode is taken verbatim from
// argv[0]; the caller decides whether it is known. Flags are only read after
// the mode, in any position; further positionals are ignored.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	if len(argv) == 0 {
		return opt, errors.New("no mode given")
	}
	opt.Mode = argv[0]

	fs.StringVar(&opt.BaseURL, "base-url", output.DefaultBaseURL, "directory URL of the consolidated .pmtiles archives")
	fs.IntVar(&opt.Indent, "indent", output.DefaultIndent, fmt.Sprintf("spaces per JSON nesting level (1-%d)", maxIndent))
	fs.StringVar(&opt.Visibility, "visibility", output.VisibilityVisible, "initial layer visibility: visible | none")
	fs.TextVar(&opt.LogLevel, "log-level", cmdutil.DefaultLogLevel, "stderr log level: trace | debug | info | warn | error")
	fs.BoolVar(&help, "h", false, "show usage (shorthand)")
	fs.BoolVar(&help, "help", false, "show usage")

	flagArgs, _ := splitFlagsAndPositionals(fs, argv[1:])
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	return opt, opt.Validate()
}

// Validate checks flag values.
func (o Options) Validate() error {
	if o.Indent < 1 || o.Indent > maxIndent {
		return fmt.Errorf("--indent must be between 1 and %d", maxIndent)
	}
	switch o.Visibility {
	case output.VisibilityVisible, output.VisibilityNone:
	default:
		return fmt.Errorf("invalid --visibility %q", o.Visibility)
	}
	if o.BaseURL == "" {
		return errors.New("--base-url must not be empty")
	}
	u, err := url.Parse(o.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid --base-url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("--base-url %q must be an absolute URL", o.BaseURL)
	}
	return nil
}

func boolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// splitFlagsAndPositionals separates flag-like args from positionals so
// flags may follow stray positionals ("layers extra --indent 2").
// "--" ends flag parsing and a lone "-" is a positional.
func splitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	bools := boolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			posArgs = append(posArgs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if !bools[name] && i+1 < len(argv) {
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return
}
