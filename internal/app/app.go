// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"lulcgen/internal/cli"
	"lulcgen/internal/cmdutil"
	"lulcgen/internal/writers"
)

// Exit codes. Every command line ends with ExitOK; the others only report
// a failing stdout or an interrupted run.
const (
	ExitOK       = 0
	ExitWrite    = 3
	ExitCanceled = 130
)

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, cli.UsageLine)
}

// finish flushes outw and maps a flush failure to an exit code.
func finish(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return code
}

// RunContext runs `<mode> [flags]`. A missing mode prints the usage line
// twice; an unknown mode, a help flag or a bad flag prints it once.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	// No mode prints the usage line twice; existing callers depend on it.
	if len(argv) == 0 {
		printUsage(outw)
		printUsage(outw)
		return finish(outw, stderr, ExitOK)
	}

	gen, ok := writers.Lookup(argv[0])
	if !ok {
		printUsage(outw)
		return finish(outw, stderr, ExitOK)
	}

	opts, err := cli.ParseArgs(cli.NewFlagSet("lulcgen"), argv)
	if err != nil {
		printUsage(outw)
		return finish(outw, stderr, ExitOK)
	}

	if ctx.Err() != nil {
		return ExitCanceled
	}

	log := cmdutil.NewLogger(stderr, opts.LogLevel)
	cfg := opts.Config()
	cfg.Log = log.WithField("mode", opts.Mode)
	n, err := gen(outw, cfg)
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	cfg.Log.WithField("fragments", n).Debug("done")
	return finish(outw, stderr, ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
