package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ignoreBrokenPipe makes writes to a closed stdout fail with EPIPE instead
// of the runtime killing the process, so `lulcgen layers | head` exits 0.
func ignoreBrokenPipe() { signal.Ignore(syscall.SIGPIPE) }

// Main runs run with the process arguments and standard streams, then exits
// with its code. An empty argument list is passed through unchanged.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ignoreBrokenPipe()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
