//go:build unix

package appshell

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreBrokenPipe(t *testing.T) {
	t.Cleanup(func() { signal.Reset(syscall.SIGPIPE) })

	ignoreBrokenPipe()
	require.True(t, signal.Ignored(syscall.SIGPIPE))

	// Writing to a pipe whose reader is gone now returns EPIPE.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, r.Close())
	defer w.Close()

	_, err = w.Write([]byte("lulc1985\n"))
	assert.ErrorIs(t, err, syscall.EPIPE)
}
