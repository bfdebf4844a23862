// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLogLevel keeps stderr silent unless something goes wrong.
const DefaultLogLevel = logrus.WarnLevel

// NewLogger returns a text logger writing to dst at level.
func NewLogger(dst io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(dst)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return l
}
