package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the stderr logger shared by every subcommand.
// quiet keeps warnings and errors only; verbose adds per-record diagnostics.
func NewLogger(dst io.Writer, quiet, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(dst)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	switch {
	case quiet:
		l.SetLevel(logrus.WarnLevel)
	case verbose:
		l.SetLevel(logrus.DebugLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}
