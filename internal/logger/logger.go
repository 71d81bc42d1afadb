// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards output until Init is called, because
// the terminal belongs to the renderer.
var Log = newDiscardLogger()

// Init configures the global logger. level is a logrus level name ("debug",
// "info", ...); format is "json" or "text". Output goes to path, or stderr if
// path is empty. The returned closer releases the log file.
func Init(level, format, path string) (io.Closer, error) {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: path != "",
		})
	}

	var closer io.Closer = nopCloser{}
	if path == "" {
		l.SetOutput(os.Stderr)
	} else {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open %q: %w", path, err)
		}
		l.SetOutput(f)
		closer = f
	}

	Log = l
	return closer, nil
}

// For returns an entry tagged with the component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
