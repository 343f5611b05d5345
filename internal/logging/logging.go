// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options selects where and how log entries are written.
type Options struct {
	Level string // logrus level name; unknown names fall back to info
	JSON  bool
	File  string // empty writes to stderr
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup applies opts to the standard logrus logger.
// The returned closer releases the log file, if any.
func Setup(opts Options) (io.Closer, error) {
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logrus.SetOutput(f)
		closer = f
	} else {
		logrus.SetOutput(os.Stderr)
	}

	if opts.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logrus.SetLevel(ParseLevel(opts.Level))
	return closer, nil
}

// ParseLevel returns the named level, or info when the name is empty or unknown.
func ParseLevel(name string) logrus.Level {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Discard silences the standard logger; used by tests and the TUI before setup.
func Discard() {
	logrus.SetOutput(io.Discard)
}
