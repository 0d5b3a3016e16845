// Package log provides the logging interface used across the emulator
// core, backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text to stderr at debug level.
func New() Logger {
	return NewWithOutput(nil)
}

// NewWithOutput returns a Logger writing to w. A nil writer
// keeps the logrus default (stderr).
func NewWithOutput(w io.Writer) Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	if w != nil {
		l.SetOutput(w)
	}
	return l
}
