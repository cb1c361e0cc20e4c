// Package xlog provides the logging interface threaded through the engine,
// the cache snapshot loader, the plugin loader, and the file watcher, backed
// by logrus.
package xlog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Fields aliases logrus.Fields.
type Fields = logrus.Fields

// Logger is the interface every core component accepts instead of writing
// directly to stdout/stderr.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)

	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger

	SetLevel(level string) error
	SetOutput(w io.Writer)
}

type logger struct {
	entry *logrus.Entry
}

// New returns a standard logger writing text-formatted lines.
func New() Logger {
	l := logrus.New()
	return logger{entry: logrus.NewEntry(l)}
}

func (l logger) Debug(args ...any)                  { l.entry.Debug(args...) }
func (l logger) Debugf(format string, args ...any)  { l.entry.Debugf(format, args...) }
func (l logger) Info(args ...any)                   { l.entry.Info(args...) }
func (l logger) Infof(format string, args ...any)   { l.entry.Infof(format, args...) }
func (l logger) Warn(args ...any)                   { l.entry.Warn(args...) }
func (l logger) Warnf(format string, args ...any)   { l.entry.Warnf(format, args...) }
func (l logger) Error(args ...any)                  { l.entry.Error(args...) }
func (l logger) Errorf(format string, args ...any)  { l.entry.Errorf(format, args...) }

func (l logger) WithField(key string, value any) Logger {
	return logger{entry: l.entry.WithField(key, value)}
}

func (l logger) WithFields(fields Fields) Logger {
	return logger{entry: l.entry.WithFields(fields)}
}

func (l logger) SetLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.Logger.SetLevel(parsed)
	return nil
}

func (l logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

// NoOp returns a Logger that discards everything, used as the default when a
// caller passes a nil Logger into engine/cache/plugin constructors.
func NoOp() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logger{entry: logrus.NewEntry(l)}
}

// OrNoOp returns l if non-nil, otherwise a no-op logger.
func OrNoOp(l Logger) Logger {
	if l == nil {
		return NoOp()
	}
	return l
}
