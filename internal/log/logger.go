// Package log is a thin key/value facade over logrus used by the CLI and
// its wiring. The primitives themselves never log.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02T15:04:05.000"

// SetLogger configures the global logger. level is a logrus level name
// (trace, debug, info, warn, error).
func SetLogger(level string, jsonFormat, colorFormat bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	if jsonFormat {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:     colorFormat,
			DisableColors:   !colorFormat,
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
			DisableSorting:  true,
		})
	}
	return nil
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) { logrus.SetOutput(w) }

// WithFields turns alternating key/value pairs into a log entry.
func WithFields(ctx ...any) *logrus.Entry {
	length := len(ctx)
	if length%2 != 0 {
		Debugf("log fields number %v is not even", length)
	}
	fields := make(logrus.Fields)
	for k := 0; k+2 <= length; k += 2 {
		key, ok := ctx[k].(string)
		if ok {
			fields[key] = ctx[k+1]
		} else {
			Debugf("log field key '%v' is not string", ctx[k])
		}
	}
	return logrus.WithFields(fields)
}

func Debug(msg string, ctx ...any) {
	WithFields(ctx...).Debug(msg)
}

func Debugf(format string, args ...any) {
	logrus.Debugf(format, args...)
}

func Info(msg string, ctx ...any) {
	WithFields(ctx...).Info(msg)
}

func Warn(msg string, ctx ...any) {
	WithFields(ctx...).Warn(msg)
}

func Error(msg string, ctx ...any) {
	WithFields(ctx...).Error(msg)
}
