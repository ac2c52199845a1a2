// Package log provides the application's structured logging on logrus, with an
// optional Sentry hook for error-level events.
package log

import (
	"io"

	"github.com/gobuffalo/buffalo"
	"github.com/sirupsen/logrus"

	"github.com/titleround/title-api/domain"
)

var logger = logrus.New()

func init() {
	logger.SetFormatter(&logrus.JSONFormatter{})
	if domain.Env.GoEnv == domain.EnvDevelopment {
		logger.SetFormatter(&logrus.TextFormatter{})
		logger.SetLevel(logrus.DebugLevel)
	}

	if hook := NewSentryHook(domain.Env.GoEnv, domain.Commit); hook != nil {
		logger.AddHook(hook)
	}
}

// SetOutput redirects the logger, primarily for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// WithContext returns an entry carrying the Buffalo request context so the
// Sentry hook can attach request data.
func WithContext(c buffalo.Context) *logrus.Entry {
	return logger.WithContext(c)
}

// WithFields returns an entry with structured fields attached.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return logger.WithFields(fields)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}
