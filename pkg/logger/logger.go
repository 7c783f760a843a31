// Package logger provides the structured logging the engine uses to
// surface recovered invariant violations and fallback alignments,
// adapted from the teacher corpus's shared/pkg/logger idiom.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var global *logrus.Logger

// Init configures the package-level structured logger. logLevel falls
// back to LOG_LEVEL, then to "info".
func Init(logLevel string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			if isDevelopment {
				logLevel = "debug"
			} else {
				logLevel = "info"
			}
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("invalid LOG_LEVEL, defaulting to info")
	}

	if !isDevelopment || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	}

	log.SetOutput(os.Stdout)
	global = log
	return log
}

// Get returns the global logger, initializing it with defaults on
// first use.
func Get() *logrus.Logger {
	if global == nil {
		return Init("", false)
	}
	return global
}

// WithComponent tags a log entry with the engine component that
// emitted it (alignment, presnap, engine, ...).
func WithComponent(component string) *logrus.Entry {
	return Get().WithField("component", component)
}

// WithPlay tags a log entry with the component and a play identifier,
// matching the teacher's WithServiceContext/WithCorrelationID pattern.
func WithPlay(component, playID string) *logrus.Entry {
	return Get().WithFields(logrus.Fields{
		"component": component,
		"play_id":   playID,
	})
}
