package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/staffloop/identity/internal/pkg/models"
)

var global *AppLogger

// Init sets the process-wide logger used by the package-level helpers.
func Init(config models.LoggerConfig) (*AppLogger, error) {
	l, err := NewAppLogger(config)
	if err != nil {
		return nil, err
	}
	global = l
	return l, nil
}

// L returns the process-wide logger, falling back to a default logrus
// instance when Init has not been called (tests, early startup).
func L() *logrus.Logger {
	if global != nil {
		return global.Logger
	}
	return logrus.StandardLogger()
}

// Info logs at info level with structured fields.
func Info(msg string, fields logrus.Fields) {
	L().WithFields(fields).Info(msg)
}

// Warn logs at warn level with structured fields.
func Warn(msg string, fields logrus.Fields) {
	L().WithFields(fields).Warn(msg)
}

// Error logs at error level with structured fields.
func Error(msg string, fields logrus.Fields) {
	L().WithFields(fields).Error(msg)
}
