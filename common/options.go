package common

import (
	"io"

	"github.com/sirupsen/logrus"
)

type LogOption struct {
	LogLevel logrus.Level
	Logger   *logrus.Logger
}

// NewLogger returns the logger in option, a new logger at the option level, or a logger that discards
// everything when no option is given.
func NewLogger(opt ...LogOption) *logrus.Logger {
	logger := logrus.New()
	if len(opt) == 0 {
		logger.Out = io.Discard
		return logger
	}
	if opt[0].Logger != nil {
		return opt[0].Logger
	}
	logger.SetLevel(opt[0].LogLevel)
	return logger
}

// StandardLogOption forwards to the global logrus logger configured by the command line.
func StandardLogOption() LogOption {
	return LogOption{Logger: logrus.StandardLogger()}
}
