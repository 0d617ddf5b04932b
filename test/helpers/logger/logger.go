// Package logger provides loggers for tests.
package logger

import (
	"io"

	"github.com/codescope/codescope/pkg/log"
	"github.com/sirupsen/logrus"
)

// CreateLogger returns a debug level logger that writes to nowhere.
func CreateLogger() log.Logger {
	return CreateLoggerWithOutput(io.Discard)
}

// CreateLoggerWithOutput returns a debug level logger without colors that writes to output.
func CreateLoggerWithOutput(output io.Writer) log.Logger {
	return log.New(
		log.WithLevel(log.DebugLevel),
		log.WithOutput(output),
		log.WithFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true}),
	)
}
