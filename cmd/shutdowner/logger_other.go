//go:build !windows

package main

import (
	"github.com/smitstech/Shutdowner/internal/logger"
)

func newLogger(eventLog bool, level logger.LogLevel) (logger.Logger, error) {
	l := logger.NewConsoleLogger(level)
	if eventLog {
		l.Warning(logger.EventConfigError, "--eventlog is only supported on Windows, logging to stderr")
	}
	return l, nil
}
