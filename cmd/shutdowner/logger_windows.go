//go:build windows

package main

import (
	"github.com/smitstech/Shutdowner/internal/appinfo"
	"github.com/smitstech/Shutdowner/internal/logger"
)

// newLogger returns the Event Log backend when requested, registering the
// source on first use.
func newLogger(eventLog bool, level logger.LogLevel) (logger.Logger, error) {
	if !eventLog {
		return logger.NewConsoleLogger(level), nil
	}
	if err := logger.RegisterEventSource(appinfo.EventSource); err != nil {
		return nil, err
	}
	return logger.NewEventLogger(appinfo.EventSource, level)
}
