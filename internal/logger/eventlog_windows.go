//go:build windows

package logger

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows/svc/eventlog"
)

// EventLogger writes to Windows Event Log
type EventLogger struct {
	elog  *eventlog.Log
	level LogLevel
}

// RegisterEventSource registers the Event Log source. Needs Administrator rights.
func RegisterEventSource(source string) error {
	err := eventlog.InstallAsEventCreate(source, eventlog.Error|eventlog.Warning|eventlog.Info)
	if err != nil {
		if strings.Contains(err.Error(), "registry key already exists") {
			return nil
		}
		return fmt.Errorf("failed to install event log source: %w", err)
	}
	return nil
}

// NewEventLogger creates a logger that writes to Windows Event Log
func NewEventLogger(source string, level LogLevel) (*EventLogger, error) {
	elog, err := eventlog.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	return &EventLogger{elog: elog, level: level}, nil
}

func (l *EventLogger) Debug(eventID uint32, msg string) {
	if l.level <= LevelDebug {
		l.elog.Info(eventID, "[DEBUG] "+msg)
	}
}

func (l *EventLogger) Info(eventID uint32, msg string) {
	if l.level <= LevelInfo {
		l.elog.Info(eventID, msg)
	}
}

func (l *EventLogger) Warning(eventID uint32, msg string) {
	if l.level <= LevelWarning {
		l.elog.Warning(eventID, msg)
	}
}

func (l *EventLogger) Error(eventID uint32, msg string) {
	if l.level <= LevelError {
		l.elog.Error(eventID, msg)
	}
}

func (l *EventLogger) Debugf(eventID uint32, format string, args ...interface{}) {
	l.Debug(eventID, fmt.Sprintf(format, args...))
}

func (l *EventLogger) Infof(eventID uint32, format string, args ...interface{}) {
	l.Info(eventID, fmt.Sprintf(format, args...))
}

func (l *EventLogger) Warningf(eventID uint32, format string, args ...interface{}) {
	l.Warning(eventID, fmt.Sprintf(format, args...))
}

func (l *EventLogger) Errorf(eventID uint32, format string, args ...interface{}) {
	l.Error(eventID, fmt.Sprintf(format, args...))
}

func (l *EventLogger) Close() error {
	return l.elog.Close()
}
