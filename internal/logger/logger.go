package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// ParseLogLevel converts a string to a LogLevel
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelInfo // default to info
	}
}

// String returns the string representation of a LogLevel
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Event IDs for different types of events
const (
	// Application lifecycle events (1-9)
	EventAppStart     = 1
	EventAppStop      = 2
	EventConfigLoaded = 3
	EventUpdateInfo   = 4

	// Countdown events (10-19)
	EventCountdownStarted  = 10
	EventCountdownStopped  = 11
	EventCountdownTick     = 12
	EventCountdownFinished = 13
	EventActionSelected    = 14
	EventActionDispatched  = 15

	// Input events (20-29)
	EventInputRejected    = 20
	EventDurationRejected = 21
	EventKeyBinding       = 22

	// Error events (30-39)
	EventConfigError       = 30
	EventActionError       = 31
	EventNotificationError = 32
	EventUpdateError       = 33
	EventInputError        = 34
)

// Logger provides a unified interface for logging to the console or Windows Event Log
type Logger interface {
	Debug(eventID uint32, msg string)
	Info(eventID uint32, msg string)
	Warning(eventID uint32, msg string)
	Error(eventID uint32, msg string)
	Debugf(eventID uint32, format string, args ...interface{})
	Infof(eventID uint32, format string, args ...interface{})
	Warningf(eventID uint32, format string, args ...interface{})
	Errorf(eventID uint32, format string, args ...interface{})
	Close() error
}

// ConsoleLogger writes human-readable records through zerolog
type ConsoleLogger struct {
	log zerolog.Logger
}

// NewConsoleLogger creates a logger that writes to stderr.
// Stdout belongs to the countdown display.
func NewConsoleLogger(level LogLevel) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, level)
}

// NewWriterLogger creates a console-formatted logger on an arbitrary writer
func NewWriterLogger(w io.Writer, level LogLevel) *ConsoleLogger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return &ConsoleLogger{
		log: zerolog.New(output).Level(level.zerologLevel()).With().Timestamp().Logger(),
	}
}

func (l *ConsoleLogger) Debug(eventID uint32, msg string) {
	l.log.Debug().Uint32("event", eventID).Msg(msg)
}

func (l *ConsoleLogger) Info(eventID uint32, msg string) {
	l.log.Info().Uint32("event", eventID).Msg(msg)
}

func (l *ConsoleLogger) Warning(eventID uint32, msg string) {
	l.log.Warn().Uint32("event", eventID).Msg(msg)
}

func (l *ConsoleLogger) Error(eventID uint32, msg string) {
	l.log.Error().Uint32("event", eventID).Msg(msg)
}

func (l *ConsoleLogger) Debugf(eventID uint32, format string, args ...interface{}) {
	l.log.Debug().Uint32("event", eventID).Msg(fmt.Sprintf(format, args...))
}

func (l *ConsoleLogger) Infof(eventID uint32, format string, args ...interface{}) {
	l.log.Info().Uint32("event", eventID).Msg(fmt.Sprintf(format, args...))
}

func (l *ConsoleLogger) Warningf(eventID uint32, format string, args ...interface{}) {
	l.log.Warn().Uint32("event", eventID).Msg(fmt.Sprintf(format, args...))
}

func (l *ConsoleLogger) Errorf(eventID uint32, format string, args ...interface{}) {
	l.log.Error().Uint32("event", eventID).Msg(fmt.Sprintf(format, args...))
}

func (l *ConsoleLogger) Close() error {
	return nil
}
