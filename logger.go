package kvdb

import (
	"log"
)

// Logger receives operation logs from the logging layer and eviction notices
// from Open.
type Logger interface {
	// Debug receives one line per Insert, Lookup and Remove.
	Debug(format string, args ...interface{})

	// Info receives LRU evictions.
	Info(format string, args ...interface{})

	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DefaultLogger discards everything. It is what a logging layer uses when
// given a nil Logger.
type DefaultLogger struct{}

func (l *DefaultLogger) Debug(format string, args ...interface{}) {}

func (l *DefaultLogger) Info(format string, args ...interface{}) {}

func (l *DefaultLogger) Warn(format string, args ...interface{}) {}

func (l *DefaultLogger) Error(format string, args ...interface{}) {}

// NewDefaultLogger returns a Logger that drops every message.
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// StdLogger writes every level through a standard library logger, prefixed
// with the level name.
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger wraps l. A nil l uses log.Default().
func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}
	return &StdLogger{l: l}
}

// Debug implements Logger.Debug
func (s *StdLogger) Debug(format string, args ...interface{}) {
	s.l.Printf("[DEBUG] "+format, args...)
}

// Info implements Logger.Info
func (s *StdLogger) Info(format string, args ...interface{}) {
	s.l.Printf("[INFO] "+format, args...)
}

// Warn implements Logger.Warn
func (s *StdLogger) Warn(format string, args ...interface{}) {
	s.l.Printf("[WARN] "+format, args...)
}

// Error implements Logger.Error
func (s *StdLogger) Error(format string, args ...interface{}) {
	s.l.Printf("[ERROR] "+format, args...)
}
