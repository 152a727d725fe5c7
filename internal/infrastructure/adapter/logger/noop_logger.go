package logger

import "github.com/tonsuimining/platform/internal/domain/port/core"

// NoopLogger discards everything. Used in tests where log output is noise.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a logger that does nothing
func NewNoopLogger() core.Logger {
	return &NoopLogger{}
}

// SetLevel sets the minimum log level
func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

// Debug discards the message
func (l *NoopLogger) Debug(string, map[string]any) {}

// Info discards the message
func (l *NoopLogger) Info(string, map[string]any) {}

// Warn discards the message
func (l *NoopLogger) Warn(string, map[string]any) {}

// Error discards the message
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush does nothing
func (l *NoopLogger) Flush() error { return nil }
