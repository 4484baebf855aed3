// Package logger provides logging utilities for the stagecsv tools.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Logger provides structured logging functionality.
type Logger struct {
	internal *slog.Logger
}

// NewLogger creates a new logger instance with the specified level, writing to stderr.
func NewLogger(level string) *Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter creates a new logger that writes text records to w.
func NewLoggerWithWriter(level string, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	handler := slog.NewTextHandler(w, opts)
	internal := slog.New(handler)

	return &Logger{
		internal: internal,
	}
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Info logs an info level message.
func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info(msg, args...)
}

// Error logs an error level message.
func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error(msg, args...)
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug(msg, args...)
}

// Warn logs a warning level message.
func (l *Logger) Warn(msg string, args ...any) {
	l.internal.Warn(msg, args...)
}

// With creates a child logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		internal: l.internal.With(args...),
	}
}

// WithRunID creates a child logger tagged with a fresh run_id.
func (l *Logger) WithRunID() *Logger {
	return l.With("run_id", uuid.NewString())
}
