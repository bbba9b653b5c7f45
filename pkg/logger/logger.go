// Package logger provides slog-based structured logging for candigraph.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// NewDefaultLogger creates a text logger writing to stderr at the given level.
func NewDefaultLogger(level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// NewJSONLogger creates a JSON logger writing to stderr at the given level.
func NewJSONLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// ParseLevel converts a config string ("debug", "info", "warn", "error") to a
// slog.Level. Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// FromConfig builds a logger from the configured level and format.
func FromConfig(level, format string) *slog.Logger {
	lvl := ParseLevel(level)
	if strings.EqualFold(format, "json") {
		return NewJSONLogger(lvl)
	}
	return NewDefaultLogger(lvl)
}
