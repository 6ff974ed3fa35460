package slogutil

import (
	"io"
	"log/slog"
	"strings"
)

// LevelSilent sits above every standard level.
const LevelSilent = slog.Level(100)

// NewLogger creates a logger using Handler.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewDiscardLogger creates a logger that discards all output.
func NewDiscardLogger() *slog.Logger {
	return NewLogger(io.Discard, LevelSilent)
}

// LevelFromString converts debug, info, warn or error (case-insensitive).
// Returns slog.LevelWarn for unrecognized strings.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ResolveLevel picks the effective level.
// quiet wins, then -v flags (1 = info, 2+ = debug), then the configured level.
func ResolveLevel(configured string, verbosity int, quiet bool) slog.Level {
	if quiet {
		return LevelSilent
	}
	switch {
	case verbosity == 1:
		return slog.LevelInfo
	case verbosity >= 2:
		return slog.LevelDebug
	}
	return LevelFromString(configured)
}
