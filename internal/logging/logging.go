// Package logging configures the process-wide slog logger.
//
// Logs go to stderr so that stdout carries only release metadata. The level
// comes from --log-level or LOG_LEVEL and defaults to warn, which keeps a
// normal run silent. Debug level adds source locations.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// ParseLevel converts a level name to a slog.Level.
// Accepted names (case-insensitive): debug, info, warn, warning, error.
// An empty string yields DefaultLevel.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level %q (expected debug, info, warn, or error)", s)
	}
}

// New returns a text logger writing to w, tagged with the tool name and version.
func New(w io.Writer, name, version string, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(handler).With(
		slog.String("module", name),
		slog.String("version", version),
	)
}

// SetDefault parses level, builds a logger with New and installs it as the
// slog default.
func SetDefault(w io.Writer, name, version, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(New(w, name, version, lvl))
	return nil
}
