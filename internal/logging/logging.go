// Package logging wraps log/slog with the small conveniences the runners
// need: one global init from CLI flags and per-component child loggers.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var logger *slog.Logger

// Init configures the global logger. Output goes to stderr so progress
// and warnings stay off stdout.
func Init(level slog.Level, jsonFormat bool) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// ParseLevel maps a CLI level string to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", s)
	}
}

// Component returns a logger tagged with a component name.
func Component(name string) *slog.Logger {
	if logger == nil {
		Init(slog.LevelInfo, false)
	}
	return logger.With("component", name)
}
