// Package logging builds the text loggers used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// New creates a text logger writing to w at the provided level.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	})

	return slog.New(handler)
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
