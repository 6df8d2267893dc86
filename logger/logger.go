// Package logger builds the process-wide slog logger: human-readable text
// locally, JSON in production so log shippers can parse it.
package logger

import (
	"io"
	"log/slog"
	"os"
)

func New(production bool) *slog.Logger {
	return newWithWriter(os.Stdout, production)
}

func newWithWriter(w io.Writer, production bool) *slog.Logger {
	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler).With("service", "bistro-api")
}

// Setup creates the logger and installs it as slog's default.
func Setup(production bool) *slog.Logger {
	l := New(production)
	slog.SetDefault(l)
	return l
}

// Discard is for tests and commands that should stay quiet.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
