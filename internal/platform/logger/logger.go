// Package logger builds the CLI's slog logger. Diagnostics go to stderr so
// stdout stays clean for the identifier output.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a text logger writing to stderr at the given level. Unknown
// levels fall back to info.
func New(level string) *slog.Logger {
	l := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
