// Package config reads the CLI's environment defaults so main stays lean.
// Flags always override the environment.
package config

import "os"

// CLI captures command-line level configuration.
type CLI struct {
	// LogLevel is the default slog level (debug, info, warn, error).
	LogLevel string
	// Format is the default display format for generated numbers
	// (compact or official).
	Format string
}

// FromEnv builds a CLI config from environment variables.
func FromEnv() CLI {
	logLevel := os.Getenv("HEIDI_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	format := os.Getenv("HEIDI_FORMAT")
	if format == "" {
		format = "compact"
	}
	return CLI{
		LogLevel: logLevel,
		Format:   format,
	}
}
