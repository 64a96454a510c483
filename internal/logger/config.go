// Package logger provides slog-backed logging for the application.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds the logger settings, decoded from the [logger] table of
// the config file and overridable by flags.
type Config struct {
	// Level is the minimum level to log: "debug", "info", "warn" or "error".
	Level string `toml:"level"`

	// File is the log destination path. Empty discards log output.
	File string `toml:"file"`
}

// NewConfig returns the default logger configuration.
func NewConfig() Config {
	return Config{
		Level: "info",
		File:  "",
	}
}

// SlogLevel maps the configured level string to a slog.Level,
// defaulting to Info for anything unrecognized.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ValidLevel reports whether s names a known log level.
func ValidLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "warning", "error", "err":
		return true
	}
	return false
}
