// Package xlog centralises this module's structured-logging setup on top
// of github.com/rs/zerolog (the logging library used throughout the
// joeycumines-go-utilpkg / logiface-zerolog reference code this module
// draws its ambient stack from). Callers construct one zerolog.Logger via
// New and then use zerolog's own chaining API directly (log.Debug().
// Str(...).Msg(...)) — xlog's job stops at wiring level, format and
// output, not at wrapping every call site.
package xlog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the logger's level, output format and destination.
type Config struct {
	Level  zerolog.Level
	Pretty bool // human-readable console writer instead of JSON lines
	Output io.Writer
}

// Option mutates a Config; New applies options over sensible defaults
// (info level, JSON to stderr), the functional-options idiom used
// throughout this module (see internal/config).
type Option func(*Config)

// WithLevel sets the minimum logged level.
func WithLevel(lvl zerolog.Level) Option { return func(c *Config) { c.Level = lvl } }

// WithPretty switches to zerolog's ConsoleWriter, for interactive CLI use.
func WithPretty(pretty bool) Option { return func(c *Config) { c.Pretty = pretty } }

// WithOutput overrides the destination writer (default os.Stderr).
func WithOutput(w io.Writer) Option { return func(c *Config) { c.Output = w } }

// New builds a ready-to-use zerolog.Logger. With no options it logs
// info-and-above JSON lines to stderr, timestamped.
func New(opts ...Option) zerolog.Logger {
	cfg := Config{Level: zerolog.InfoLevel, Output: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := cfg.Output
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(cfg.Level).With().Timestamp().Logger()
}

// ParseLevel maps a CLI-friendly level name to a zerolog.Level, defaulting
// to InfoLevel on an unrecognised or empty string (never errors: an
// unrecognised verbosity flag should still produce a usable logger).
func ParseLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
