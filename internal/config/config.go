// Package config centralizes this module's process-wide configuration
// using the same functional-options idiom as builder.BuilderOption: a
// private struct with sensible defaults, mutated in order by a sequence
// of Option values. See Option and New.
package config

import "github.com/rs/zerolog"

// RemovalStrategy selects how supremum.search marks the configurations
// of a closed SCC dead (§6, "poprem"). Root-stack merging is the same
// under both strategies.
type RemovalStrategy int

const (
	// RemovalPoprem records, on each root entry, the signatures of every
	// configuration merged into it, so a closing root marks them dead
	// directly from that list — the poprem optimisation. Default.
	RemovalPoprem RemovalStrategy = iota
	// RemovalNone keeps no such list; a closing root instead walks
	// forward from its configuration over still-open configurations to
	// mark them dead. Same result, more work.
	RemovalNone
)

// Config holds the tunables shared by the supremum/infimum search and the
// CLI front-end.
type Config struct {
	Bound           int
	Removal         RemovalStrategy
	LogLevel        zerolog.Level
	LogPretty       bool
	CostOperator    int // degree n for instantiate.Sup/Inf; not read by the search or the CLI
}

// Option mutates a Config. As a rule, option constructors never panic at
// runtime.
type Option func(*Config)

// WithBound sets the search's upper bound (§6): as soon as an accepting
// SCC is found whose value exceeds bound, the whole search stops and
// returns an infinite result ("no finite supremum within this bound").
// A non-positive bound disables the short-circuit.
func WithBound(bound int) Option {
	return func(c *Config) { c.Bound = bound }
}

// WithRemovalStrategy selects the root-stack pruning strategy.
func WithRemovalStrategy(s RemovalStrategy) Option {
	return func(c *Config) { c.Removal = s }
}

// WithLogLevel sets the minimum logged level.
func WithLogLevel(lvl zerolog.Level) Option {
	return func(c *Config) { c.LogLevel = lvl }
}

// WithLogPretty switches logging to a human-readable console writer.
func WithLogPretty(pretty bool) Option {
	return func(c *Config) { c.LogPretty = pretty }
}

// WithCostOperator sets Config.CostOperator. Nothing in this module reads
// that field: translation and search do not instantiate UN/RN, and
// cmd/cltlsup takes its instantiation degree from its -n flag.
func WithCostOperator(n int) Option {
	return func(c *Config) { c.CostOperator = n }
}

// New returns a Config initialized with defaults — no bound, poprem
// enabled, info-level JSON logging, n=0 — then applies opts in order.
func New(opts ...Option) *Config {
	cfg := &Config{
		Bound:     0,
		Removal:   RemovalPoprem,
		LogLevel:  zerolog.InfoLevel,
		LogPretty: false,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
