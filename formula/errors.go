package formula

import "errors"

// Error policy (mirrors lvlath/builder's errors.go convention): only
// sentinel values are exported; callers branch with errors.Is, and any
// extra context is attached by wrapping with %w at the call site.

// ErrUnsupportedCostOperator is returned when a formula containing a cost
// operator (UN or RN) is asked to produce a representation that has no
// notion of cost, e.g. stripping down to plain LTL for an external
// (non-cost) library.
var ErrUnsupportedCostOperator = errors.New("formula: unsupported cost operator")

// ErrNotEnoughChildren is returned by And/Or when fewer than two children
// are supplied; the Mult variant requires an n-ary family of at least two.
var ErrNotEnoughChildren = errors.New("formula: mult operator requires at least two children")
