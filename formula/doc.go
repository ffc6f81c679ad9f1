// Package formula implements the CLTL formula algebra: a hash-consed,
// immutable term representation with a single owning Factory per family
// of formulas, negation-normal-form and disjunctive-normal-form rewriting,
// and structural equality modulo the commutativity of conjunction and
// disjunction.
//
// Every term is addressed by a Factory-scoped Handle (a newtype'd index
// into the Factory's arena). Two handles compare equal, by value, iff the
// Factory judged the underlying terms structurally equal at construction
// time — the package function Equal is only this value comparison, and
// no term is ever mutated after creation.
package formula
