// Package modeladapter implements the external-automaton adapter (ADP,
// §4.8): it wraps a caller-supplied Büchi automaton — the "model" a
// formula's translated automaton is checked against — into a
// counter.Automaton with zero counters, whose acceptance sets mirror the
// external ones exactly.
//
// The external automaton is consumed strictly read-only: Wrap queries
// only ExternalAutomaton's InitState/SuccIter/PrintState/
// NumAcceptanceSets methods (the spec's trimmed "init_state, succ_iter,
// state_hash, state_compare" contract — state_hash/state_compare are
// subsumed here by Go's comparable constraint on S) and never mutates
// it. The returned *counter.Automaton is a normal, finite, fully
// materialised automaton built by one breadth-first exploration from
// the initial state — exactly like counter.Product's two operands are
// expected to be (§4.4): only the configuration automaton that wraps
// the eventual product is allowed to stay unbounded.
package modeladapter
