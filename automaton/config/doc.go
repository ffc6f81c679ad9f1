// Package config implements the configuration automaton (CFG, §4.6): an
// on-the-fly lift of a counter automaton to a (state, current-value,
// counter-values) space. CFG is never materialised up front — its state
// space can be unbounded — so it exposes only a DefaultConfig/Successors
// cursor pair, anchored at the initial state, rather than the full
// ts.TransitionSystem contract (the source's own state iteration was
// acknowledged broken for exactly this reason; see §9 and DESIGN.md).
package config
