package modeladapter

import "github.com/spactiongo/cltlsup/automaton/counter"

// Transition is one outgoing edge of an external Büchi automaton state,
// as reported by ExternalAutomaton.SuccIter: a destination state, the
// letter guarding it (the spec's BDD condition, folded into a PropSet —
// see automaton/counter's doc.go for why this repository represents
// letters as PropSet rather than a real BDD), and the set of acceptance
// indices it belongs to.
type Transition[S any] struct {
	To     S
	Letter counter.PropSet
	Acc    counter.AccSet
}

// ExternalAutomaton is the trimmed external LTL/Büchi library contract
// of §6 that ADP actually needs: init_state and succ_iter. state_hash
// and state_compare are subsumed by Go's comparable constraint on S.
// bdd_dict and the other listed utilities (ltl_to_tgba, scc_filter,
// simulation_reduce, tgba_run_to_tgba, dotty_print) belong to the
// external library itself, not to this adapter.
type ExternalAutomaton[S comparable] interface {
	// InitState returns the automaton's initial state. ok is false if
	// the automaton has none.
	InitState() (s S, ok bool)
	// SuccIter returns every outgoing transition of s.
	SuccIter(s S) []Transition[S]
	// NumAcceptanceSets returns the external automaton's acceptance-set
	// count, mirrored unchanged onto the wrapped counter.Automaton.
	NumAcceptanceSets() int
	// PrintState renders s for diagnostics and DOT export.
	PrintState(s S) string
}
