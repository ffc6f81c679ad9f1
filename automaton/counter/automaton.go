package counter

import (
	"fmt"

	"github.com/spactiongo/cltlsup/automaton/ts"
)

// Automaton is the counter automaton of §4.4: a ts.TransitionSystem over
// Q whose labels carry a PropSet letter, a per-counter operation list,
// and acceptance-set membership.
type Automaton[Q comparable] struct {
	nts               *ts.NonDeterministic[Q, Label]
	numCounters       int
	numAcceptanceSets int
	// acceptanceTransitions mirrors add_acceptance_transition (§4.4):
	// explicit per-acceptance-set membership lists, kept in lock-step
	// with the acc field of each transition's Label.
	acceptanceTransitions [][]ts.Transition[Q, Label]
}

// New constructs an empty counter automaton with a fixed counter and
// acceptance-set count (both immutable for the automaton's lifetime, per
// §4.4).
func New[Q comparable](numCounters, numAcceptanceSets int, printState ts.PrintFunc[Q]) *Automaton[Q] {
	printLabel := func(l Label) string { return l.String() }
	return &Automaton[Q]{
		nts:                   ts.NewNonDeterministic[Q, Label](printState, printLabel),
		numCounters:           numCounters,
		numAcceptanceSets:     numAcceptanceSets,
		acceptanceTransitions: make([][]ts.Transition[Q, Label], numAcceptanceSets),
	}
}

// NumCounters returns k, the number of counters.
func (a *Automaton[Q]) NumCounters() int { return a.numCounters }

// NumAcceptanceSets returns the number of acceptance-set families.
func (a *Automaton[Q]) NumAcceptanceSets() int { return a.numAcceptanceSets }

// TransitionSystem exposes the underlying ts.TransitionSystem, satisfying
// the "every automaton is queried only through TS" rule of §4.3.
func (a *Automaton[Q]) TransitionSystem() ts.TransitionSystem[Q, Label] { return a.nts }

func (a *Automaton[Q]) States() []Q      { return a.nts.States() }
func (a *Automaton[Q]) HasState(q Q) bool { return a.nts.HasState(q) }

// AddState registers q.
func (a *Automaton[Q]) AddState(q Q) error { return a.nts.AddState(q) }

// SetInitialState designates q as the (unique, optional-until-set)
// initial state.
func (a *Automaton[Q]) SetInitialState(q Q) error { return a.nts.SetInitialState(q) }

// InitialState returns the automaton's initial state, if set.
func (a *Automaton[Q]) InitialState() (Q, bool) { return a.nts.InitialState() }

// MakeLabel builds a Label over this automaton's letter and per-counter
// operation lists, panicking with ErrCounterOpsSizeMismatch (an
// InvariantViolation, §7) if len(ops) does not equal NumCounters — a
// programmer bug at the call site, not a recoverable condition.
func (a *Automaton[Q]) MakeLabel(letter PropSet, ops []CounterOpList, acc AccSet) Label {
	if len(ops) != a.numCounters {
		panic(fmt.Errorf("%w: got %d, want %d", ErrCounterOpsSizeMismatch, len(ops), a.numCounters))
	}
	if acc == nil {
		acc = AccSet{}
	}
	return Label{Letter: letter, Ops: ops, Acc: acc}
}

// AddTransition adds q -letter,ops,acc-> r and registers it into every
// acceptance-set family named by acc, keeping the explicit membership
// lists (§4.4) in agreement with the label's own Acc field.
func (a *Automaton[Q]) AddTransition(q, r Q, letter PropSet, ops []CounterOpList, acc AccSet) error {
	label := a.MakeLabel(letter, ops, acc)
	if err := a.nts.AddTransition(q, r, label); err != nil {
		return err
	}
	t := ts.Transition[Q, Label]{From: q, To: r, Label: label}
	for idx := range acc {
		if idx < 0 || idx >= a.numAcceptanceSets {
			panic(fmt.Errorf("counter: acceptance index %d out of range [0,%d)", idx, a.numAcceptanceSets))
		}
		a.acceptanceTransitions[idx] = append(a.acceptanceTransitions[idx], t)
	}
	return nil
}

// AcceptanceTransitions returns the explicit membership list for
// acceptance-set setIndex.
func (a *Automaton[Q]) AcceptanceTransitions(setIndex int) []ts.Transition[Q, Label] {
	return a.acceptanceTransitions[setIndex]
}

func (a *Automaton[Q]) Successors(q Q) []ts.Transition[Q, Label] { return a.nts.Successors(q) }

func (a *Automaton[Q]) PrintState(q Q) string   { return a.nts.PrintState(q) }
func (a *Automaton[Q]) PrintLabel(l Label) string { return a.nts.PrintLabel(l) }
