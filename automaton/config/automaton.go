package config

import (
	"github.com/spactiongo/cltlsup/automaton/counter"
	"github.com/spactiongo/cltlsup/automaton/ts"
)

// Automaton lifts a *counter.Automaton into CFG state space, per §4.6.
type Automaton[Q comparable] struct {
	ca *counter.Automaton[Q]
}

// New wraps ca.
func New[Q comparable](ca *counter.Automaton[Q]) *Automaton[Q] {
	return &Automaton[Q]{ca: ca}
}

// NumAcceptanceSets mirrors the wrapped automaton's, unchanged.
func (a *Automaton[Q]) NumAcceptanceSets() int { return a.ca.NumAcceptanceSets() }

// PrintState renders a configuration for diagnostics.
func (a *Automaton[Q]) PrintState(c Config[Q]) string { return c.String(a.ca.PrintState) }

// DefaultConfig returns default_config(q0) (§4.6): the wrapped
// automaton's initial state, all counters at zero, and:
//
//   - Value unbounded (∞), in the general k > 0 case — no check has
//     fired yet, matching the literal definition;
//   - Value bounded at 0 when the automaton has zero counters — there
//     is no UN/RN obligation to ever check, so the vacuous cost of any
//     run is 0, not ∞. This is a deliberate reading beyond §4.6's literal
//     wording; see DESIGN.md (grounded in end-to-end scenario 1 of §8,
//     which requires SUP to return {false, 0} — not {true} — for a
//     plain-LTL formula with no cost operator at all).
//
// Reports false if ca has no initial state.
func (a *Automaton[Q]) DefaultConfig() (Config[Q], bool) {
	q0, ok := a.ca.InitialState()
	if !ok {
		return Config[Q]{}, false
	}
	k := a.ca.NumCounters()
	return Config[Q]{
		State:    q0,
		Value:    Value{Bounded: k == 0, V: 0},
		Counters: make([]int, k),
	}, true
}

// Successors computes, on demand, the sink configuration of every
// CA-transition out of c.State, applying the §4.6 fold. Never
// materialises beyond this one step — CFG's state space can be
// unbounded, so callers (package supremum) must drive exploration
// themselves.
func (a *Automaton[Q]) Successors(c Config[Q]) []Transition[Q] {
	cas := a.ca.Successors(c.State)
	out := make([]Transition[Q], 0, len(cas))
	for _, tr := range cas {
		out = append(out, Transition[Q]{
			From: c,
			To:   apply(c, tr.Label.Ops, tr.To),
			Acc:  tr.Label.Acc,
		})
	}
	return out
}

// apply folds ops[i] over counter i in order, for every i, per §4.6's
// fixed Increment-then-Check-then-Reset sub-order within one (possibly
// compound) list element, and enforces the monotonicity invariant (§7's
// InvariantViolation: non-monotone value in CFG is a programmer bug, not
// a recoverable condition).
func apply[Q comparable](c Config[Q], ops []counter.CounterOpList, dest Q) Config[Q] {
	if len(ops) != len(c.Counters) {
		panic("config: ops/counters length mismatch — invariant violation")
	}
	counters := append([]int(nil), c.Counters...)
	v := c.Value

	for i, list := range ops {
		for _, elem := range list {
			if elem.Has(counter.OpIncrement) {
				counters[i]++
			}
			if elem.Has(counter.OpCheck) {
				if !v.Bounded {
					v = Value{Bounded: true, V: counters[i]}
				} else if counters[i] < v.V {
					v = Value{Bounded: true, V: counters[i]}
				}
			}
			if elem.Has(counter.OpReset) {
				counters[i] = 0
			}
		}
	}

	if c.Value.Bounded && v.Bounded && v.V > c.Value.V {
		panic("config: non-monotone CFG value — invariant violation")
	}
	if c.Value.Bounded && !v.Bounded {
		panic("config: bounded source became unbounded — invariant violation")
	}

	return Config[Q]{State: dest, Value: v, Counters: counters}
}

// RemoveState is unsupported: CFG's state space is computed on the fly
// and never mutated (§9's resolved open question).
func (a *Automaton[Q]) RemoveState(Config[Q]) error { return ts.ErrUnsupportedMutation }

// RemoveTransition is unsupported, for the same reason as RemoveState.
func (a *Automaton[Q]) RemoveTransition(Config[Q], Config[Q]) error {
	return ts.ErrUnsupportedMutation
}
