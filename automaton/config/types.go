package config

import (
	"fmt"

	"github.com/spactiongo/cltlsup/automaton/counter"
)

// Value is the CFG "current candidate value" component (§3): either
// unbounded (no check has fired yet on this run) or a non-negative
// integer.
type Value struct {
	Bounded bool
	V       int
}

// Infinite is the unbounded value (∞).
func Infinite() Value { return Value{} }

// Finite wraps a non-negative integer value.
func Finite(v int) Value { return Value{Bounded: true, V: v} }

func (v Value) String() string {
	if !v.Bounded {
		return "inf"
	}
	return fmt.Sprintf("%d", v.V)
}

// Config is a single configuration-automaton state (§3): an automaton
// state, the current candidate value, and one integer per counter.
type Config[Q comparable] struct {
	State    Q
	Value    Value
	Counters []int
}

func (c Config[Q]) String(printState func(Q) string) string {
	return fmt.Sprintf("(%s, %s, %v)", printState(c.State), c.Value, c.Counters)
}

// Transition is one CFG edge, carrying the CA label's acceptance marks
// unchanged (§4.6: "CFG inherits acceptance sets from A unchanged").
type Transition[Q comparable] struct {
	From Config[Q]
	To   Config[Q]
	Acc  counter.AccSet
}
