// Package dot renders a *counter.Automaton as Graphviz DOT text (§6):
// the finite, already-materialised automaton produced by translation
// (package tableau) or by composing it with a wrapped model
// (automaton/modeladapter, automaton/counter.Product) — never the
// configuration automaton, whose state space is unbounded by
// construction (package config).
//
// Numeric node IDs are allocated in breadth-first visit order starting
// at the initial state, matching §6's "Numeric IDs are allocated in
// visit order."
package dot
