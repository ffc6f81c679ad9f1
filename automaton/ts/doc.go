// Package ts provides the generic transition-system abstraction of §4.3:
// the counter automaton (and with it the wrapped external model) stores
// its states and transitions in a TransitionSystem implementation. The
// configuration automaton (package config) does not implement
// TransitionSystem; it exposes only a DefaultConfig/Successors pair.
//
// The source's C++ template `TransitionSystem<Q, S>` with iterator-based
// successor enumeration becomes, in Go, a type-parameterised interface
// returning a []Transition snapshot per call (see DESIGN.md: Go's
// generics-as-types plus range-based idiom make a materialise-on-call
// interface more natural here than a heap-allocated cursor object; the
// configuration automaton still never caches its full reachable state
// space — only the per-call Successors result is built, matching the
// "lazily materialise" requirement of §4.3's iterator contract). Two
// concrete variants (Deterministic, NonDeterministic), and a generic
// Product composing two heterogeneous transition systems, are provided
// below, grounded on the teacher's (lvlath) core.Graph adjacency-list
// approach, generalised from string vertex IDs to an arbitrary
// comparable state type.
package ts
