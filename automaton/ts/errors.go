package ts

import "errors"

// ErrStateNotFound is returned when an operation references a state
// absent from the transition system.
var ErrStateNotFound = errors.New("ts: state not found")

// ErrDuplicateState is returned by AddState when the state is already
// present.
var ErrDuplicateState = errors.New("ts: state already present")

// ErrUnsupportedMutation is returned by RemoveState/RemoveTransition on
// every transition system in this repository: NonDeterministic,
// Deterministic and the configuration automaton. Removal is reported as
// unsupported rather than silently incorrect.
var ErrUnsupportedMutation = errors.New("ts: mutation not supported on this transition system")
