package counter

import "errors"

// ErrCounterOpsSizeMismatch is the InvariantViolation (spec §7) raised
// when a transition's operation vector length does not equal the
// automaton's counter count. This is a programmer bug, not a recoverable
// user error, and is therefore a panic (see MakeLabel), not a typed
// result.
var ErrCounterOpsSizeMismatch = errors.New("counter: ops vector length does not match automaton's counter count")

// ErrNoInitialState is returned when an operation requires an initial
// state that has not been set.
var ErrNoInitialState = errors.New("counter: automaton has no initial state")
