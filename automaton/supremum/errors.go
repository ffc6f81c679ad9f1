package supremum

import "errors"

// ErrNoInitialState reports that the wrapped counter automaton has no
// initial state set, so CFG has no default configuration to search from.
var ErrNoInitialState = errors.New("supremum: configuration automaton has no initial state")
