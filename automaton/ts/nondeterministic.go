package ts

// PrintFunc renders a value of type T for diagnostics/DOT export.
type PrintFunc[T any] func(T) string

// NonDeterministic is the general concrete transition-system backing
// store: any number of transitions per (source, label) pair. It is the
// storage used directly by the tableau translator's pseudo-node graph
// and by the counter automaton, grounded on lvlath/core.Graph's
// adjacency-list design (map of state -> outgoing edge list), generalised
// from string vertex IDs to an arbitrary comparable state and an
// arbitrary label type.
type NonDeterministic[Q comparable, L any] struct {
	states      map[Q]struct{}
	order       []Q // insertion order, for deterministic States()/DOT output
	adjacency   map[Q][]Transition[Q, L]
	initial     Q
	hasInitial  bool
	printState  PrintFunc[Q]
	printLabel  PrintFunc[L]
}

var _ Mutable[int, int] = (*NonDeterministic[int, int])(nil)
var _ Initial[int] = (*NonDeterministic[int, int])(nil)

// NewNonDeterministic constructs an empty non-deterministic transition
// system. printState/printLabel may be nil, in which case PrintState and
// PrintLabel return a generic placeholder.
func NewNonDeterministic[Q comparable, L any](printState PrintFunc[Q], printLabel PrintFunc[L]) *NonDeterministic[Q, L] {
	return &NonDeterministic[Q, L]{
		states:     make(map[Q]struct{}),
		adjacency:  make(map[Q][]Transition[Q, L]),
		printState: printState,
		printLabel: printLabel,
	}
}

func (t *NonDeterministic[Q, L]) States() []Q {
	out := make([]Q, len(t.order))
	copy(out, t.order)
	return out
}

func (t *NonDeterministic[Q, L]) HasState(q Q) bool {
	_, ok := t.states[q]
	return ok
}

func (t *NonDeterministic[Q, L]) AddState(q Q) error {
	if t.HasState(q) {
		return ErrDuplicateState
	}
	t.states[q] = struct{}{}
	t.order = append(t.order, q)
	return nil
}

func (t *NonDeterministic[Q, L]) AddTransition(q, r Q, l L) error {
	if !t.HasState(q) {
		return ErrStateNotFound
	}
	if !t.HasState(r) {
		return ErrStateNotFound
	}
	t.adjacency[q] = append(t.adjacency[q], Transition[Q, L]{From: q, To: r, Label: l})
	return nil
}

func (t *NonDeterministic[Q, L]) Successors(q Q) []Transition[Q, L] {
	src := t.adjacency[q]
	out := make([]Transition[Q, L], len(src))
	copy(out, src)
	return out
}

// RemoveState is unsupported: the tableau translator and counter
// automaton never shrink once built, so removal is not exercised and
// would require re-indexing every adjacency list; callers needing a
// pruned copy should build a fresh NonDeterministic instead.
func (t *NonDeterministic[Q, L]) RemoveState(Q) error { return ErrUnsupportedMutation }

// RemoveTransition is unsupported for the same reason as RemoveState.
func (t *NonDeterministic[Q, L]) RemoveTransition(Q, Q, L) error { return ErrUnsupportedMutation }

func (t *NonDeterministic[Q, L]) InitialState() (Q, bool) { return t.initial, t.hasInitial }

func (t *NonDeterministic[Q, L]) SetInitialState(q Q) error {
	if !t.HasState(q) {
		return ErrStateNotFound
	}
	t.initial = q
	t.hasInitial = true
	return nil
}

func (t *NonDeterministic[Q, L]) PrintState(q Q) string {
	if t.printState != nil {
		return t.printState(q)
	}
	return genericPrint(q)
}

func (t *NonDeterministic[Q, L]) PrintLabel(l L) string {
	if t.printLabel != nil {
		return t.printLabel(l)
	}
	return genericPrint(l)
}

func genericPrint(v any) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return "?"
}
