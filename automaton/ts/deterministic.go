package ts

// LabelKeyFunc reduces a label to a comparable key, used by Deterministic
// to enforce "at most one successor per (source, label)" without
// requiring the label type itself to satisfy Go's comparable constraint
// (CounterLabel, for instance, carries a slice and is not comparable by
// ==).
type LabelKeyFunc[L any] func(L) any

// Deterministic wraps a NonDeterministic store and enforces, at
// AddTransition time, that at most one successor exists per (source,
// label-key) pair — the "deterministic" transition-system variant of
// §4.3.
type Deterministic[Q comparable, L any] struct {
	inner   *NonDeterministic[Q, L]
	keyOf   LabelKeyFunc[L]
	seenKey map[Q]map[any]struct{}
}

var _ Mutable[int, int] = (*Deterministic[int, int])(nil)
var _ Initial[int] = (*Deterministic[int, int])(nil)

// NewDeterministic constructs an empty deterministic transition system.
// keyOf must return comparable values; equal keys from the same source
// state are rejected by AddTransition with ErrDuplicateState.
func NewDeterministic[Q comparable, L any](keyOf LabelKeyFunc[L], printState PrintFunc[Q], printLabel PrintFunc[L]) *Deterministic[Q, L] {
	return &Deterministic[Q, L]{
		inner:   NewNonDeterministic[Q, L](printState, printLabel),
		keyOf:   keyOf,
		seenKey: make(map[Q]map[any]struct{}),
	}
}

func (t *Deterministic[Q, L]) States() []Q               { return t.inner.States() }
func (t *Deterministic[Q, L]) HasState(q Q) bool          { return t.inner.HasState(q) }
func (t *Deterministic[Q, L]) AddState(q Q) error         { return t.inner.AddState(q) }
func (t *Deterministic[Q, L]) Successors(q Q) []Transition[Q, L] { return t.inner.Successors(q) }
func (t *Deterministic[Q, L]) PrintState(q Q) string      { return t.inner.PrintState(q) }
func (t *Deterministic[Q, L]) PrintLabel(l L) string      { return t.inner.PrintLabel(l) }
func (t *Deterministic[Q, L]) InitialState() (Q, bool)    { return t.inner.InitialState() }
func (t *Deterministic[Q, L]) SetInitialState(q Q) error  { return t.inner.SetInitialState(q) }
func (t *Deterministic[Q, L]) RemoveState(q Q) error      { return t.inner.RemoveState(q) }
func (t *Deterministic[Q, L]) RemoveTransition(q, r Q, l L) error {
	return t.inner.RemoveTransition(q, r, l)
}

func (t *Deterministic[Q, L]) AddTransition(q, r Q, l L) error {
	if !t.inner.HasState(q) || !t.inner.HasState(r) {
		return ErrStateNotFound
	}
	key := t.keyOf(l)
	if t.seenKey[q] == nil {
		t.seenKey[q] = make(map[any]struct{})
	}
	if _, dup := t.seenKey[q][key]; dup {
		return ErrDuplicateState
	}
	t.seenKey[q][key] = struct{}{}
	return t.inner.AddTransition(q, r, l)
}
