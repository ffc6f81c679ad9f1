package ts

// Pair is the product state type: a pair of states, one from each
// factor transition system.
type Pair[QL comparable, QR comparable] struct {
	Left  QL
	Right QR
}

// LabelCombiner is the "label-product helper" of §4.3/§4.4: Lhs/Rhs
// project a product label back onto its factors, Build combines two
// factor labels into one, and the two must be inverses of each other
// (Build(Lhs(l), Rhs(l)) == l for any l produced by Build).
type LabelCombiner[LL any, LR any, L any] interface {
	Lhs(L) LL
	Rhs(L) LR
	Build(LL, LR) L
}

// Product composes two transition systems pointwise on states (§4.3):
// its state space is Pair[QL, QR], and a transition (p1,p2) -> (q1,q2)
// exists, labelled combiner.Build(l1, l2), for every pair of matching
// left/right transitions p1 -l1-> q1 and p2 -l2-> q2. "Matching" is
// decided by the caller-supplied match predicate (e.g. the counter
// automaton's product matches on consistent propositional letters).
//
// Product computes successors on demand; it never materialises the full
// product state space.
type Product[QL comparable, QR comparable, LL any, LR any, L any] struct {
	lhs      TransitionSystem[QL, LL]
	rhs      TransitionSystem[QR, LR]
	combiner LabelCombiner[LL, LR, L]
	match    func(LL, LR) bool
}

var _ TransitionSystem[Pair[int, int], int] = (*Product[int, int, int, int, int])(nil)

// NewProduct builds a product transition system over lhs and rhs. match
// decides which (left-label, right-label) pairs synchronise into a
// single product transition.
func NewProduct[QL comparable, QR comparable, LL any, LR any, L any](
	lhs TransitionSystem[QL, LL],
	rhs TransitionSystem[QR, LR],
	combiner LabelCombiner[LL, LR, L],
	match func(LL, LR) bool,
) *Product[QL, QR, LL, LR, L] {
	return &Product[QL, QR, LL, LR, L]{lhs: lhs, rhs: rhs, combiner: combiner, match: match}
}

// States enumerates the cartesian product of the two factors' known
// states. It is only meaningful when both factors have materialised,
// finite state spaces (e.g. two counter automata) — never call this on
// a product whose right-hand side is itself on-the-fly (the
// configuration automaton).
func (p *Product[QL, QR, LL, LR, L]) States() []Pair[QL, QR] {
	return p.StatePairs()
}

// StatePairs enumerates the cartesian product of the two factors' known
// states (only meaningful when both factors have materialised, finite
// state spaces, e.g. two counter automata — never call this on a product
// whose right-hand side is itself on-the-fly).
func (p *Product[QL, QR, LL, LR, L]) StatePairs() []Pair[QL, QR] {
	left := p.lhs.States()
	right := p.rhs.States()
	out := make([]Pair[QL, QR], 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			out = append(out, Pair[QL, QR]{Left: l, Right: r})
		}
	}
	return out
}

func (p *Product[QL, QR, LL, LR, L]) HasState(q Pair[QL, QR]) bool {
	return p.lhs.HasState(q.Left) && p.rhs.HasState(q.Right)
}

func (p *Product[QL, QR, LL, LR, L]) Successors(q Pair[QL, QR]) []Transition[Pair[QL, QR], L] {
	var out []Transition[Pair[QL, QR], L]
	leftTrans := p.lhs.Successors(q.Left)
	rightTrans := p.rhs.Successors(q.Right)
	for _, lt := range leftTrans {
		for _, rt := range rightTrans {
			if !p.match(lt.Label, rt.Label) {
				continue
			}
			out = append(out, Transition[Pair[QL, QR], L]{
				From:  q,
				To:    Pair[QL, QR]{Left: lt.To, Right: rt.To},
				Label: p.combiner.Build(lt.Label, rt.Label),
			})
		}
	}
	return out
}

func (p *Product[QL, QR, LL, LR, L]) PrintState(q Pair[QL, QR]) string {
	return p.lhs.PrintState(q.Left) + "," + p.rhs.PrintState(q.Right)
}

func (p *Product[QL, QR, LL, LR, L]) PrintLabel(l L) string {
	return p.lhs.PrintLabel(p.combiner.Lhs(l)) + "|" + p.rhs.PrintLabel(p.combiner.Rhs(l))
}
