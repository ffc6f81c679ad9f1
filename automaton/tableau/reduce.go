package tableau

import "github.com/spactiongo/cltlsup/formula"

// epsChild is one epsilon-successor of a pseudo-node, together with the
// (at most one) counter action and acceptance mark that epsilon step
// contributes — purely structural, independent of how the parent was
// reached, which is what lets the translator memoize it per Node.
type epsChild struct {
	to        *Node
	hasOp     bool
	counter   int
	op        counterOp
	hasAccBit bool
	accBit    int
}

// counterOp mirrors counter.CounterOp without importing package counter
// here, keeping the reduction rules free of any dependency on the output
// automaton's representation; translator.go converts to counter.CounterOp
// at the boundary.
type counterOp uint8

const (
	opNone      counterOp = 0
	opReset     counterOp = 1
	opIncCheck  counterOp = 2
)

// findReducible scans n's terms from the end and returns the index of the
// first Binary or Mult term found — the "greatest height, ties broken
// toward the most recently inserted" candidate of §4.5.
func findReducible(f *formula.Factory, n *Node) (int, bool) {
	for i := len(n.terms) - 1; i >= 0; i-- {
		switch f.Kind(n.terms[i]) {
		case formula.KindBinary, formula.KindMult:
			return i, true
		}
	}
	return 0, false
}

// without returns a copy of terms with the element at idx removed.
func without(terms []formula.Handle, idx int) []formula.Handle {
	out := make([]formula.Handle, 0, len(terms)-1)
	out = append(out, terms[:idx]...)
	out = append(out, terms[idx+1:]...)
	return out
}

// epsilonChildren computes (and the translator caches) the structural
// epsilon-successors of n: nil means n is fire-ready (no more reducible
// term). Each branch corresponds to one row of §4.5's reduction table.
func (tr *translator) epsilonChildren(n *Node) []epsChild {
	if cached, ok := tr.epsCache[n]; ok {
		return cached
	}
	out := tr.computeEpsilonChildren(n)
	tr.epsCache[n] = out
	return out
}

func (tr *translator) computeEpsilonChildren(n *Node) []epsChild {
	f := tr.factory
	idx, ok := findReducible(f, n)
	if !ok {
		return nil
	}
	term := n.terms[idx]
	leftover := without(n.terms, idx)

	switch f.Kind(term) {
	case formula.KindBinary:
		left, right := f.Left(term), f.Right(term)
		next := f.Next(term)
		switch f.BinOp(term) {
		case formula.OpUntil:
			phi0 := tr.buildNode(append(append([]formula.Handle(nil), leftover...), right))
			phi1 := tr.buildNode(append(append([]formula.Handle(nil), leftover...), left, next))
			accBit := tr.ops.accIndex[term]
			return []epsChild{
				{to: phi0, hasAccBit: true, accBit: accBit},
				{to: phi1},
			}
		case formula.OpRelease:
			phi0 := tr.buildNode(append(append([]formula.Handle(nil), leftover...), left, right))
			phi1 := tr.buildNode(append(append([]formula.Handle(nil), leftover...), right, next))
			return []epsChild{{to: phi0}, {to: phi1}}
		case formula.OpCostUntil:
			k := tr.ops.counterIndex[term]
			accBit := tr.ops.accIndex[term]
			phi0 := tr.buildNode(append(append([]formula.Handle(nil), leftover...), left, right))
			phi1 := tr.buildNode(append(append([]formula.Handle(nil), leftover...), right, next))
			phi2 := tr.buildNode([]formula.Handle{next})
			return []epsChild{
				{to: phi0, hasOp: true, counter: k, op: opReset, hasAccBit: true, accBit: accBit},
				{to: phi1},
				{to: phi2, hasOp: true, counter: k, op: opIncCheck},
			}
		case formula.OpCostRelease:
			k := tr.ops.counterIndex[term]
			accBit := tr.ops.accIndex[term]
			phi0 := tr.buildNode(append(append([]formula.Handle(nil), leftover...), left, right))
			phi1 := tr.buildNode(append(append([]formula.Handle(nil), leftover...), right, next))
			phi2 := tr.buildNode([]formula.Handle{next})
			return []epsChild{
				{to: phi0, hasOp: true, counter: k, op: opReset, hasAccBit: true, accBit: accBit},
				{to: phi1},
				{to: phi2, hasOp: true, counter: k, op: opIncCheck},
			}
		}
	case formula.KindMult:
		switch f.MultOp(term) {
		case formula.OpOr:
			children := f.Children(term)
			out := make([]epsChild, 0, len(children))
			for _, c := range children {
				phi := tr.buildNode(append(append([]formula.Handle(nil), leftover...), c))
				out = append(out, epsChild{to: phi})
			}
			return out
		case formula.OpAnd:
			children := f.Children(term)
			merged := append(append([]formula.Handle(nil), leftover...), children...)
			phi := tr.buildNode(merged)
			return []epsChild{{to: phi}}
		}
	}
	panic("tableau: unreachable reduction case")
}
