package counter

import "github.com/spactiongo/cltlsup/automaton/ts"

// combiner implements ts.LabelCombiner[Label, Label, Label] for two
// counter automata: it concatenates the operand ops vectors and shifts
// the right-hand automaton's acceptance indices by leftAccSets, per
// §4.4 ("Product of CAs"). Build/Lhs/Rhs are inverses given leftOps and
// leftAccSets are held fixed across a single Product call.
type combiner struct {
	leftOps     int
	leftAccSets int
}

func (c combiner) Lhs(l Label) Label {
	return Label{Letter: l.Letter, Ops: l.Ops[:c.leftOps], Acc: shiftDown(l.Acc, c.leftAccSets)}
}

func (c combiner) Rhs(l Label) Label {
	return Label{Letter: l.Letter, Ops: l.Ops[c.leftOps:], Acc: shiftUp(l.Acc, c.leftAccSets, true)}
}

func (c combiner) Build(l, r Label) Label {
	ops := make([]CounterOpList, 0, len(l.Ops)+len(r.Ops))
	ops = append(ops, l.Ops...)
	ops = append(ops, r.Ops...)
	return Label{
		Letter: l.Letter.Merge(r.Letter),
		Ops:    ops,
		Acc:    l.Acc.Union(shiftUp(r.Acc, c.leftAccSets, false)),
	}
}

func shiftUp(s AccSet, by int, down bool) AccSet {
	out := make(AccSet, len(s))
	for idx := range s {
		if down {
			if idx >= by {
				out[idx-by] = struct{}{}
			}
		} else {
			out[idx+by] = struct{}{}
		}
	}
	return out
}

func shiftDown(s AccSet, by int) AccSet {
	out := make(AccSet, 0)
	for idx := range s {
		if idx < by {
			out[idx] = struct{}{}
		}
	}
	return out
}

// Product builds the materialised product of two counter automata: state
// space ts.Pair[QL, QR], NumCounters = lhs.NumCounters() +
// rhs.NumCounters(), NumAcceptanceSets = lhs.NumAcceptanceSets() +
// rhs.NumAcceptanceSets(). Two transitions p1-l1->q1 and p2-l2->q2
// synchronise iff their letters are PropSet-consistent; the resulting
// letter is their merge.
//
// Both factors must have finite, already-materialised state spaces (this
// is always true here: the tableau's formula CA and the model adapter's
// CA are both finite Büchi-style automata; only the configuration
// automaton that wraps this product is allowed to be unbounded, and it
// is built separately by package config).
func Product[QL comparable, QR comparable](lhs *Automaton[QL], rhs *Automaton[QR]) *Automaton[ts.Pair[QL, QR]] {
	cmb := combiner{leftOps: lhs.NumCounters(), leftAccSets: lhs.NumAcceptanceSets()}
	printState := func(p ts.Pair[QL, QR]) string {
		return lhs.PrintState(p.Left) + "," + rhs.PrintState(p.Right)
	}
	out := New[ts.Pair[QL, QR]](lhs.NumCounters()+rhs.NumCounters(), lhs.NumAcceptanceSets()+rhs.NumAcceptanceSets(), printState)

	for _, l := range lhs.States() {
		for _, r := range rhs.States() {
			_ = out.AddState(ts.Pair[QL, QR]{Left: l, Right: r})
		}
	}
	if li, ok := lhs.InitialState(); ok {
		if ri, ok2 := rhs.InitialState(); ok2 {
			_ = out.SetInitialState(ts.Pair[QL, QR]{Left: li, Right: ri})
		}
	}

	match := func(ll, rl Label) bool { return ll.Letter.Consistent(rl.Letter) }
	prod := ts.NewProduct[QL, QR, Label, Label, Label](lhs.TransitionSystem(), rhs.TransitionSystem(), cmb, match)

	for _, l := range lhs.States() {
		for _, r := range rhs.States() {
			src := ts.Pair[QL, QR]{Left: l, Right: r}
			for _, tr := range prod.Successors(src) {
				_ = out.AddTransition(tr.From, tr.To, tr.Label.Letter, tr.Label.Ops, tr.Label.Acc)
			}
		}
	}
	return out
}
