package formula

// ToDNF normalises h to NNF, then distributes && over || at the
// propositional layer only — temporal operators (X, U, R, UN, RN) are
// treated as opaque leaves, exactly as §4.1 specifies, since CLTL's
// temporal connectives have no distributive law with the propositional
// ones in general.
func (f *Factory) ToDNF(h Handle) Handle {
	n := f.ToNNF(h)
	clauses := f.dnfClauses(n)
	disjuncts := make([]Handle, len(clauses))
	for i, lits := range clauses {
		disjuncts[i] = f.AndAll(dedupeSorted(lits))
	}
	return f.OrAll(dedupeSorted(disjuncts))
}

// dnfClauses returns the disjunction of conjunctive clauses, each a list
// of literal handles, representing h (already in NNF).
func (f *Factory) dnfClauses(h Handle) [][]Handle {
	t := f.Get(h)
	switch t.kind {
	case KindMult:
		if t.multOp == OpOr {
			var out [][]Handle
			for _, c := range t.children {
				out = append(out, f.dnfClauses(c)...)
			}
			return out
		}
		// OpAnd: cartesian-product merge of each child's clause list.
		acc := [][]Handle{nil}
		for _, c := range t.children {
			childClauses := f.dnfClauses(c)
			var next [][]Handle
			for _, prefix := range acc {
				for _, clause := range childClauses {
					merged := append(append([]Handle(nil), prefix...), clause...)
					next = append(next, merged)
				}
			}
			acc = next
		}
		return acc
	default:
		// Atomic, constant, negated atom/constant, X(...), or a
		// temporal binary: an opaque leaf literal.
		return [][]Handle{{h}}
	}
}
