package tableau

import "github.com/spactiongo/cltlsup/formula"

// operatorTables holds the two index assignments derived from a single
// pre-order walk of the (already-NNF) formula:
//
//   - counterIndex assigns one counter, in encounter order, to each
//     distinct UN/RN subterm (§4.4: "each UN/RN operator contributes
//     exactly one counter").
//   - accIndex assigns one acceptance-set index, in encounter order, to
//     each distinct U, UN or RN subterm. Plain R gets neither: it is a
//     safety operator with no fairness obligation to witness. See
//     doc.go and DESIGN.md for why plain U needs an acceptance index
//     even though §4.5's prose only calls out the cost operators.
type operatorTables struct {
	counterIndex map[formula.Handle]int
	accIndex     map[formula.Handle]int
}

func scanOperators(f *formula.Factory, root formula.Handle) operatorTables {
	t := operatorTables{
		counterIndex: make(map[formula.Handle]int),
		accIndex:     make(map[formula.Handle]int),
	}
	seen := make(map[formula.Handle]bool)
	t.walk(f, root, seen)
	return t
}

func (t operatorTables) walk(f *formula.Factory, h formula.Handle, seen map[formula.Handle]bool) {
	if seen[h] {
		return
	}
	seen[h] = true

	switch f.Kind(h) {
	case formula.KindAtomic, formula.KindConstant:
		return
	case formula.KindUnary:
		t.walk(f, f.Child(h), seen)
	case formula.KindBinary:
		switch f.BinOp(h) {
		case formula.OpUntil:
			if _, ok := t.accIndex[h]; !ok {
				t.accIndex[h] = len(t.accIndex)
			}
		case formula.OpCostUntil, formula.OpCostRelease:
			if _, ok := t.accIndex[h]; !ok {
				t.accIndex[h] = len(t.accIndex)
			}
			if _, ok := t.counterIndex[h]; !ok {
				t.counterIndex[h] = len(t.counterIndex)
			}
		case formula.OpRelease:
			// safety operator: no acceptance index.
		}
		t.walk(f, f.Left(h), seen)
		t.walk(f, f.Right(h), seen)
	case formula.KindMult:
		for _, c := range f.Children(h) {
			t.walk(f, c, seen)
		}
	}
}

// containsSubterm reports whether target occurs anywhere within h
// (including h itself).
func containsSubterm(f *formula.Factory, h, target formula.Handle) bool {
	if h == target {
		return true
	}
	switch f.Kind(h) {
	case formula.KindAtomic, formula.KindConstant:
		return false
	case formula.KindUnary:
		return containsSubterm(f, f.Child(h), target)
	case formula.KindBinary:
		return containsSubterm(f, f.Left(h), target) || containsSubterm(f, f.Right(h), target)
	case formula.KindMult:
		for _, c := range f.Children(h) {
			if containsSubterm(f, c, target) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
