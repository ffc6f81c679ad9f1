package formula

// ToNNF pushes negations inward by the standard dualities (§4.1):
//
//	¬(a && b)  = ¬a || ¬b            ¬(a || b)  = ¬a && ¬b
//	¬X(a)      = X(¬a)
//	¬(a U b)   = ¬a R ¬b             ¬(a R b)   = ¬a U ¬b
//	¬(a UN b)  = ¬a RN ¬b            ¬(a RN b)  = ¬a UN ¬b
//
// leaving negation only on atoms and constants. ToNNF is idempotent:
// ToNNF(ToNNF(h)) == ToNNF(h).
func (f *Factory) ToNNF(h Handle) Handle {
	t := f.Get(h)
	if t.isNNF {
		return h
	}
	return f.nnf(h)
}

func (f *Factory) nnf(h Handle) Handle {
	t := f.Get(h)
	switch t.kind {
	case KindAtomic, KindConstant:
		return h
	case KindUnary:
		if t.unaryOp == OpNext {
			return f.Next(f.nnf(t.child))
		}
		// t.unaryOp == OpNot: push the negation through t.child.
		return f.nnfNot(t.child)
	case KindBinary:
		return f.binary(t.binaryOp, f.nnf(t.left), f.nnf(t.right))
	case KindMult:
		children := make([]Handle, len(t.children))
		for i, c := range t.children {
			children[i] = f.nnf(c)
		}
		return f.multAll(t.multOp, children)
	default:
		panic("formula: nnf: unknown kind")
	}
}

// nnfNot computes NNF(¬child), dispatching on child's shape.
func (f *Factory) nnfNot(child Handle) Handle {
	t := f.Get(child)
	switch t.kind {
	case KindAtomic, KindConstant:
		return f.Not(child)
	case KindUnary:
		// child is itself X(g) or ¬g.
		if t.unaryOp == OpNext {
			return f.Next(f.nnfNot(t.child))
		}
		// double negation: ¬¬g = NNF(g)
		return f.nnf(t.child)
	case KindBinary:
		dual := dualBinary(t.binaryOp)
		return f.binary(dual, f.nnfNot(t.left), f.nnfNot(t.right))
	case KindMult:
		dualOp := OpOr
		if t.multOp == OpOr {
			dualOp = OpAnd
		}
		children := make([]Handle, len(t.children))
		for i, c := range t.children {
			children[i] = f.nnfNot(c)
		}
		return f.multAll(dualOp, children)
	default:
		panic("formula: nnfNot: unknown kind")
	}
}

func dualBinary(op BinaryOp) BinaryOp {
	switch op {
	case OpUntil:
		return OpRelease
	case OpRelease:
		return OpUntil
	case OpCostUntil:
		return OpCostRelease
	case OpCostRelease:
		return OpCostUntil
	default:
		panic("formula: dualBinary: unknown operator")
	}
}
