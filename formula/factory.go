package formula

import (
	"sort"
	"strconv"
	"strings"
)

// Factory is the single owning authority for a family of hash-consed CLTL
// terms. Per the source's design notes, ownership is modelled as an arena
// (Factory.arena) addressed by opaque Handle indices rather than by
// reference-counted pointers: structural equality collapses to index
// equality, and the whole arena is reclaimed when the Factory itself is
// garbage collected. Formulas form a DAG (shared subterms), never a cycle,
// so no cycle-breaking logic is required.
//
// A Factory is not safe for concurrent use from multiple goroutines.
type Factory struct {
	arena []term          // arena[0] is an unused sentinel so Handle{} is invalid
	index map[string]Handle // structural signature -> handle, the hash-cons table
}

// NewFactory returns an empty Factory ready to mint terms.
func NewFactory() *Factory {
	f := &Factory{
		arena: make([]term, 1), // index 0 reserved
		index: make(map[string]Handle),
	}
	return f
}

// Get dereferences h within f. It panics if h is the zero Handle or its
// index lies outside f's arena — both are programmer errors, not
// recoverable user errors (spec §7's InvariantViolation class). A handle
// minted by another Factory whose index is in range is not detected.
func (f *Factory) Get(h Handle) *term {
	if h.id == 0 || int(h.id) >= len(f.arena) {
		panic("formula: invalid handle for this factory")
	}
	return &f.arena[h.id]
}

// intern looks up t's structural signature and either returns the
// existing shared Handle, or appends t to the arena and returns a fresh
// one. This is the hash-consing chokepoint: every constructor in this
// package funnels through it.
func (f *Factory) intern(sig string, t term) Handle {
	if h, ok := f.index[sig]; ok {
		return h
	}
	f.arena = append(f.arena, t)
	h := Handle{id: uint32(len(f.arena) - 1)}
	f.index[sig] = h
	return h
}

// Atomic returns the handle for the atomic proposition named name,
// minting a fresh term only the first time name is seen.
func (f *Factory) Atomic(name string) Handle {
	sig := "A:" + name
	return f.intern(sig, term{
		kind: KindAtomic, name: name,
		height: 1, isPropositional: true, isNNF: true, isInfLTL: true, isSupLTL: true,
	})
}

// Constant returns the handle for the boolean constant b.
func (f *Factory) Constant(b bool) Handle {
	sig := "C:" + strconv.FormatBool(b)
	return f.intern(sig, term{
		kind: KindConstant, boolean: b,
		height: 1, isPropositional: true, isNNF: true, isInfLTL: true, isSupLTL: true,
	})
}

// True and False are convenience wrappers over Constant.
func (f *Factory) True() Handle  { return f.Constant(true) }
func (f *Factory) False() Handle { return f.Constant(false) }

func (f *Factory) unary(op UnaryOp, child Handle) Handle {
	c := f.Get(child)
	sig := "U" + strconv.Itoa(int(op)) + ":" + strconv.Itoa(int(child.id))
	isProp := op == OpNot && c.isPropositional
	isNNF := (op == OpNext && c.isNNF) ||
		(op == OpNot && (c.kind == KindAtomic || c.kind == KindConstant))
	return f.intern(sig, term{
		kind: KindUnary, unaryOp: op, child: child,
		height:          1 + c.height,
		isPropositional: isProp,
		isNNF:           isNNF,
		isInfLTL:        c.isInfLTL,
		isSupLTL:        c.isSupLTL,
	})
}

// Not returns ¬child.
func (f *Factory) Not(child Handle) Handle { return f.unary(OpNot, child) }

// Next returns X(child).
func (f *Factory) Next(child Handle) Handle { return f.unary(OpNext, child) }

func (f *Factory) binary(op BinaryOp, left, right Handle) Handle {
	l, r := f.Get(left), f.Get(right)
	sig := "B" + strconv.Itoa(int(op)) + ":" + strconv.Itoa(int(left.id)) + ":" + strconv.Itoa(int(right.id))
	height := l.height
	if r.height > height {
		height = r.height
	}
	height++
	return f.intern(sig, term{
		kind: KindBinary, binaryOp: op, left: left, right: right,
		height:          height,
		isPropositional: false,
		isNNF:           l.isNNF && r.isNNF,
		isInfLTL:        op != OpCostRelease && l.isInfLTL && r.isInfLTL,
		isSupLTL:        op != OpCostUntil && l.isSupLTL && r.isSupLTL,
	})
}

// Until returns left U right.
func (f *Factory) Until(left, right Handle) Handle { return f.binary(OpUntil, left, right) }

// Release returns left R right.
func (f *Factory) Release(left, right Handle) Handle { return f.binary(OpRelease, left, right) }

// CostUntil returns left UN right, the cost-until operator.
func (f *Factory) CostUntil(left, right Handle) Handle { return f.binary(OpCostUntil, left, right) }

// CostRelease returns left RN right, the cost-release operator.
func (f *Factory) CostRelease(left, right Handle) Handle {
	return f.binary(OpCostRelease, left, right)
}

// mult constructs (or retrieves) the canonical n-ary node for op over
// children. Mult is a multi-set: children are de-duplicated and sorted by
// handle id so that commutatively-equal term lists collapse onto the same
// signature (and therefore the same Handle).
func (f *Factory) mult(op MultOp, children []Handle) (Handle, error) {
	if len(children) < 2 {
		return Handle{}, ErrNotEnoughChildren
	}
	uniq := dedupeSorted(children)
	if len(uniq) == 1 {
		return uniq[0], nil
	}

	var sb strings.Builder
	sb.WriteByte('M')
	sb.WriteString(strconv.Itoa(int(op)))
	sb.WriteByte(':')
	isProp, isNNF, isInf, isSup := true, true, true, true
	height := 0
	for i, c := range uniq {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(c.id)))
		t := f.Get(c)
		isProp = isProp && t.isPropositional
		isNNF = isNNF && t.isNNF
		isInf = isInf && t.isInfLTL
		isSup = isSup && t.isSupLTL
		if t.height > height {
			height = t.height
		}
	}
	height++

	return f.intern(sb.String(), term{
		kind: KindMult, multOp: op, children: uniq,
		height:          height,
		isPropositional: isProp,
		isNNF:           isNNF,
		isInfLTL:        isInf,
		isSupLTL:        isSup,
	}), nil
}

func dedupeSorted(children []Handle) []Handle {
	cp := append([]Handle(nil), children...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].id < cp[j].id })
	out := cp[:0:0]
	var last Handle
	for i, h := range cp {
		if i == 0 || h.id != last.id {
			out = append(out, h)
			last = h
		}
	}
	return out
}

// And returns the conjunction of children (at least two required).
func (f *Factory) And(children ...Handle) (Handle, error) { return f.mult(OpAnd, children) }

// Or returns the disjunction of children (at least two required).
func (f *Factory) Or(children ...Handle) (Handle, error) { return f.mult(OpOr, children) }

// AndAll is a convenience wrapper collapsing to the single child when
// len(children) == 1, and panicking on an empty slice (a caller bug: an
// empty conjunction has no canonical formula representation here).
func (f *Factory) AndAll(children []Handle) Handle {
	return f.multAll(OpAnd, children)
}

// OrAll is the disjunctive counterpart of AndAll.
func (f *Factory) OrAll(children []Handle) Handle {
	return f.multAll(OpOr, children)
}

func (f *Factory) multAll(op MultOp, children []Handle) Handle {
	switch len(children) {
	case 0:
		panic("formula: multAll requires at least one child")
	case 1:
		return children[0]
	default:
		h, err := f.mult(op, children)
		if err != nil {
			// unreachable: len(children) >= 2 here
			panic(err)
		}
		return h
	}
}

// MultAll applies multAll for the given operator; exported so other
// packages (instantiate, tableau) can rebuild an n-ary node generically
// without switching on MultOp themselves.
func (f *Factory) MultAll(op MultOp, children []Handle) Handle {
	return f.multAll(op, children)
}

// Imply returns left -> right, i.e. ¬left || right.
func (f *Factory) Imply(left, right Handle) Handle {
	return f.OrAll([]Handle{f.Not(left), right})
}

// Finally returns F(child) = true U child.
func (f *Factory) Finally(child Handle) Handle { return f.Until(f.True(), child) }

// Globally returns G(child) = ¬F(¬child).
func (f *Factory) Globally(child Handle) Handle { return f.Not(f.Finally(f.Not(child))) }

// CostFinally returns FN(child) = true UN child.
func (f *Factory) CostFinally(child Handle) Handle { return f.CostUntil(f.True(), child) }

// CostGlobally returns GN(child) = ¬FN(¬child).
func (f *Factory) CostGlobally(child Handle) Handle { return f.Not(f.CostFinally(f.Not(child))) }
