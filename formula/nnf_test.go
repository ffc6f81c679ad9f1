package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNNF_Idempotent(t *testing.T) {
	f := NewFactory()
	a, b := f.Atomic("a"), f.Atomic("b")
	raw := f.Not(f.Until(a, f.Not(b)))

	once := f.ToNNF(raw)
	twice := f.ToNNF(once)
	assert.Equal(t, once, twice)
	assert.True(t, f.IsNNF(once))
}

func TestToNNF_Dualities(t *testing.T) {
	f := NewFactory()
	a, b := f.Atomic("a"), f.Atomic("b")

	// !(a U b) == !a R !b
	got := f.ToNNF(f.Not(f.Until(a, b)))
	want := f.Release(f.Not(a), f.Not(b))
	assert.Equal(t, want, got)

	// !X(a) == X(!a)
	gotNext := f.ToNNF(f.Not(f.Next(a)))
	wantNext := f.Next(f.Not(a))
	assert.Equal(t, wantNext, gotNext)

	// !(a UN b) == !a RN !b
	gotCost := f.ToNNF(f.Not(f.CostUntil(a, b)))
	wantCost := f.CostRelease(f.Not(a), f.Not(b))
	assert.Equal(t, wantCost, gotCost)
}

func TestToNNF_PreservesPredicates(t *testing.T) {
	f := NewFactory()
	a, b := f.Atomic("a"), f.Atomic("b")

	prop, err := f.And(f.Not(a), b)
	if err != nil {
		t.Fatal(err)
	}
	n := f.ToNNF(prop)
	assert.True(t, f.IsPropositional(n))

	infOnly := f.Not(f.CostUntil(a, b))
	n2 := f.ToNNF(infOnly)
	assert.True(t, f.IsSupLTL(n2)) // !(a UN b) dualises to RN, which has no UN
}

func TestToDNF_DistributesAtPropositionalLayer(t *testing.T) {
	f := NewFactory()
	a, b, c := f.Atomic("a"), f.Atomic("b"), f.Atomic("c")

	bOrC, err := f.Or(b, c)
	if err != nil {
		t.Fatal(err)
	}
	conj, err := f.And(a, bOrC)
	if err != nil {
		t.Fatal(err)
	}

	dnf := f.ToDNF(conj)
	assert.Equal(t, KindMult, f.Kind(dnf))
	assert.Equal(t, OpOr, f.MultOp(dnf))
	for _, clause := range f.Children(dnf) {
		assert.Equal(t, KindMult, f.Kind(clause))
		assert.Equal(t, OpAnd, f.MultOp(clause))
	}
}

func TestToDNF_LeavesTemporalOperatorsOpaque(t *testing.T) {
	f := NewFactory()
	a, b := f.Atomic("a"), f.Atomic("b")
	u := f.Until(a, b)

	dnf := f.ToDNF(u)
	assert.Equal(t, u, dnf, "a single temporal leaf has nothing to distribute")
}
