package instantiate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spactiongo/cltlsup/formula"
)

func TestInf_RoundTripOnPureLTL(t *testing.T) {
	f := formula.NewFactory()
	a, b := f.Atomic("a"), f.Atomic("b")
	u := f.Until(a, b)

	got, err := Inf(f, u, 3)
	require.NoError(t, err)
	assert.Equal(t, f.ToNNF(u), f.ToNNF(got))
}

func TestInf_RefusesRN(t *testing.T) {
	f := formula.NewFactory()
	a, b := f.Atomic("a"), f.Atomic("b")
	_, err := Inf(f, f.CostRelease(a, b), 0)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestSup_RefusesUN(t *testing.T) {
	f := formula.NewFactory()
	a, b := f.Atomic("a"), f.Atomic("b")
	_, err := Sup(f, f.CostUntil(a, b), 0)
	assert.ErrorIs(t, err, ErrDomain)
}

// TestInf_CostUntilDegreeTwo checks scenario 4 of §8: Inf on (a UN b) at
// n=2 must produce exactly (a || X((a || X(a U b)) U b)) U b, modulo NNF.
func TestInf_CostUntilDegreeTwo(t *testing.T) {
	f := formula.NewFactory()
	a, b := f.Atomic("a"), f.Atomic("b")
	costUntil := f.CostUntil(a, b)

	got, err := Inf(f, costUntil, 2)
	require.NoError(t, err)

	// hand-build (a || X((a || X(a U b)) U b)) U b
	n0 := f.Until(a, b)
	n1left := f.OrAll([]formula.Handle{a, f.Next(n0)})
	n1 := f.Until(n1left, b)
	n2left := f.OrAll([]formula.Handle{a, f.Next(n1)})
	want := f.Until(n2left, b)

	assert.Equal(t, f.ToNNF(want), f.ToNNF(got))
}
