package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_HashConsUniqueness(t *testing.T) {
	f := NewFactory()

	a1 := f.Atomic("a")
	a2 := f.Atomic("a")
	assert.Equal(t, a1, a2, "same atomic name must share a handle")

	b := f.Atomic("b")
	c := f.Atomic("c")

	bc1, err := f.Or(b, c)
	require.NoError(t, err)
	bc2, err := f.Or(c, b)
	require.NoError(t, err)
	assert.Equal(t, bc1, bc2, "|| must collapse commutatively")

	lhs1, err := f.And(a1, bc1)
	require.NoError(t, err)
	lhs2, err := f.And(bc2, a2)
	require.NoError(t, err)
	assert.Equal(t, lhs1, lhs2, "and(a, or(b,c)) must be identical regardless of construction order")
}

func TestFactory_HeightAndPredicates(t *testing.T) {
	f := NewFactory()
	a := f.Atomic("a")
	b := f.Atomic("b")
	until := f.Until(a, b)

	assert.Equal(t, 1, f.Height(a))
	assert.Equal(t, 2, f.Height(until))
	assert.False(t, f.IsPropositional(until))
	assert.True(t, f.IsPropositional(a))

	costUntil := f.CostUntil(a, b)
	assert.True(t, f.IsInfLTL(costUntil))
	assert.False(t, f.IsSupLTL(costUntil))

	costRelease := f.CostRelease(a, b)
	assert.False(t, f.IsInfLTL(costRelease))
	assert.True(t, f.IsSupLTL(costRelease))
}

func TestFactory_StripCost(t *testing.T) {
	f := NewFactory()
	a, b := f.Atomic("a"), f.Atomic("b")

	plain := f.Until(a, b)
	out, err := f.StripCost(plain)
	require.NoError(t, err)
	assert.Equal(t, plain, out)

	costy := f.CostUntil(a, b)
	_, err = f.StripCost(costy)
	assert.ErrorIs(t, err, ErrUnsupportedCostOperator)
}

func TestFactory_DerivedOperators(t *testing.T) {
	f := NewFactory()
	a := f.Atomic("a")

	fin := f.Finally(a)
	assert.Equal(t, OpUntil, f.BinOp(fin))
	assert.Equal(t, KindConstant, f.Kind(f.Left(fin)))
	assert.True(t, f.BoolValue(f.Left(fin)))

	costFin := f.CostFinally(a)
	assert.Equal(t, OpCostUntil, f.BinOp(costFin))

	glob := f.Globally(a)
	assert.Equal(t, KindUnary, f.Kind(glob))
	assert.Equal(t, OpNot, f.UnaryOp(glob))
}
