package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printInt(i int) string { return "s" }

func TestAutomaton_BasicWiring(t *testing.T) {
	a := New[int](1, 1, printInt)
	require.NoError(t, a.AddState(0))
	require.NoError(t, a.AddState(1))
	require.NoError(t, a.SetInitialState(0))

	err := a.AddTransition(0, 1, PropSet{"p": true}, []CounterOpList{{OpIncrement, OpCheck}}, NewAccSet(0))
	require.NoError(t, err)

	succ := a.Successors(0)
	require.Len(t, succ, 1)
	assert.Equal(t, 1, succ[0].To)
	assert.True(t, succ[0].Label.Ops[0][0].Has(OpIncrement))
	assert.Contains(t, a.AcceptanceTransitions(0), succ[0])
}

func TestAutomaton_OpsSizeMismatchPanics(t *testing.T) {
	a := New[int](2, 0, printInt)
	require.NoError(t, a.AddState(0))
	require.NoError(t, a.AddState(1))

	assert.Panics(t, func() {
		_ = a.AddTransition(0, 1, PropSet{}, []CounterOpList{{OpReset}}, nil)
	})
}

func TestProduct_ConcatenatesCountersAndShiftsAcceptance(t *testing.T) {
	lhs := New[int](1, 1, printInt)
	require.NoError(t, lhs.AddState(0))
	require.NoError(t, lhs.SetInitialState(0))
	require.NoError(t, lhs.AddTransition(0, 0, PropSet{"a": true}, []CounterOpList{{OpIncrement}}, NewAccSet(0)))

	rhs := New[int](1, 1, printInt)
	require.NoError(t, rhs.AddState(0))
	require.NoError(t, rhs.SetInitialState(0))
	require.NoError(t, rhs.AddTransition(0, 0, PropSet{"a": true}, []CounterOpList{{OpReset}}, NewAccSet(0)))

	prod := Product(lhs, rhs)
	assert.Equal(t, 2, prod.NumCounters())
	assert.Equal(t, 2, prod.NumAcceptanceSets())

	init, ok := prod.InitialState()
	require.True(t, ok)
	succ := prod.Successors(init)
	require.Len(t, succ, 1)
	assert.Len(t, succ[0].Label.Ops, 2)
	// rhs's acceptance set 0 must have been shifted to index 1.
	_, hasLeft := succ[0].Label.Acc[0]
	_, hasRight := succ[0].Label.Acc[1]
	assert.True(t, hasLeft)
	assert.True(t, hasRight)
}
