package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spactiongo/cltlsup/automaton/counter"
)

func printInt(i int) string { return "s" }

func TestDefaultConfig_ZeroCounters_BoundedAtZero(t *testing.T) {
	ca := counter.New[int](0, 1, printInt)
	require.NoError(t, ca.AddState(0))
	require.NoError(t, ca.SetInitialState(0))

	cfg := New(ca)
	c, ok := cfg.DefaultConfig()
	require.True(t, ok)
	assert.True(t, c.Value.Bounded)
	assert.Equal(t, 0, c.Value.V)
}

func TestDefaultConfig_WithCounters_Unbounded(t *testing.T) {
	ca := counter.New[int](1, 1, printInt)
	require.NoError(t, ca.AddState(0))
	require.NoError(t, ca.SetInitialState(0))

	cfg := New(ca)
	c, ok := cfg.DefaultConfig()
	require.True(t, ok)
	assert.False(t, c.Value.Bounded)
}

func TestSuccessors_IncrementThenCheck(t *testing.T) {
	ca := counter.New[int](1, 1, printInt)
	require.NoError(t, ca.AddState(0))
	require.NoError(t, ca.AddState(1))
	require.NoError(t, ca.SetInitialState(0))
	require.NoError(t, ca.AddTransition(0, 1, counter.PropSet{}, []counter.CounterOpList{{counter.OpIncrement, counter.OpCheck}}, nil))

	cfg := New(ca)
	c0, _ := cfg.DefaultConfig()
	succ := cfg.Successors(c0)
	require.Len(t, succ, 1)
	assert.True(t, succ[0].To.Value.Bounded)
	assert.Equal(t, 1, succ[0].To.Value.V)
	assert.Equal(t, []int{1}, succ[0].To.Counters)
}

func TestSuccessors_MonotoneAcrossChecks(t *testing.T) {
	ca := counter.New[int](1, 1, printInt)
	require.NoError(t, ca.AddState(0))
	require.NoError(t, ca.SetInitialState(0))
	require.NoError(t, ca.AddTransition(0, 0, counter.PropSet{}, []counter.CounterOpList{{counter.OpIncrement, counter.OpCheck}}, nil))

	cfg := New(ca)
	c, _ := cfg.DefaultConfig()
	for i := 1; i <= 3; i++ {
		succ := cfg.Successors(c)
		require.Len(t, succ, 1)
		c = succ[0].To
		// The counter keeps growing, but a check only ever lowers the
		// value, so it stays at the first check's value of 1.
		assert.Equal(t, 1, c.Value.V)
	}
}
