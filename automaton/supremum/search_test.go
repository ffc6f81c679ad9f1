package supremum

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spactiongo/cltlsup/automaton/config"
	"github.com/spactiongo/cltlsup/automaton/counter"
	internalconfig "github.com/spactiongo/cltlsup/internal/config"
)

func printInt(i int) string { return "s" }

func TestFindSupremum_NoAccSCC_ReturnsInfinite(t *testing.T) {
	ca := counter.New[int](0, 1, printInt)
	require.NoError(t, ca.AddState(0))
	require.NoError(t, ca.AddState(1))
	require.NoError(t, ca.SetInitialState(0))
	require.NoError(t, ca.AddTransition(0, 1, counter.PropSet{}, nil, nil))

	cfg := config.New(ca)
	opt := internalconfig.New()

	res, err := FindSupremum(cfg, opt, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, res.Infinite)
}

// stabilizingAutomaton builds a single self-looping state whose counter
// operation list (increment, increment, check, reset) settles at a fixed
// value of 2 from its second application onward, with the self-loop
// marked as the automaton's sole acceptance-set member.
func stabilizingAutomaton(t *testing.T) *counter.Automaton[int] {
	t.Helper()
	ca := counter.New[int](1, 1, printInt)
	require.NoError(t, ca.AddState(0))
	require.NoError(t, ca.SetInitialState(0))
	ops := []counter.CounterOpList{{counter.OpIncrement, counter.OpIncrement, counter.OpCheck, counter.OpReset}}
	require.NoError(t, ca.AddTransition(0, 0, counter.PropSet{}, ops, counter.NewAccSet(0)))
	return ca
}

func TestFindSupremum_StableCycle_WithinBound(t *testing.T) {
	cfg := config.New(stabilizingAutomaton(t))
	opt := internalconfig.New(internalconfig.WithBound(5))

	res, err := FindSupremum(cfg, opt, zerolog.Nop())
	require.NoError(t, err)
	require.False(t, res.Infinite)
	assert.Equal(t, 2, res.Value)
}

func TestFindSupremum_StableCycle_ExceedsBound(t *testing.T) {
	cfg := config.New(stabilizingAutomaton(t))
	opt := internalconfig.New(internalconfig.WithBound(1))

	res, err := FindSupremum(cfg, opt, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, res.Infinite)
}

func TestFindInfimum_StableCycle_WithinBound(t *testing.T) {
	cfg := config.New(stabilizingAutomaton(t))
	opt := internalconfig.New(internalconfig.WithBound(5))

	res, err := FindInfimum(cfg, opt, zerolog.Nop())
	require.NoError(t, err)
	require.False(t, res.Infinite)
	assert.Equal(t, 2, res.Value)
}

// forkingAutomaton builds two disjoint accepting self-loops reachable
// from a shared initial state: the first-explored branch stabilizes at
// the higher value 5, the second at the lower value 2, by way of an
// intermediate state whose own value (10) is not itself an improvement
// over 5 — only its descendant is. This exercises the new-successor
// shortcut of search.go: a minimizing (infimum) search must still
// descend into that intermediate state, even though its own value looks
// no better than the current best, because CFG values only ever
// decrease further down a bounded branch.
func forkingAutomaton(t *testing.T) *counter.Automaton[int] {
	t.Helper()
	ca := counter.New[int](1, 1, printInt)
	for _, q := range []int{0, 1, 2, 3} {
		require.NoError(t, ca.AddState(q))
	}
	require.NoError(t, ca.SetInitialState(0))

	fiveOps := []counter.CounterOpList{{
		counter.OpIncrement, counter.OpIncrement, counter.OpIncrement,
		counter.OpIncrement, counter.OpIncrement, counter.OpCheck, counter.OpReset,
	}}
	tenOps := []counter.CounterOpList{{
		counter.OpIncrement, counter.OpIncrement, counter.OpIncrement, counter.OpIncrement,
		counter.OpIncrement, counter.OpIncrement, counter.OpIncrement, counter.OpIncrement,
		counter.OpIncrement, counter.OpIncrement, counter.OpCheck, counter.OpReset,
	}}
	twoOps := []counter.CounterOpList{{
		counter.OpIncrement, counter.OpIncrement, counter.OpCheck, counter.OpReset,
	}}
	noOps := []counter.CounterOpList{{}}

	// Branch A, explored first: 0 -> 1 (value settles at 5), 1 -> 1 accepting self-loop.
	require.NoError(t, ca.AddTransition(0, 1, counter.PropSet{}, fiveOps, nil))
	require.NoError(t, ca.AddTransition(1, 1, counter.PropSet{}, noOps, counter.NewAccSet(0)))

	// Branch B, explored second: 0 -> 2 (value 10) -> 3 (value 2), 3 -> 3 accepting self-loop.
	require.NoError(t, ca.AddTransition(0, 2, counter.PropSet{}, tenOps, nil))
	require.NoError(t, ca.AddTransition(2, 3, counter.PropSet{}, twoOps, nil))
	require.NoError(t, ca.AddTransition(3, 3, counter.PropSet{}, noOps, counter.NewAccSet(0)))

	return ca
}

func TestFindInfimum_Shortcut_DoesNotPruneLowerDescendant(t *testing.T) {
	cfg := config.New(forkingAutomaton(t))
	opt := internalconfig.New()

	res, err := FindInfimum(cfg, opt, zerolog.Nop())
	require.NoError(t, err)
	require.False(t, res.Infinite)
	assert.Equal(t, 2, res.Value)
}

func TestFindSupremum_Shortcut_PrunesLowerDescendant(t *testing.T) {
	cfg := config.New(forkingAutomaton(t))
	opt := internalconfig.New()

	res, err := FindSupremum(cfg, opt, zerolog.Nop())
	require.NoError(t, err)
	require.False(t, res.Infinite)
	assert.Equal(t, 5, res.Value)
}

func TestFindSupremum_NoInitialState_ReturnsError(t *testing.T) {
	ca := counter.New[int](0, 1, printInt)
	cfg := config.New(ca)
	opt := internalconfig.New()

	_, err := FindSupremum(cfg, opt, zerolog.Nop())
	assert.ErrorIs(t, err, ErrNoInitialState)
}
