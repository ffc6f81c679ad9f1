package modeladapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spactiongo/cltlsup/automaton/counter"
	"github.com/spactiongo/cltlsup/automaton/modeladapter"
)

// fakeModel is a tiny always-a model: a single state looping on itself
// with the letter {a: true}, one acceptance set covering the self-loop.
type fakeModel struct{}

func (fakeModel) InitState() (int, bool) { return 0, true }

func (fakeModel) SuccIter(s int) []modeladapter.Transition[int] {
	if s != 0 {
		return nil
	}
	return []modeladapter.Transition[int]{
		{To: 0, Letter: counter.PropSet{"a": true}, Acc: counter.NewAccSet(0)},
	}
}

func (fakeModel) NumAcceptanceSets() int { return 1 }

func (fakeModel) PrintState(s int) string { return "q0" }

func TestWrap_AlwaysAModel(t *testing.T) {
	ca, ok := modeladapter.Wrap[int](fakeModel{})
	require.True(t, ok)
	assert.Equal(t, 0, ca.NumCounters())
	assert.Equal(t, 1, ca.NumAcceptanceSets())
	assert.Len(t, ca.States(), 1)

	succ := ca.Successors(0)
	require.Len(t, succ, 1)
	assert.Equal(t, 0, succ[0].To)
	assert.Equal(t, map[string]bool{"a": true}, map[string]bool(succ[0].Label.Letter))
	assert.Len(t, succ[0].Label.Acc, 1)
}

type emptyModel struct{}

func (emptyModel) InitState() (int, bool)                       { return 0, false }
func (emptyModel) SuccIter(s int) []modeladapter.Transition[int] { return nil }
func (emptyModel) NumAcceptanceSets() int                        { return 0 }
func (emptyModel) PrintState(s int) string                       { return "" }

func TestWrap_NoInitialState(t *testing.T) {
	ca, ok := modeladapter.Wrap[int](emptyModel{})
	assert.False(t, ok)
	assert.Empty(t, ca.States())
}
