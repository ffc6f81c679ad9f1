package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spactiongo/cltlsup/automaton/counter"
	"github.com/spactiongo/cltlsup/automaton/dot"
)

func printInt(i int) string { return "s" }

// TestRender_XP renders a hand-built two-state CA with one transition
// labelled p. tableau.Translate yields three states for `X p` ([X p],
// [p] and the empty node), of which one transition is labelled p.
func TestRender_XP(t *testing.T) {
	ca := counter.New[int](0, 0, printInt)
	require.NoError(t, ca.AddState(0))
	require.NoError(t, ca.AddState(1))
	require.NoError(t, ca.SetInitialState(0))
	require.NoError(t, ca.AddTransition(0, 1, counter.PropSet{"p": true}, nil, nil))

	var sb strings.Builder
	require.NoError(t, dot.Render[int](ca, &sb))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	// Two state lines plus one transition line, each with a label.
	assert.Equal(t, 3, strings.Count(out, "[label="))
	assert.Equal(t, 1, strings.Count(out, "->"))
	assert.Contains(t, out, `label="p"`)
}

func TestRender_UnreachableStateOmitted(t *testing.T) {
	ca := counter.New[int](0, 0, printInt)
	require.NoError(t, ca.AddState(0))
	require.NoError(t, ca.AddState(1))
	require.NoError(t, ca.SetInitialState(0))

	var sb strings.Builder
	require.NoError(t, dot.Render[int](ca, &sb))
	out := sb.String()

	assert.Equal(t, 1, strings.Count(out, "[label="))
}
