package tableau

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spactiongo/cltlsup/formula"
)

func TestTranslate_FinallyA_TwoStates(t *testing.T) {
	f := formula.NewFactory()
	a := f.Atomic("a")
	phi := f.Finally(a)

	autom, root, err := Translate(f, phi, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Len(t, autom.States(), 2)
	assert.Equal(t, 0, autom.NumCounters())
	assert.Equal(t, 1, autom.NumAcceptanceSets())

	succ := autom.Successors(root)
	require.Len(t, succ, 2)

	var sawSatisfied, sawWaiting bool
	for _, tr := range succ {
		if len(tr.Label.Acc) == 1 {
			sawSatisfied = true
			assert.Equal(t, map[string]bool{"a": true}, map[string]bool(tr.Label.Letter))
		} else {
			sawWaiting = true
		}
	}
	assert.True(t, sawSatisfied)
	assert.True(t, sawWaiting)
}

func TestTranslate_CostFinally_OneCounterOneAcceptanceSet(t *testing.T) {
	f := formula.NewFactory()
	b := f.Atomic("b")
	phi := f.CostFinally(b)

	autom, _, err := Translate(f, phi, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, autom.NumCounters())
	assert.Equal(t, 1, autom.NumAcceptanceSets())
}

func TestTranslate_GloballyImpliesFinally_NoCostOperator(t *testing.T) {
	f := formula.NewFactory()
	a := f.Atomic("a")
	b := f.Atomic("b")
	phi := f.Globally(f.Imply(a, f.Finally(b)))

	autom, root, err := Translate(f, phi, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, autom.NumCounters())
	assert.Equal(t, 1, autom.NumAcceptanceSets())
	assert.NotEmpty(t, autom.Successors(root))
}
