package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spactiongo/cltlsup/formula"
	"github.com/spactiongo/cltlsup/parser"
)

func TestParse_SimpleForms(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"!a", "!(a)"},
		{"X a", "X(a)"},
		{"a && b", "(a && b)"},
		{"a || b", "(a || b)"},
		{"a U b", "(a U b)"},
		{"a R b", "(a R b)"},
		{"a UN b", "(a UN b)"},
		{"a RN b", "(a RN b)"},
		{"F a", "(true U a)"},
		{"true", "true"},
		{"false", "false"},
	}
	for _, c := range cases {
		f := formula.NewFactory()
		h, err := parser.Parse(f, c.src)
		require.NoError(t, err, c.src)
		assert.Equal(t, c.want, f.String(h), c.src)
	}
}

func TestParse_Precedence(t *testing.T) {
	f := formula.NewFactory()
	h, err := parser.Parse(f, "a && b || c")
	require.NoError(t, err)
	// && binds tighter than ||, so this is (a && b) || c.
	assert.Equal(t, "((a && b) || c)", f.String(h))
}

func TestParse_TemporalChainLeftAssociative(t *testing.T) {
	f := formula.NewFactory()
	h, err := parser.Parse(f, "a U b U c")
	require.NoError(t, err)
	assert.Equal(t, "((a U b) U c)", f.String(h))
}

func TestParse_ImplicationRightAssociative(t *testing.T) {
	f := formula.NewFactory()
	h, err := parser.Parse(f, "a -> b -> c")
	require.NoError(t, err)
	// b -> c is nested inside a -> (...); String prints || operands in
	// the factory's canonical (handle id) order, not source order.
	assert.Equal(t, "((c || !(b)) || !(a))", f.String(h))
}

func TestParse_Parentheses(t *testing.T) {
	f := formula.NewFactory()
	h, err := parser.Parse(f, "(a && (b || c))")
	require.NoError(t, err)
	assert.Equal(t, "(a && (b || c))", f.String(h))
}

func TestParse_CostUnary(t *testing.T) {
	f := formula.NewFactory()
	h, err := parser.Parse(f, "GN a")
	require.NoError(t, err)
	assert.Equal(t, "!((true UN !(a)))", f.String(h))
}

func TestParse_Malformed_ReturnsError(t *testing.T) {
	f := formula.NewFactory()
	_, err := parser.Parse(f, "a &&")
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrParse)
}
