package parser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/spactiongo/cltlsup/formula"
)

// Formula is the parse tree root: one right-associative implication.
type Formula struct {
	Pos  lexer.Position
	Expr *ImplExpr `@@`
}

func (n *Formula) Build(f *formula.Factory) (formula.Handle, error) { return n.Expr.Build(f) }

// ImplExpr is "->", right-associative and lowest precedence.
type ImplExpr struct {
	Pos   lexer.Position
	Left  *OrExpr   `@@`
	Right *ImplExpr `( "->" @@ )?`
}

func (n *ImplExpr) Build(f *formula.Factory) (formula.Handle, error) {
	left, err := n.Left.Build(f)
	if err != nil {
		return formula.Handle{}, err
	}
	if n.Right == nil {
		return left, nil
	}
	right, err := n.Right.Build(f)
	if err != nil {
		return formula.Handle{}, err
	}
	return f.Imply(left, right), nil
}

// OrExpr is left-associative "||", chained via repetition since
// participle's grammar cannot express left recursion directly.
type OrExpr struct {
	Pos  lexer.Position
	Left *AndExpr   `@@`
	Rest []*AndExpr `( "||" @@ )*`
}

func (n *OrExpr) Build(f *formula.Factory) (formula.Handle, error) {
	acc, err := n.Left.Build(f)
	if err != nil {
		return formula.Handle{}, err
	}
	for _, r := range n.Rest {
		rh, err := r.Build(f)
		if err != nil {
			return formula.Handle{}, err
		}
		acc, err = f.Or(acc, rh)
		if err != nil {
			return formula.Handle{}, err
		}
	}
	return acc, nil
}

// AndExpr is left-associative "&&".
type AndExpr struct {
	Pos  lexer.Position
	Left *TempExpr   `@@`
	Rest []*TempExpr `( "&&" @@ )*`
}

func (n *AndExpr) Build(f *formula.Factory) (formula.Handle, error) {
	acc, err := n.Left.Build(f)
	if err != nil {
		return formula.Handle{}, err
	}
	for _, r := range n.Rest {
		rh, err := r.Build(f)
		if err != nil {
			return formula.Handle{}, err
		}
		acc, err = f.And(acc, rh)
		if err != nil {
			return formula.Handle{}, err
		}
	}
	return acc, nil
}

// TempExpr is the left-associative binary temporal family U/R/UN/RN,
// one precedence tier above the boolean connectives and one below the
// unary prefix operators.
type TempExpr struct {
	Pos  lexer.Position
	Left *UnaryExpr  `@@`
	Rest []*TempRest `@@*`
}

// TempRest is one "<op> operand" step of a TempExpr chain.
type TempRest struct {
	Pos   lexer.Position
	Op    string     `@( "U" | "R" | "UN" | "RN" )`
	Right *UnaryExpr `@@`
}

func (n *TempExpr) Build(f *formula.Factory) (formula.Handle, error) {
	acc, err := n.Left.Build(f)
	if err != nil {
		return formula.Handle{}, err
	}
	for _, r := range n.Rest {
		rh, err := r.Right.Build(f)
		if err != nil {
			return formula.Handle{}, err
		}
		switch r.Op {
		case "U":
			acc = f.Until(acc, rh)
		case "R":
			acc = f.Release(acc, rh)
		case "UN":
			acc = f.CostUntil(acc, rh)
		case "RN":
			acc = f.CostRelease(acc, rh)
		}
	}
	return acc, nil
}

// UnaryExpr is the unary prefix family: negation, next, and the
// globally/finally operators and their cost variants, all right
// associative by virtue of recursing into another UnaryExpr.
type UnaryExpr struct {
	Pos          lexer.Position
	Not          *UnaryExpr `(  "!" @@`
	Next         *UnaryExpr `|  "X" @@`
	Globally     *UnaryExpr `|  "G" @@`
	Finally      *UnaryExpr `|  "F" @@`
	CostGlobally *UnaryExpr `|  "GN" @@`
	CostFinally  *UnaryExpr `|  "FN" @@`
	Atom         *AtomExpr  `|  @@ )`
}

func (n *UnaryExpr) Build(f *formula.Factory) (formula.Handle, error) {
	switch {
	case n.Not != nil:
		h, err := n.Not.Build(f)
		if err != nil {
			return formula.Handle{}, err
		}
		return f.Not(h), nil
	case n.Next != nil:
		h, err := n.Next.Build(f)
		if err != nil {
			return formula.Handle{}, err
		}
		return f.Next(h), nil
	case n.Globally != nil:
		h, err := n.Globally.Build(f)
		if err != nil {
			return formula.Handle{}, err
		}
		return f.Globally(h), nil
	case n.Finally != nil:
		h, err := n.Finally.Build(f)
		if err != nil {
			return formula.Handle{}, err
		}
		return f.Finally(h), nil
	case n.CostGlobally != nil:
		h, err := n.CostGlobally.Build(f)
		if err != nil {
			return formula.Handle{}, err
		}
		return f.CostGlobally(h), nil
	case n.CostFinally != nil:
		h, err := n.CostFinally.Build(f)
		if err != nil {
			return formula.Handle{}, err
		}
		return f.CostFinally(h), nil
	default:
		return n.Atom.Build(f)
	}
}

// AtomExpr is a parenthesised sub-formula, the true/false constants, or
// an atomic proposition.
type AtomExpr struct {
	Pos   lexer.Position
	Paren *ImplExpr `(  "(" @@ ")"`
	True  bool      `|  @"true"`
	False bool      `|  @"false"`
	Ident string    `|  @Ident )`
}

func (n *AtomExpr) Build(f *formula.Factory) (formula.Handle, error) {
	switch {
	case n.Paren != nil:
		return n.Paren.Build(f)
	case n.True:
		return f.True(), nil
	case n.False:
		return f.False(), nil
	default:
		return f.Atomic(n.Ident), nil
	}
}
