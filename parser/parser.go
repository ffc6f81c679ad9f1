package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"github.com/spactiongo/cltlsup/formula"
)

var cltlParser = participle.MustBuild[Formula](
	participle.Lexer(cltlLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses src as a CLTL formula (§6) into f, returning the root
// handle. On failure it returns an error wrapping ErrParse.
func Parse(f *formula.Factory, src string) (formula.Handle, error) {
	tree, err := cltlParser.ParseString("", src)
	if err != nil {
		return formula.Handle{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return tree.Build(f)
}

// ReportError prints a caret-style diagnostic for an error returned by
// Parse to w, in the style of kanso-lang-kanso's reportParseError.
func ReportError(w io.Writer, src string, err error) {
	pe, ok := participleError(err)
	if !ok {
		fmt.Fprintln(w, color.RedString("parse error: %s", err))
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		fmt.Fprintln(w, color.RedString("syntax error at unknown location: %s", err))
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	fmt.Fprintln(w, color.RedString("syntax error at line %d, column %d:", pos.Line, pos.Column))
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, color.HiRedString(caret))
	fmt.Fprintf(w, "-> %s\n", pe.Message())
}

func participleError(err error) (participle.Error, bool) {
	var pe participle.Error
	for err != nil {
		if p, ok := err.(participle.Error); ok {
			return p, true
		}
		err = errorsUnwrap(err)
	}
	return pe, false
}

func errorsUnwrap(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}
