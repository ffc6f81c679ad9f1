package parser

import "github.com/alecthomas/participle/v2/lexer"

// cltlLexer tokenizes CLTL source (§6). Keywords are not separate
// token types — as in kanso-lang-kanso's grammar, an identifier-shaped
// keyword like "UN" is matched by its literal text directly in the
// grammar tags below, and an atom is anything left over.
var cltlLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Ident", `[A-Za-z_][A-Za-z0-9_]*`, nil},
		{"Punct", `->|&&|\|\||[!()]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
