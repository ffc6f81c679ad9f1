// Package parser implements the CLTL concrete syntax of §6: atoms
// matching [A-Za-z_][A-Za-z0-9_]*, boolean connectives !, &&, ||, ->,
// parentheses, temporal operators X, U, R, G, F, and their cost variants
// UN, RN, GN, FN.
//
// Grounded on github.com/alecthomas/participle/v2's stateful lexer and
// struct-tag grammar, in the style of
// _examples/kanso-lang-kanso/grammar: one nested struct per precedence
// tier (lowest to highest: ->, ||, &&, the binary temporal family
// U/R/UN/RN, the unary prefix family !/X/G/F/GN/FN, atoms and
// parentheses), each carrying a Build method that lowers it onto a
// formula.Factory. Parse errors are reported with a caret-style message
// via github.com/fatih/color, matching the same example's
// reportParseError.
package parser
