package parser

import "errors"

// ErrParse is the §7 ParseError sentinel: the input is not a
// well-formed CLTL formula. Parse wraps the underlying participle
// diagnostic with %w so callers can branch with errors.Is while still
// seeing the original message.
var ErrParse = errors.New("parser: malformed CLTL formula")
