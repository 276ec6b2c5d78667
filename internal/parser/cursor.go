package parser

import "github.com/adalang/adafront/pkg/token"

// tokenCursor is a single-token-lookahead cursor over a pre-scanned token
// slice. Unlike the teacher's streaming TokenCursor, the parser's input is
// always a complete token vector produced by a finished Scanner pass
// (spec §2: "source text → Scanner → token vector → Parser"), so the
// cursor is a thin, mutable index into that slice rather than an immutable
// lexer-backed buffer.
type tokenCursor struct {
	tokens []token.Token
	index  int
}

func newCursor(tokens []token.Token) *tokenCursor {
	return &tokenCursor{tokens: tokens}
}

// current returns the token at the cursor.
func (c *tokenCursor) current() token.Token {
	if c.index >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1] // EOF
	}
	return c.tokens[c.index]
}

// advance moves the cursor one token forward, stopping at EOF.
func (c *tokenCursor) advance() {
	if c.index < len(c.tokens)-1 {
		c.index++
	}
}

// isEOF reports whether the cursor is at the final EOF token.
func (c *tokenCursor) isEOF() bool {
	return c.current().Kind == token.EOF
}
