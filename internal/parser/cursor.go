package parser

import (
	"availspec/internal/token"
)

// Cursor is the parser's mutable position in a pre-lexed token stream.
// Exactly one component mutates it at a time; it is passed by pointer
// through the whole call chain and discarded after the parse.
type Cursor struct {
	toks []token.Token
	pos  int
}

// NewCursor wraps a token slice. The slice is expected to end with an EOF
// token (the lexer guarantees this); if it does not, lookahead past the
// end synthesizes one.
func NewCursor(toks []token.Token) *Cursor {
	return &Cursor{toks: toks}
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() token.Token {
	return c.PeekAt(0)
}

// PeekAt returns the token n positions ahead without consuming anything.
func (c *Cursor) PeekAt(n int) token.Token {
	i := c.pos + n
	if i >= len(c.toks) {
		return token.Token{Kind: token.EOF}
	}
	return c.toks[i]
}

// Bump consumes and returns the current token. At end-of-input it returns
// EOF without advancing, so the cursor position is monotone and bounded.
func (c *Cursor) Bump() token.Token {
	tok := c.Peek()
	if tok.Kind != token.EOF {
		c.pos++
	}
	return tok
}

// AtEnd reports whether only EOF remains.
func (c *Cursor) AtEnd() bool {
	return c.Peek().Kind == token.EOF
}

// At reports whether the current token has kind k.
func (c *Cursor) At(k token.Kind) bool {
	return c.Peek().Kind == k
}

// Pos returns the token identity used by the progress guard.
func (c *Cursor) Pos() int {
	return c.pos
}
