package token

import (
	"strings"

	"availspec/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsVersionLiteral reports whether the token can begin a version tuple.
func (t Token) IsVersionLiteral() bool {
	return t.Kind == IntLit || t.Kind == FloatLit
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Star, Comma, Colon, Dot, LParen, RParen, At, Semicolon:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// SourceText writes the token's full source form, trivia included, to sb.
// A zero-length (synthesized) token contributes only its trivia, which is
// always empty for such tokens.
func (t Token) SourceText(sb *strings.Builder) {
	for _, tr := range t.Leading {
		sb.WriteString(tr.Text)
	}
	sb.WriteString(t.Text)
	for _, tr := range t.Trailing {
		sb.WriteString(tr.Text)
	}
}
