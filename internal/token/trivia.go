package token

import "availspec/internal/source"

// TriviaKind classifies a run of non-token source text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Trivia(?)"
}

// Trivia is a verbatim run of whitespace or comment text attached to a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
