package lexer

import (
	"availspec/internal/diag"
	"availspec/internal/token"
)

// collectLeadingTrivia gathers the trivia run in front of the next
// significant token into lx.hold:
//   - spaces/tabs coalesce into one TriviaSpace
//   - consecutive '\n' coalesce into one TriviaNewline
//   - //... up to '\n' -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (nested; unterminated is reported
//     and clipped at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// collectTrailingTrivia gathers spaces and comments that follow a token on
// the same line. It stops before any '\n' so the newline (and whatever comes
// after) becomes leading trivia of the next token.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	var out []token.Trivia
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			out = append(out, lx.makeTrivia(token.TriviaSpace, start))
			continue
		}

		// a block comment on the same line trails the token; line comments
		// and newlines lead the next one
		if b == '/' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '*' {
				saved := len(lx.hold)
				if lx.scanCommentIntoHold() {
					out = append(out, lx.hold[saved:]...)
					lx.hold = lx.hold[:saved]
					continue
				}
			}
		}

		break
	}
	return out
}

func (lx *Lexer) holdTrivia(kind token.TriviaKind, start Mark) {
	lx.hold = append(lx.hold, lx.makeTrivia(kind, start))
}

func (lx *Lexer) makeTrivia(kind token.TriviaKind, start Mark) token.Trivia {
	sp := lx.cursor.SpanFrom(start)
	return token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanCommentIntoHold scans "//..." or "/*...*/" into lx.hold.
// Returns false (cursor untouched) when '/' does not start a comment.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.holdTrivia(token.TriviaLineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if depth > 0 {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.holdTrivia(token.TriviaBlockComment, start)
		return true

	default:
		// not a comment; rewind and let scanPunct produce an Invalid token
		lx.cursor.Reset(start)
		return false
	}
}
