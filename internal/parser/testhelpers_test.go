package parser

import (
	"strings"
	"testing"

	"availspec/internal/lexer"
	"availspec/internal/source"
	"availspec/internal/syntax"
	"availspec/internal/token"
)

// lex turns a test snippet into a token slice ending with EOF.
func lex(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.avail", []byte(input))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	return lx.Tokens()
}

// parseOne runs the given entry point over input and returns the parser,
// builder and produced list.
func parseOne(t *testing.T, input string, g Grammar) (*Parser, *syntax.Builder, syntax.ListID) {
	t.Helper()
	b := syntax.NewBuilder(syntax.Hints{})
	p := New(lex(t, input), b)
	list := p.Parse(g)
	return p, b, list
}

// consumedText concatenates the source form of every token the parser
// consumed, trivia included.
func consumedText(p *Parser, toks []token.Token) string {
	var sb strings.Builder
	for _, tok := range toks[:p.Cursor().Pos()] {
		tok.SourceText(&sb)
	}
	return sb.String()
}

// args returns the argument nodes of a list in order.
func args(b *syntax.Builder, id syntax.ListID) []*syntax.Argument {
	list := b.Lists.Get(uint32(id))
	out := make([]*syntax.Argument, 0, len(list.Args))
	for _, argID := range list.Args {
		out = append(out, b.Args.Get(uint32(argID)))
	}
	return out
}

// hasMissing reports whether any token reachable from the list is a
// missing placeholder.
func hasMissing(b *syntax.Builder, id syntax.ListID) bool {
	for _, tid := range syntax.TokensOf(b, id, nil) {
		if n := b.Tokens.Get(uint32(tid)); n != nil && n.Missing {
			return true
		}
	}
	return false
}

// tokenText returns the text of a token leaf.
func tokenText(b *syntax.Builder, id syntax.TokenID) string {
	if n := b.Tokens.Get(uint32(id)); n != nil {
		return n.Tok.Text
	}
	return ""
}

// rawText joins the text of a raw capture's tokens with single spaces,
// ignoring trivia.
func rawText(b *syntax.Builder, arg *syntax.Argument) string {
	parts := make([]string, 0, len(arg.TokenList))
	for _, tid := range arg.TokenList {
		parts = append(parts, tokenText(b, tid))
	}
	return strings.Join(parts, " ")
}
