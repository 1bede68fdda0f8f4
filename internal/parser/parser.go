package parser

import (
	"availspec/internal/source"
	"availspec/internal/syntax"
	"availspec/internal/token"
)

// Grammar selects which availability grammar an entry point parses.
type Grammar uint8

const (
	// GrammarCondition is the form used in availability-guarded branches:
	// each element is a platform+version constraint, '*', or a macro.
	GrammarCondition Grammar = iota
	// GrammarAttribute is the attribute-argument form: a platform name
	// followed by labeled qualifiers.
	GrammarAttribute
)

func (g Grammar) String() string {
	switch g {
	case GrammarCondition:
		return "condition"
	case GrammarAttribute:
		return "attribute"
	}
	return "grammar(?)"
}

// Parser holds the cursor and the arena builder for one parse invocation.
// It is single-threaded and synchronous; the same token stream always
// yields a structurally identical tree.
type Parser struct {
	cur *Cursor
	b   *syntax.Builder
}

// New creates a parser over a pre-lexed token stream. The builder owns
// every node the parse produces.
func New(toks []token.Token, b *syntax.Builder) *Parser {
	return &Parser{
		cur: NewCursor(toks),
		b:   b,
	}
}

// Parse runs the entry point for the selected grammar.
func (p *Parser) Parse(g Grammar) syntax.ListID {
	if g == GrammarAttribute {
		return p.ParseExtendedAvailabilitySpecList()
	}
	return p.ParseAvailabilitySpecList()
}

// Cursor exposes the parser's cursor, mainly so callers can check how far
// a parse consumed.
func (p *Parser) Cursor() *Cursor {
	return p.cur
}

// consume eats the current token and wraps it as a leaf.
func (p *Parser) consume() syntax.TokenID {
	return p.b.NewToken(p.cur.Bump())
}

// missing synthesizes a placeholder of the given kind at the current
// position without consuming anything.
func (p *Parser) missing(kind token.Kind) syntax.TokenID {
	return p.b.NewMissing(kind, p.cur.Peek().Span)
}

// expect consumes a token of kind k, or synthesizes a missing placeholder.
// It never consumes a token of the wrong kind.
func (p *Parser) expect(k token.Kind) syntax.TokenID {
	if p.cur.At(k) {
		return p.consume()
	}
	return p.missing(k)
}

// eatComma consumes a trailing comma if present. The returned bool is the
// "keep going" signal both list grammars loop on.
func (p *Parser) eatComma() (syntax.TokenID, bool) {
	if p.cur.At(token.Comma) {
		return p.consume(), true
	}
	return syntax.NoTokenID, false
}

// atListTerminator reports whether the current token ends the enclosing
// argument list: end-of-input, a separator, or a closing parenthesis.
func (p *Parser) atListTerminator() bool {
	switch p.cur.Peek().Kind {
	case token.EOF, token.Comma, token.RParen:
		return true
	default:
		return false
	}
}

// rawCaptureUntilSeparator consumes every token up to (not including) the
// next list terminator and returns the capture. May return an empty slice;
// callers own forward progress.
func (p *Parser) rawCaptureUntilSeparator() []syntax.TokenID {
	var out []syntax.TokenID
	for !p.atListTerminator() {
		out = append(out, p.consume())
	}
	return out
}

// tokenListSpan covers the spans of a raw capture. An empty capture gets a
// zero-length span at the current position.
func (p *Parser) tokenListSpan(toks []syntax.TokenID) source.Span {
	if len(toks) == 0 {
		sp := p.cur.Peek().Span
		return source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
	}
	sp := p.b.TokenSpan(toks[0])
	for _, id := range toks[1:] {
		sp = sp.Cover(p.b.TokenSpan(id))
	}
	return sp
}

// finishArgument attaches an optional trailing comma, fixes up the span and
// allocates the argument. Returns the id and whether a comma was consumed.
func (p *Parser) finishArgument(arg syntax.Argument) (syntax.ArgumentID, bool) {
	comma, keepGoing := p.eatComma()
	arg.TrailingComma = comma
	if comma.IsValid() {
		arg.Span = arg.Span.Cover(p.b.TokenSpan(comma))
	}
	return p.b.NewArgument(arg), keepGoing
}

func (p *Parser) listSpan(args []syntax.ArgumentID, start source.Span) source.Span {
	sp := source.Span{File: start.File, Start: start.Start, End: start.Start}
	for _, id := range args {
		if a := p.b.Args.Get(uint32(id)); a != nil {
			sp = sp.Cover(a.Span)
		}
	}
	return sp
}
