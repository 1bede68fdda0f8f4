package parser

import (
	"availspec/internal/source"
	"availspec/internal/syntax"
	"availspec/internal/token"
)

// versionRecoveryLookahead bounds how far parseVersionTuple may look for a
// stray version literal. It never looks across a list terminator, so the
// version parser cannot steal tokens that belong to the next argument.
const versionRecoveryLookahead = 3

// parseVersionTuple parses `major[.minor[.patch]]`. It has no failure path:
// when no version literal is present, the majorMinor slot is filled with a
// missing integer-literal placeholder and nothing is consumed.
//
// The patch component is only attempted when majorMinor was lexed as a
// float literal, i.e. already carries the "major.minor" shape; the patch is
// strictly the third component. An integer majorMinor never grows a patch,
// whatever follows. PatchPeriod and Patch are always set together.
func (p *Parser) parseVersionTuple() syntax.VersionID {
	var unexpected []syntax.TokenID
	if !p.cur.Peek().IsVersionLiteral() {
		if skip, ok := p.lookaheadToVersionLiteral(); ok {
			for i := 0; i < skip; i++ {
				unexpected = append(unexpected, p.consume())
			}
		}
	}

	anchor := p.cur.Peek().Span
	var majorMinor syntax.TokenID
	isFloat := false
	switch p.cur.Peek().Kind {
	case token.IntLit:
		majorMinor = p.consume()
	case token.FloatLit:
		majorMinor = p.consume()
		isFloat = true
	default:
		majorMinor = p.missing(token.IntLit)
	}

	var patchPeriod, patch syntax.TokenID
	if isFloat && p.cur.At(token.Dot) {
		patchPeriod = p.consume()
		patch = p.expect(token.IntLit)
	}

	v := syntax.VersionTuple{
		UnexpectedBeforeMajor: p.b.NewUnexpected(unexpected),
		MajorMinor:            majorMinor,
		PatchPeriod:           patchPeriod,
		Patch:                 patch,
		Span:                  p.versionSpan(unexpected, majorMinor, patchPeriod, patch, anchor),
	}
	return p.b.NewVersion(v)
}

// lookaheadToVersionLiteral scans a bounded window for an int/float literal.
// On success it returns how many interloper tokens sit in front of it; they
// are recorded as unexpected-before context by the caller. The scan stops
// dead at any list terminator: tokens past a separator belong to someone
// else.
func (p *Parser) lookaheadToVersionLiteral() (int, bool) {
	for i := 1; i <= versionRecoveryLookahead; i++ {
		switch p.cur.PeekAt(i - 1).Kind {
		case token.EOF, token.Comma, token.RParen:
			return 0, false
		}
		if p.cur.PeekAt(i).IsVersionLiteral() {
			return i, true
		}
	}
	return 0, false
}

func (p *Parser) versionSpan(unexpected []syntax.TokenID, majorMinor, patchPeriod, patch syntax.TokenID, anchor source.Span) source.Span {
	sp := p.b.TokenSpan(majorMinor)
	if sp.Empty() && len(unexpected) == 0 && !patchPeriod.IsValid() {
		// fully missing version: zero-length at the expectation point
		return source.Span{File: anchor.File, Start: anchor.Start, End: anchor.Start}
	}
	for _, id := range unexpected {
		sp = sp.Cover(p.b.TokenSpan(id))
	}
	if patchPeriod.IsValid() {
		sp = sp.Cover(p.b.TokenSpan(patchPeriod))
		sp = sp.Cover(p.b.TokenSpan(patch))
	}
	return sp
}
