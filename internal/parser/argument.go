package parser

import (
	"availspec/internal/syntax"
	"availspec/internal/token"
)

// parseAvailabilitySpec parses one condition-style argument:
//
//	argument → '*' | platform-name version? | platform-agnostic-version
//
// The wildcard means "all other platforms". Platform names are arbitrary
// identifiers; whether a name denotes a real platform is a later pass's
// concern, not the grammar's.
func (p *Parser) parseAvailabilitySpec() syntax.Argument {
	if p.cur.At(token.Star) {
		id := p.consume()
		return syntax.Argument{
			Payload: syntax.PayloadToken,
			Token:   id,
			Span:    p.b.TokenSpan(id),
		}
	}
	if isPlatformAgnostic(p.cur.Peek()) {
		return p.parsePlatformAgnosticConstraint()
	}
	return p.parsePlatformConstraint()
}

// parsePlatformAgnosticConstraint parses `swift 5.1` or
// `_PackageDescription 5`. The marker itself names the constrained subject,
// so the version is required and parsed unconditionally (possibly missing).
func (p *Parser) parsePlatformAgnosticConstraint() syntax.Argument {
	entry := p.consume()
	version := p.parseVersionTuple()
	return p.constraintArgument(entry, version)
}

// parsePlatformConstraint parses `iOS 9.0`. The version is optional: it is
// attempted only when the next token can begin a version tuple.
func (p *Parser) parsePlatformConstraint() syntax.Argument {
	entry := p.expect(token.Ident)
	version := syntax.NoVersionID
	if p.cur.Peek().IsVersionLiteral() {
		version = p.parseVersionTuple()
	}
	return p.constraintArgument(entry, version)
}

// parseMacroConstraint parses `macro-argument → token version?`. Macros are
// extension vocabulary, not core grammar, so the name token is consumed
// unconditionally with no keyword restriction; the version is parsed only
// when a literal actually follows. The result shares the constraint node
// shape, with the platform slot holding the macro name.
func (p *Parser) parseMacroConstraint() syntax.Argument {
	entry := p.consume()
	version := syntax.NoVersionID
	if p.cur.Peek().IsVersionLiteral() {
		version = p.parseVersionTuple()
	}
	return p.constraintArgument(entry, version)
}

func (p *Parser) constraintArgument(entry syntax.TokenID, version syntax.VersionID) syntax.Argument {
	sp := p.b.TokenSpan(entry)
	if version.IsValid() {
		sp = sp.Cover(p.b.VersionSpan(version))
	}
	id := p.b.NewConstraint(syntax.Constraint{
		Entry:   entry,
		Version: version,
		Span:    sp,
	})
	return syntax.Argument{
		Payload:    syntax.PayloadConstraint,
		Constraint: id,
		Span:       sp,
	}
}

// parseLabeledVersion parses `label ':' version-tuple`. A missing colon is
// synthesized, not fatal.
func (p *Parser) parseLabeledVersion() syntax.Argument {
	label := p.consume()
	colon := p.expect(token.Colon)
	version := p.parseVersionTuple()

	sp := p.b.TokenSpan(label)
	sp = sp.Cover(p.b.TokenSpan(colon))
	sp = sp.Cover(p.b.VersionSpan(version))
	id := p.b.NewLabeled(syntax.LabeledArgument{
		Label:     label,
		Colon:     colon,
		ValueKind: syntax.ValueVersion,
		VerValue:  version,
		Span:      sp,
	})
	return syntax.Argument{Payload: syntax.PayloadLabeled, Labeled: id, Span: sp}
}

// parseLabeledString parses `label ':' string-literal`. Exactly one token is
// consumed as the value, whatever its kind; interpolation is not checked
// here. When the list ends right after the colon, the value is a missing
// string-literal placeholder.
func (p *Parser) parseLabeledString() syntax.Argument {
	label := p.consume()
	colon := p.expect(token.Colon)

	var value syntax.TokenID
	if p.atListTerminator() {
		value = p.missing(token.StringLit)
	} else {
		value = p.consume()
	}

	sp := p.b.TokenSpan(label)
	sp = sp.Cover(p.b.TokenSpan(colon))
	sp = sp.Cover(p.b.TokenSpan(value))
	id := p.b.NewLabeled(syntax.LabeledArgument{
		Label:     label,
		Colon:     colon,
		ValueKind: syntax.ValueString,
		StrValue:  value,
		Span:      sp,
	})
	return syntax.Argument{Payload: syntax.PayloadLabeled, Labeled: id, Span: sp}
}

// bareTokenArgument consumes the current token as a standalone argument
// (`deprecated`, `unavailable`, `noasync`).
func (p *Parser) bareTokenArgument() syntax.Argument {
	id := p.consume()
	return syntax.Argument{
		Payload: syntax.PayloadToken,
		Token:   id,
		Span:    p.b.TokenSpan(id),
	}
}
