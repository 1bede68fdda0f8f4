package parser

import (
	"availspec/internal/syntax"
	"availspec/internal/token"
)

// ParseAvailabilitySpecList is the condition-style entry point, used where
// a parenthesized availability guard's argument list is expected:
//
//	iOS 9.0, macOS 10.12, *
//	myMacro, *
//
// A plain identifier starts a macro argument (which covers plain
// platform+version constraints too, since both produce the same node
// shape); anything else goes through the single-argument grammar. The
// parser is total: it always returns a list and leaves the cursor past the
// last token that belongs to it.
func (p *Parser) ParseAvailabilitySpecList() syntax.ListID {
	start := p.cur.Peek().Span
	var args []syntax.ArgumentID

	keepGoing := !p.cur.AtEnd()
	var progress loopProgress
	for keepGoing && progress.Evaluate(p.cur) {
		var arg syntax.Argument
		before := p.cur.Pos()
		tok := p.cur.Peek()
		if tok.Kind == token.Ident && !isPlatformAgnostic(tok) {
			arg = p.parseMacroConstraint()
		} else {
			arg = p.parseAvailabilitySpec()
		}
		// A fully-missing constraint consumed nothing. If garbage (rather
		// than a list terminator) is in the way, capture it raw so the
		// cursor still moves.
		if p.cur.Pos() == before && !p.atListTerminator() {
			raw := p.rawCaptureUntilSeparator()
			arg = syntax.Argument{
				Payload:   syntax.PayloadTokenList,
				TokenList: raw,
				Raw:       syntax.RawNone,
				Span:      p.tokenListSpan(raw),
			}
		}
		var id syntax.ArgumentID
		id, keepGoing = p.finishArgument(arg)
		args = append(args, id)

		// Shorthand misuse: a labeled keyword right after the comma means
		// the attribute-style grammar leaked into a condition, a known
		// user error. Absorb each labeled fragment verbatim so parsing can
		// continue with the next real argument.
		if keepGoing {
			args, keepGoing = p.recoverShorthandFragments(args)
		}
	}

	return p.b.NewList(syntax.ArgumentList{
		Args: args,
		Span: p.listSpan(args, start),
	})
}

// recoverShorthandFragments consumes `label ...` fragments after a comma in
// condition style. Each recognized label starts its own raw token-list
// argument running up to the next separator; tokens inside a fragment are
// not re-classified. Returns the extended argument slice and whether a
// trailing comma keeps the outer loop going.
func (p *Parser) recoverShorthandFragments(args []syntax.ArgumentID) ([]syntax.ArgumentID, bool) {
	keepGoing := true
	var progress loopProgress
	for keepGoing && progress.Evaluate(p.cur) {
		if _, ok := ClassifyLabel(p.cur.Peek()); !ok {
			break
		}
		raw := []syntax.TokenID{p.consume()} // the labeled keyword
		raw = append(raw, p.rawCaptureUntilSeparator()...)
		frag := syntax.Argument{
			Payload:   syntax.PayloadTokenList,
			TokenList: raw,
			Raw:       syntax.RawWrongGrammar,
			Span:      p.tokenListSpan(raw),
		}
		var id syntax.ArgumentID
		id, keepGoing = p.finishArgument(frag)
		args = append(args, id)
	}
	return args, keepGoing
}

// ParseExtendedAvailabilitySpecList is the attribute-style entry point,
// used where an availability attribute's argument list is expected:
//
//	iOS, introduced: 9.0, deprecated: 12.0, message: "use Y"
//
// The first token is always consumed as the platform name: attribute style
// begins with a bare platform identifier, so no classification happens
// there. Every later element starts with a label from the closed set;
// unknown labels are captured raw and parsing continues.
func (p *Parser) ParseExtendedAvailabilitySpecList() syntax.ListID {
	start := p.cur.Peek().Span
	var args []syntax.ArgumentID

	platform := syntax.Argument{Payload: syntax.PayloadToken}
	if p.cur.AtEnd() {
		platform.Token = p.missing(token.Ident)
	} else {
		platform.Token = p.consume()
	}
	platform.Span = p.b.TokenSpan(platform.Token)
	id, keepGoing := p.finishArgument(platform)
	args = append(args, id)

	var progress loopProgress
	for keepGoing && !p.cur.AtEnd() && progress.Evaluate(p.cur) {
		var arg syntax.Argument
		label, ok := ClassifyLabel(p.cur.Peek())
		switch {
		case !ok:
			raw := p.rawCaptureUntilSeparator()
			arg = syntax.Argument{
				Payload:   syntax.PayloadTokenList,
				TokenList: raw,
				Raw:       syntax.RawUnknownLabel,
				Span:      p.tokenListSpan(raw),
			}
		case label == LabelMessage || label == LabelRenamed:
			arg = p.parseLabeledString()
		case label == LabelIntroduced || label == LabelObsoleted:
			arg = p.parseLabeledVersion()
		case label == LabelDeprecated:
			// `deprecated` alone is valid and distinct from
			// `deprecated: 1.2`; only a following colon makes it labeled.
			if p.cur.PeekAt(1).Kind == token.Colon {
				arg = p.parseLabeledVersion()
			} else {
				arg = p.bareTokenArgument()
			}
		default: // LabelUnavailable, LabelNoasync never take a value
			arg = p.bareTokenArgument()
		}
		var id syntax.ArgumentID
		id, keepGoing = p.finishArgument(arg)
		args = append(args, id)
	}

	return p.b.NewList(syntax.ArgumentList{
		Args: args,
		Span: p.listSpan(args, start),
	})
}
