package syntax

import (
	"strings"
)

// TokensOf appends the in-order token leaves reachable from the list to dst
// and returns it. The order matches the order the tokens were consumed from
// the input, which is what makes Text lossless.
func TokensOf(b *Builder, id ListID, dst []TokenID) []TokenID {
	list := b.Lists.Get(uint32(id))
	if list == nil {
		return dst
	}
	for _, argID := range list.Args {
		dst = b.appendArgumentTokens(dst, argID)
	}
	return dst
}

func (b *Builder) appendArgumentTokens(dst []TokenID, id ArgumentID) []TokenID {
	arg := b.Args.Get(uint32(id))
	if arg == nil {
		return dst
	}
	switch arg.Payload {
	case PayloadToken:
		dst = appendValid(dst, arg.Token)
	case PayloadConstraint:
		dst = b.appendConstraintTokens(dst, arg.Constraint)
	case PayloadLabeled:
		dst = b.appendLabeledTokens(dst, arg.Labeled)
	case PayloadTokenList:
		dst = append(dst, arg.TokenList...)
	}
	return appendValid(dst, arg.TrailingComma)
}

func (b *Builder) appendConstraintTokens(dst []TokenID, id ConstraintID) []TokenID {
	c := b.Constraints.Get(uint32(id))
	if c == nil {
		return dst
	}
	dst = appendValid(dst, c.Entry)
	return b.appendVersionTokens(dst, c.Version)
}

func (b *Builder) appendLabeledTokens(dst []TokenID, id LabeledID) []TokenID {
	l := b.Labeled.Get(uint32(id))
	if l == nil {
		return dst
	}
	dst = appendValid(dst, l.Label)
	dst = appendValid(dst, l.Colon)
	switch l.ValueKind {
	case ValueString:
		dst = appendValid(dst, l.StrValue)
	case ValueVersion:
		dst = b.appendVersionTokens(dst, l.VerValue)
	}
	return dst
}

func (b *Builder) appendVersionTokens(dst []TokenID, id VersionID) []TokenID {
	v := b.Versions.Get(uint32(id))
	if v == nil {
		return dst
	}
	if u := b.Unexpected.Get(uint32(v.UnexpectedBeforeMajor)); u != nil {
		dst = append(dst, u.Tokens...)
	}
	dst = appendValid(dst, v.MajorMinor)
	dst = appendValid(dst, v.PatchPeriod)
	return appendValid(dst, v.Patch)
}

func appendValid(dst []TokenID, id TokenID) []TokenID {
	if id.IsValid() {
		dst = append(dst, id)
	}
	return dst
}

// Text reconstructs the exact source text the list was parsed from, trivia
// included. Missing placeholders contribute nothing.
func Text(b *Builder, id ListID) string {
	var sb strings.Builder
	for _, tid := range TokensOf(b, id, nil) {
		if n := b.Tokens.Get(uint32(tid)); n != nil && !n.Missing {
			n.Tok.SourceText(&sb)
		}
	}
	return sb.String()
}
