package syntax

import (
	"fmt"

	"availspec/internal/diag"
	"availspec/internal/source"
)

// Report walks the missing and unexpected markers of a parsed list and
// turns them into diagnostics. The parser never reports anything itself;
// this walker is the sole bridge from tree markers to user-facing messages.
func Report(b *Builder, id ListID, r diag.Reporter) {
	if r == nil {
		return
	}
	list := b.Lists.Get(uint32(id))
	if list == nil {
		return
	}
	w := reportWalker{b: b, r: r}
	for _, argID := range list.Args {
		w.argument(argID)
	}
}

type reportWalker struct {
	b *Builder
	r diag.Reporter
}

func (w reportWalker) argument(id ArgumentID) {
	arg := w.b.Args.Get(uint32(id))
	if arg == nil {
		return
	}
	switch arg.Payload {
	case PayloadToken:
		w.missing(arg.Token, "argument")
	case PayloadConstraint:
		w.constraint(arg.Constraint)
	case PayloadLabeled:
		w.labeled(arg.Labeled)
	case PayloadTokenList:
		w.rawCapture(arg)
	}
}

func (w reportWalker) constraint(id ConstraintID) {
	c := w.b.Constraints.Get(uint32(id))
	if c == nil {
		return
	}
	w.missing(c.Entry, "platform name")
	w.version(c.Version)
}

func (w reportWalker) labeled(id LabeledID) {
	l := w.b.Labeled.Get(uint32(id))
	if l == nil {
		return
	}
	label := w.tokenText(l.Label)
	w.missing(l.Label, "argument label")
	if w.isMissing(l.Colon) {
		w.report(diag.AvailMissingToken, w.b.TokenSpan(l.Colon),
			fmt.Sprintf("expected ':' after '%s'", label))
	}
	switch l.ValueKind {
	case ValueString:
		if w.isMissing(l.StrValue) {
			w.report(diag.AvailMissingToken, w.b.TokenSpan(l.StrValue),
				fmt.Sprintf("expected string value for '%s'", label))
		}
	case ValueVersion:
		w.version(l.VerValue)
	}
}

func (w reportWalker) version(id VersionID) {
	v := w.b.Versions.Get(uint32(id))
	if v == nil {
		return
	}
	if u := w.b.Unexpected.Get(uint32(v.UnexpectedBeforeMajor)); u != nil {
		w.report(diag.AvailUnexpectedTokens, u.Span, "unexpected tokens before version number")
	}
	w.missing(v.MajorMinor, "version number")
	if v.HasPatch() {
		w.missing(v.Patch, "patch version component after '.'")
	}
}

func (w reportWalker) rawCapture(arg *Argument) {
	if len(arg.TokenList) == 0 {
		return
	}
	first := w.tokenText(arg.TokenList[0])
	switch arg.Raw {
	case RawWrongGrammar:
		w.report(diag.AvailWrongGrammar, arg.Span,
			fmt.Sprintf("'%s' is an availability attribute argument and cannot appear in an availability condition", first))
	case RawUnknownLabel:
		w.report(diag.AvailUnknownLabel, arg.Span,
			fmt.Sprintf("unknown availability argument '%s'", first))
	default:
		w.report(diag.AvailUnexpectedTokens, arg.Span, "unexpected tokens in availability argument list")
	}
}

func (w reportWalker) isMissing(id TokenID) bool {
	n := w.b.Tokens.Get(uint32(id))
	return n != nil && n.Missing
}

func (w reportWalker) missing(id TokenID, what string) {
	if w.isMissing(id) {
		w.report(diag.AvailMissingToken, w.b.TokenSpan(id), "expected "+what)
	}
}

func (w reportWalker) tokenText(id TokenID) string {
	if n := w.b.Tokens.Get(uint32(id)); n != nil {
		return n.Tok.Text
	}
	return ""
}

func (w reportWalker) report(code diag.Code, sp source.Span, msg string) {
	w.r.Report(code, diag.SevError, sp, msg, nil)
}
