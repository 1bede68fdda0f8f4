package parser

import (
	"testing"

	"availspec/internal/syntax"
)

func TestConditionListBasic(t *testing.T) {
	p, b, list := parseOne(t, "iOS 9.0, macOS 10.12.1, *", GrammarCondition)

	got := args(b, list)
	if len(got) != 3 {
		t.Fatalf("got %d arguments, want 3", len(got))
	}

	for i, want := range []syntax.PayloadKind{syntax.PayloadConstraint, syntax.PayloadConstraint, syntax.PayloadToken} {
		if got[i].Payload != want {
			t.Fatalf("arg %d payload = %v, want %v", i, got[i].Payload, want)
		}
	}

	first := b.Constraints.Get(uint32(got[0].Constraint))
	if tokenText(b, first.Entry) != "iOS" {
		t.Fatalf("first platform = %q", tokenText(b, first.Entry))
	}
	if !first.Version.IsValid() {
		t.Fatal("first constraint lost its version")
	}

	second := b.Constraints.Get(uint32(got[1].Constraint))
	v := b.Versions.Get(uint32(second.Version))
	if !v.HasPatch() {
		t.Fatal("10.12.1 lost its patch component")
	}

	if tokenText(b, got[2].Token) != "*" {
		t.Fatalf("wildcard arg = %q", tokenText(b, got[2].Token))
	}
	if got[2].TrailingComma.IsValid() {
		t.Fatal("final argument must not have a trailing comma")
	}
	if got[0].TrailingComma == syntax.NoTokenID || got[1].TrailingComma == syntax.NoTokenID {
		t.Fatal("separators lost")
	}

	if hasMissing(b, list) {
		t.Fatal("well-formed input produced missing markers")
	}
	if !p.Cursor().AtEnd() {
		t.Fatal("input not fully consumed")
	}
}

func TestConditionListPlatformAgnostic(t *testing.T) {
	_, b, list := parseOne(t, "swift 5.1, _PackageDescription 5, *", GrammarCondition)

	got := args(b, list)
	if len(got) != 3 {
		t.Fatalf("got %d arguments, want 3", len(got))
	}
	swift := b.Constraints.Get(uint32(got[0].Constraint))
	if tokenText(b, swift.Entry) != "swift" || !swift.Version.IsValid() {
		t.Fatal("swift constraint malformed")
	}
	pkg := b.Constraints.Get(uint32(got[1].Constraint))
	if tokenText(b, pkg.Entry) != "_PackageDescription" {
		t.Fatalf("second entry = %q", tokenText(b, pkg.Entry))
	}
}

func TestConditionListAgnosticVersionRequired(t *testing.T) {
	// platform-agnostic markers require a version; absence is a missing
	// marker, not an error
	_, b, list := parseOne(t, "swift, *", GrammarCondition)
	if !hasMissing(b, list) {
		t.Fatal("swift without version must synthesize a missing version")
	}
}

func TestConditionListMacroWithAndWithoutVersion(t *testing.T) {
	_, b, list := parseOne(t, "myFancyMacro, otherMacro 2.0", GrammarCondition)

	got := args(b, list)
	if len(got) != 2 {
		t.Fatalf("got %d arguments, want 2", len(got))
	}
	bare := b.Constraints.Get(uint32(got[0].Constraint))
	if bare.Version.IsValid() {
		t.Fatal("macro without literal grew a version")
	}
	versioned := b.Constraints.Get(uint32(got[1].Constraint))
	if !versioned.Version.IsValid() {
		t.Fatal("macro with literal lost its version")
	}
}

func TestConditionListShorthandMisuse(t *testing.T) {
	input := `iOS 9.0, message: "x"`
	p, b, list := parseOne(t, input, GrammarCondition)

	got := args(b, list)
	if len(got) != 2 {
		t.Fatalf("got %d arguments, want 2", len(got))
	}
	if got[0].Payload != syntax.PayloadConstraint {
		t.Fatalf("arg 0 payload = %v", got[0].Payload)
	}
	if got[1].Payload != syntax.PayloadTokenList || got[1].Raw != syntax.RawWrongGrammar {
		t.Fatalf("arg 1 = %v/%v, want raw wrong-grammar capture", got[1].Payload, got[1].Raw)
	}
	if rt := rawText(b, got[1]); rt != `message : "x"` {
		t.Fatalf("captured fragment = %q", rt)
	}
	if hasMissing(b, list) {
		t.Fatal("shorthand recovery must not synthesize missing tokens")
	}
	if !p.Cursor().AtEnd() {
		t.Fatal("recovery stopped short of the full fragment")
	}
}

func TestConditionListShorthandMisuseChained(t *testing.T) {
	// each labeled fragment after a comma becomes its own raw capture, and
	// a real argument afterwards still parses
	_, b, list := parseOne(t, `iOS 9.0, message: "x", renamed: "y", *`, GrammarCondition)

	got := args(b, list)
	if len(got) != 4 {
		t.Fatalf("got %d arguments, want 4", len(got))
	}
	if got[1].Raw != syntax.RawWrongGrammar || got[2].Raw != syntax.RawWrongGrammar {
		t.Fatal("labeled fragments not captured individually")
	}
	if got[3].Payload != syntax.PayloadToken || tokenText(b, got[3].Token) != "*" {
		t.Fatal("wildcard after recovered fragments was dropped")
	}
}

func TestConditionListGarbageMakesProgress(t *testing.T) {
	p, b, list := parseOne(t, "? ? ?, iOS 9.0", GrammarCondition)

	got := args(b, list)
	if len(got) != 2 {
		t.Fatalf("got %d arguments, want 2", len(got))
	}
	if got[0].Payload != syntax.PayloadTokenList {
		t.Fatalf("garbage not raw-captured: %v", got[0].Payload)
	}
	if got[1].Payload != syntax.PayloadConstraint {
		t.Fatal("argument after garbage was dropped")
	}
	_ = b
	if !p.Cursor().AtEnd() {
		t.Fatal("garbage input not fully consumed")
	}
}

func TestAttributeListOrdering(t *testing.T) {
	_, b, list := parseOne(t, "iOS, introduced: 9.0", GrammarAttribute)

	got := args(b, list)
	if len(got) != 2 {
		t.Fatalf("got %d arguments, want 2", len(got))
	}
	// the first element is always the platform, never a labeled argument
	if got[0].Payload != syntax.PayloadToken || tokenText(b, got[0].Token) != "iOS" {
		t.Fatalf("element 0 = %v %q, want platform token iOS", got[0].Payload, tokenText(b, got[0].Token))
	}
	if got[1].Payload != syntax.PayloadLabeled {
		t.Fatalf("element 1 payload = %v", got[1].Payload)
	}
	l := b.Labeled.Get(uint32(got[1].Labeled))
	if tokenText(b, l.Label) != "introduced" || l.ValueKind != syntax.ValueVersion {
		t.Fatal("introduced argument malformed")
	}
}

func TestAttributeListStringValues(t *testing.T) {
	_, b, list := parseOne(t, `macOS, message: "use Y instead", renamed: "Y.init"`, GrammarAttribute)

	got := args(b, list)
	if len(got) != 3 {
		t.Fatalf("got %d arguments, want 3", len(got))
	}
	msg := b.Labeled.Get(uint32(got[1].Labeled))
	if msg.ValueKind != syntax.ValueString || tokenText(b, msg.StrValue) != `"use Y instead"` {
		t.Fatalf("message value = %q", tokenText(b, msg.StrValue))
	}
	if hasMissing(b, list) {
		t.Fatal("well-formed input produced missing markers")
	}
}

func TestAttributeDeprecatedWithAndWithoutValue(t *testing.T) {
	// bare deprecated: a token argument, no missing markers
	_, b, list := parseOne(t, "iOS, deprecated", GrammarAttribute)
	got := args(b, list)
	if len(got) != 2 {
		t.Fatalf("bare: got %d arguments", len(got))
	}
	if got[1].Payload != syntax.PayloadToken || tokenText(b, got[1].Token) != "deprecated" {
		t.Fatal("bare deprecated must be a token argument")
	}
	if hasMissing(b, list) {
		t.Fatal("bare deprecated produced missing markers")
	}

	// deprecated with version: a labeled argument, still no missing markers
	_, b, list = parseOne(t, "iOS, deprecated: 1.2", GrammarAttribute)
	got = args(b, list)
	if got[1].Payload != syntax.PayloadLabeled {
		t.Fatal("deprecated: 1.2 must be a labeled argument")
	}
	l := b.Labeled.Get(uint32(got[1].Labeled))
	v := b.Versions.Get(uint32(l.VerValue))
	if tokenText(b, v.MajorMinor) != "1.2" {
		t.Fatalf("deprecated version = %q", tokenText(b, v.MajorMinor))
	}
	if hasMissing(b, list) {
		t.Fatal("deprecated: 1.2 produced missing markers")
	}
}

func TestAttributeUnavailableAndNoasync(t *testing.T) {
	_, b, list := parseOne(t, "iOS, unavailable, noasync", GrammarAttribute)
	got := args(b, list)
	if len(got) != 3 {
		t.Fatalf("got %d arguments", len(got))
	}
	for i := 1; i <= 2; i++ {
		if got[i].Payload != syntax.PayloadToken {
			t.Fatalf("arg %d payload = %v, want bare token", i, got[i].Payload)
		}
	}
	_ = b
}

func TestAttributeUnknownLabelRecovery(t *testing.T) {
	p, b, list := parseOne(t, "iOS, bogus: whatever, introduced: 1.0", GrammarAttribute)

	got := args(b, list)
	if len(got) != 3 {
		t.Fatalf("got %d arguments, want 3", len(got))
	}
	if got[1].Payload != syntax.PayloadTokenList || got[1].Raw != syntax.RawUnknownLabel {
		t.Fatal("unknown label not captured raw")
	}
	if rt := rawText(b, got[1]); rt != "bogus : whatever" {
		t.Fatalf("captured fragment = %q", rt)
	}
	// the argument after the bogus one must survive
	if got[2].Payload != syntax.PayloadLabeled {
		t.Fatal("introduced argument dropped after recovery")
	}
	l := b.Labeled.Get(uint32(got[2].Labeled))
	if tokenText(b, l.Label) != "introduced" {
		t.Fatalf("label = %q", tokenText(b, l.Label))
	}
	if !p.Cursor().AtEnd() {
		t.Fatal("input not fully consumed")
	}
}

func TestAttributeMissingColonSynthesized(t *testing.T) {
	_, b, list := parseOne(t, "iOS, introduced 9.0", GrammarAttribute)

	got := args(b, list)
	l := b.Labeled.Get(uint32(got[1].Labeled))
	colon := b.Tokens.Get(uint32(l.Colon))
	if !colon.Missing {
		t.Fatal("absent colon must be synthesized as missing")
	}
	v := b.Versions.Get(uint32(l.VerValue))
	if tokenText(b, v.MajorMinor) != "9.0" {
		t.Fatal("version after missing colon was lost")
	}
}

func TestAttributeEmptyInput(t *testing.T) {
	_, b, list := parseOne(t, "", GrammarAttribute)
	got := args(b, list)
	if len(got) != 1 {
		t.Fatalf("got %d arguments, want 1", len(got))
	}
	if !b.Tokens.Get(uint32(got[0].Token)).Missing {
		t.Fatal("platform of empty input must be a missing placeholder")
	}
}

func TestConditionEmptyInputYieldsEmptyList(t *testing.T) {
	_, b, list := parseOne(t, "", GrammarCondition)
	if got := len(args(b, list)); got != 0 {
		t.Fatalf("got %d arguments, want 0", got)
	}
}

func TestListsStopAtClosingParen(t *testing.T) {
	p, _, _ := parseOne(t, "iOS 9.0, *) trailing", GrammarCondition)
	// the ')' and everything after it belong to the caller
	if got := p.Cursor().Peek().Text; got != ")" {
		t.Fatalf("cursor stopped at %q, want \")\"", got)
	}
}
