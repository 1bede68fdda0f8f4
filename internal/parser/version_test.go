package parser

import (
	"testing"

	"availspec/internal/syntax"
	"availspec/internal/token"
)

func parseVersion(t *testing.T, input string) (*syntax.Builder, *syntax.VersionTuple) {
	t.Helper()
	b := syntax.NewBuilder(syntax.Hints{})
	p := New(lex(t, input), b)
	id := p.parseVersionTuple()
	return b, b.Versions.Get(uint32(id))
}

func TestVersionTupleShapes(t *testing.T) {
	cases := []struct {
		input        string
		majorText    string
		majorKind    token.Kind
		wantPatch    bool
		patchText    string
		majorMissing bool
	}{
		{input: "1", majorText: "1", majorKind: token.IntLit},
		{input: "1.0", majorText: "1.0", majorKind: token.FloatLit},
		{input: "1.0.3", majorText: "1.0", majorKind: token.FloatLit, wantPatch: true, patchText: "3"},
		{input: "10.15.4", majorText: "10.15", majorKind: token.FloatLit, wantPatch: true, patchText: "4"},
		{input: "", majorKind: token.IntLit, majorMissing: true},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			b, v := parseVersion(t, c.input)

			major := b.Tokens.Get(uint32(v.MajorMinor))
			if major.Missing != c.majorMissing {
				t.Fatalf("major missing = %v, want %v", major.Missing, c.majorMissing)
			}
			if !c.majorMissing && major.Tok.Text != c.majorText {
				t.Fatalf("major = %q, want %q", major.Tok.Text, c.majorText)
			}
			if major.Tok.Kind != c.majorKind {
				t.Fatalf("major kind = %v, want %v", major.Tok.Kind, c.majorKind)
			}

			if v.HasPatch() != c.wantPatch {
				t.Fatalf("HasPatch = %v, want %v", v.HasPatch(), c.wantPatch)
			}
			// the shape invariant: both patch fields or neither
			if v.PatchPeriod.IsValid() != v.Patch.IsValid() {
				t.Fatal("patch period and patch token must be present together")
			}
			if c.wantPatch {
				if got := tokenText(b, v.Patch); got != c.patchText {
					t.Fatalf("patch = %q, want %q", got, c.patchText)
				}
			}
		})
	}
}

func TestVersionTupleIntNeverGrowsPatch(t *testing.T) {
	// an integer majorMinor must not attempt a patch even when '.' follows
	b, v := parseVersion(t, "1 .3")
	if v.HasPatch() {
		t.Fatal("integer majorMinor grew a patch component")
	}
	if got := tokenText(b, v.MajorMinor); got != "1" {
		t.Fatalf("major = %q", got)
	}
}

func TestVersionTuplePatchMissingAfterPeriod(t *testing.T) {
	b, v := parseVersion(t, "1.0.")
	if !v.HasPatch() {
		t.Fatal("period consumed but patch pair absent")
	}
	patch := b.Tokens.Get(uint32(v.Patch))
	if !patch.Missing {
		t.Fatal("patch after bare period must be a missing placeholder")
	}
}

func TestVersionTupleRecoversAcrossInterlopers(t *testing.T) {
	// a stray token in front of the literal is captured, not fatal
	b := syntax.NewBuilder(syntax.Hints{})
	p := New(lex(t, ": 9.0"), b)
	v := b.Versions.Get(uint32(p.parseVersionTuple()))

	if !v.UnexpectedBeforeMajor.IsValid() {
		t.Fatal("interloper not captured as unexpected-before")
	}
	u := b.Unexpected.Get(uint32(v.UnexpectedBeforeMajor))
	if len(u.Tokens) != 1 || tokenText(b, u.Tokens[0]) != ":" {
		t.Fatalf("unexpected capture = %d tokens", len(u.Tokens))
	}
	if got := tokenText(b, v.MajorMinor); got != "9.0" {
		t.Fatalf("major = %q", got)
	}
}

func TestVersionTupleNeverCrossesSeparator(t *testing.T) {
	// the literal after the comma belongs to the next argument
	b := syntax.NewBuilder(syntax.Hints{})
	p := New(lex(t, ", 9.0"), b)
	v := b.Versions.Get(uint32(p.parseVersionTuple()))

	if !b.Tokens.Get(uint32(v.MajorMinor)).Missing {
		t.Fatal("major should be missing")
	}
	if p.Cursor().Pos() != 0 {
		t.Fatalf("cursor advanced %d tokens past a separator", p.Cursor().Pos())
	}
}
