package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"availspec/internal/lexer"
	"availspec/internal/parser"
	"availspec/internal/source"
	"availspec/internal/syntax"
)

func parseInput(t *testing.T, input string, g parser.Grammar) (*syntax.Builder, syntax.ListID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.avail", []byte(input))
	toks := lexer.New(fs.Get(id), lexer.Options{}).Tokens()
	b := syntax.NewBuilder(syntax.Hints{})
	p := parser.New(toks, b)
	return b, p.Parse(g)
}

func TestTreeDumpRoundTrip(t *testing.T) {
	inputs := []string{
		"iOS 9.0, macOS 10.12.1, *",
		`Foo, message: "hello /* not trivia */", introduced: 2.0.1`,
		"iOS, introduced:", // missing placeholders must survive
		"swift ( 5.7, *",   // unexpected captures must survive
	}
	for _, input := range inputs {
		for _, g := range []parser.Grammar{parser.GrammarCondition, parser.GrammarAttribute} {
			b, root := parseInput(t, input, g)

			var buf bytes.Buffer
			if err := EncodeTree(&buf, b, root, "test.avail", g.String()); err != nil {
				t.Fatalf("encode(%q, %v): %v", input, g, err)
			}

			b2, root2, err := DecodeTree(&buf)
			if err != nil {
				t.Fatalf("decode(%q, %v): %v", input, g, err)
			}

			before := syntax.Text(b, root)
			after := syntax.Text(b2, root2)
			if before != after {
				t.Errorf("text changed across dump for %q (%v): %q -> %q", input, g, before, after)
			}
		}
	}
}

func TestTreeDumpRejectsWrongSchema(t *testing.T) {
	b, root := parseInput(t, "iOS 9.0, *", parser.GrammarCondition)
	var buf bytes.Buffer
	if err := EncodeTree(&buf, b, root, "test.avail", "condition"); err != nil {
		t.Fatal(err)
	}

	// corrupt: re-encode with a bumped schema by decoding raw and checking
	// the error path through a truncated stream instead
	if _, _, err := DecodeTree(bytes.NewReader(buf.Bytes()[:3])); err == nil {
		t.Fatal("decode of truncated dump succeeded")
	}
}

func TestFormatTreePretty(t *testing.T) {
	b, root := parseInput(t, `iOS, introduced: 9.0, message: "gone"`, parser.GrammarAttribute)
	fs := source.NewFileSet()
	fs.AddVirtual("test.avail", []byte(`iOS, introduced: 9.0, message: "gone"`))

	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, b, root, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"AvailabilityList",
		"Arg[0]: Token",
		`Value: Ident "iOS"`,
		"Labeled",
		`Label: Ident "introduced"`,
		"Version",
		`MajorMinor: FloatLit "9.0"`,
		`Value: StringLit "\"gone\""`,
		"└─",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty tree missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTreePrettyShowsMissing(t *testing.T) {
	b, root := parseInput(t, "iOS, introduced:", parser.GrammarAttribute)
	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, b, root, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<missing IntLit>") {
		t.Fatalf("missing placeholder not shown:\n%s", buf.String())
	}
}
