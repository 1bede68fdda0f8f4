package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"availspec/internal/diag"
	"availspec/internal/source"
)

func testBag(fs *source.FileSet) (*diag.Bag, source.FileID) {
	id := fs.AddVirtual("guard.avail", []byte("iOS, bogus: 9.0\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.AvailUnknownLabel,
		Message:  "unknown availability argument 'bogus'",
		Primary:  source.Span{File: id, Start: 5, End: 10},
	})
	return bag, id
}

func TestPrettyPlain(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true})

	out := buf.String()
	if !strings.Contains(out, "guard.avail:1:6: ERROR avail-unknown-label: unknown availability argument 'bogus'") {
		t.Fatalf("header line missing:\n%s", out)
	}
	if !strings.Contains(out, "iOS, bogus: 9.0") {
		t.Fatalf("source line missing:\n%s", out)
	}
	if !strings.Contains(out, "^~~~~") {
		t.Fatalf("caret underline missing:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("escape codes in plain output:\n%q", out)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("no escape codes in colored output:\n%q", buf.String())
	}
}

func TestPrettyZeroLengthSpanGetsCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("guard.avail", []byte("swift, *\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.AvailMissingToken,
		Message:  "expected version number",
		Primary:  source.Span{File: id, Start: 5, End: 5},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true})
	if !strings.Contains(buf.String(), "^") {
		t.Fatalf("no caret for zero-length span:\n%s", buf.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("guard.avail", []byte("iOS 9.0, *\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.NewWarning(diag.AvailInfo, source.Span{File: id, Start: 0, End: 3}, "something").
		WithNote(source.Span{File: id, Start: 4, End: 7}, "see the version here"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(buf.String(), "note: see the version here") {
		t.Fatalf("note missing:\n%s", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "avail-unknown-label" || d.Severity != "ERROR" {
		t.Fatalf("diagnostic = %+v", d)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 6 {
		t.Fatalf("location = %+v", d.Location)
	}
}

func TestJSONMaxTruncatesOutputNotCount(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("guard.avail", []byte("iOS\n"))
	bag := diag.NewBag(8)
	for i := 0; i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.AvailMissingToken,
			Message:  "expected something",
			Primary:  source.Span{File: id, Start: 0, End: 1},
		})
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if len(out.Diagnostics) != 2 || out.Count != 3 {
		t.Fatalf("diagnostics = %d, count = %d", len(out.Diagnostics), out.Count)
	}
}

func TestFormatPathModes(t *testing.T) {
	if got := formatPath("/a/b/c.avail", PathModeBasename); got != "c.avail" {
		t.Fatalf("basename = %q", got)
	}
	if got := formatPath("x/y.avail", PathModeAuto); got != "x/y.avail" {
		t.Fatalf("auto = %q", got)
	}
}
