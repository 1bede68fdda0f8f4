package parser

import (
	"strings"
	"testing"

	"availspec/internal/diag"
	"availspec/internal/syntax"
)

// reportOf parses input with the given grammar and collects the diagnostics
// the tree walker produces from its missing/unexpected markers.
func reportOf(t *testing.T, input string, g Grammar) []diag.Diagnostic {
	t.Helper()
	_, b, list := parseOne(t, input, g)
	bag := diag.NewBag(32)
	syntax.Report(b, list, diag.BagReporter{Bag: bag})
	return bag.Items()
}

func hasCode(items []diag.Diagnostic, code diag.Code) bool {
	for _, d := range items {
		if d.Code == code {
			return true
		}
	}
	return false
}

func messageContaining(items []diag.Diagnostic, sub string) (diag.Diagnostic, bool) {
	for _, d := range items {
		if strings.Contains(d.Message, sub) {
			return d, true
		}
	}
	return diag.Diagnostic{}, false
}

func TestReportCleanInputs(t *testing.T) {
	clean := []struct {
		input string
		g     Grammar
	}{
		{"iOS 9.0, macOS 10.12.1, *", GrammarCondition},
		{"swift 5.7, *", GrammarCondition},
		{"myMacro, *", GrammarCondition},
		{`iOS, introduced: 9.0, deprecated: 12.0, message: "use the new API"`, GrammarAttribute},
		{"iOS, unavailable", GrammarAttribute},
		{"iOS, deprecated", GrammarAttribute},
	}
	for _, tc := range clean {
		if items := reportOf(t, tc.input, tc.g); len(items) != 0 {
			t.Errorf("report(%q) = %v, want none", tc.input, items)
		}
	}
}

func TestReportWrongGrammarFragment(t *testing.T) {
	items := reportOf(t, "iOS 9.0, introduced: 2.0, *", GrammarCondition)
	if !hasCode(items, diag.AvailWrongGrammar) {
		t.Fatalf("no wrong-grammar diagnostic in %v", items)
	}
	d, ok := messageContaining(items, "'introduced'")
	if !ok {
		t.Fatalf("message does not name the offending label: %v", items)
	}
	if d.Severity != diag.SevError {
		t.Fatalf("severity = %v", d.Severity)
	}
}

func TestReportUnknownLabel(t *testing.T) {
	items := reportOf(t, "iOS, bogus: 9.0", GrammarAttribute)
	if !hasCode(items, diag.AvailUnknownLabel) {
		t.Fatalf("no unknown-label diagnostic in %v", items)
	}
	if _, ok := messageContaining(items, "unknown availability argument 'bogus'"); !ok {
		t.Fatalf("message does not name the label: %v", items)
	}
}

func TestReportMissingVersionValue(t *testing.T) {
	items := reportOf(t, "iOS, introduced:", GrammarAttribute)
	if !hasCode(items, diag.AvailMissingToken) {
		t.Fatalf("no missing-token diagnostic in %v", items)
	}
	if _, ok := messageContaining(items, "version number"); !ok {
		t.Fatalf("message does not mention the version: %v", items)
	}
}

func TestReportMissingColon(t *testing.T) {
	items := reportOf(t, `iOS, message "hi"`, GrammarAttribute)
	if _, ok := messageContaining(items, "expected ':' after 'message'"); !ok {
		t.Fatalf("no missing-colon diagnostic in %v", items)
	}
}

func TestReportMissingStringValue(t *testing.T) {
	items := reportOf(t, "iOS, renamed:", GrammarAttribute)
	if _, ok := messageContaining(items, "expected string value for 'renamed'"); !ok {
		t.Fatalf("no missing-string diagnostic in %v", items)
	}
}

func TestReportAgnosticNeedsVersion(t *testing.T) {
	items := reportOf(t, "swift, *", GrammarCondition)
	if !hasCode(items, diag.AvailMissingToken) {
		t.Fatalf("no missing-version diagnostic in %v", items)
	}
}

func TestReportMissingPatchComponent(t *testing.T) {
	items := reportOf(t, "iOS 9.0., *", GrammarCondition)
	if _, ok := messageContaining(items, "patch version component"); !ok {
		t.Fatalf("no missing-patch diagnostic in %v", items)
	}
}

func TestReportUnexpectedBeforeVersion(t *testing.T) {
	items := reportOf(t, "swift ( 5.7, *", GrammarCondition)
	if !hasCode(items, diag.AvailUnexpectedTokens) {
		t.Fatalf("no unexpected-tokens diagnostic in %v", items)
	}
}

func TestReportSpansPointIntoInput(t *testing.T) {
	input := "iOS, bogus: 9.0"
	items := reportOf(t, input, GrammarAttribute)
	if len(items) == 0 {
		t.Fatal("expected diagnostics")
	}
	for _, d := range items {
		if d.Primary.End > uint32(len(input)) || d.Primary.Start > d.Primary.End {
			t.Fatalf("span %v out of bounds for %q", d.Primary, input)
		}
	}
}

func TestReportNilReporterIsSafe(t *testing.T) {
	_, b, list := parseOne(t, "iOS, bogus:", GrammarAttribute)
	syntax.Report(b, list, nil) // must not panic
}
