package parser

import (
	"availspec/internal/token"
)

// Label enumerates the closed set of recognized availability argument
// labels. The set is fixed by the grammar; anything else is an unknown
// label and goes through raw capture.
type Label uint8

const (
	LabelNone Label = iota
	LabelMessage
	LabelRenamed
	LabelIntroduced
	LabelDeprecated
	LabelObsoleted
	LabelUnavailable
	LabelNoasync
)

var labelRegistry = map[string]Label{
	"message":     LabelMessage,
	"renamed":     LabelRenamed,
	"introduced":  LabelIntroduced,
	"deprecated":  LabelDeprecated,
	"obsoleted":   LabelObsoleted,
	"unavailable": LabelUnavailable,
	"noasync":     LabelNoasync,
}

func (l Label) String() string {
	for name, label := range labelRegistry {
		if label == l {
			return name
		}
	}
	return "none"
}

// ClassifyLabel matches tok against the label set. Classification is
// lookahead-only: it never consumes, and callers decide what grammar
// follows the label. Labels are contextual, so only plain identifiers
// match, and matching is case-sensitive.
func ClassifyLabel(tok token.Token) (Label, bool) {
	if tok.Kind != token.Ident {
		return LabelNone, false
	}
	l, ok := labelRegistry[tok.Text]
	return l, ok
}

// Platform-agnostic version markers: constraints on the language or
// package-tooling version rather than on any platform.
const (
	agnosticLanguage = "swift"
	agnosticPackage  = "_PackageDescription"
)

// isPlatformAgnostic reports whether tok is one of the reserved
// platform-agnostic markers.
func isPlatformAgnostic(tok token.Token) bool {
	return tok.Kind == token.Ident &&
		(tok.Text == agnosticLanguage || tok.Text == agnosticPackage)
}
