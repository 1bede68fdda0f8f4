package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Lexical codes live in the 1000 range,
// availability-tree codes in the 2000 range.
type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// availability tree markers, emitted by syntax.Report
	AvailInfo             Code = 2000
	AvailMissingToken     Code = 2001
	AvailUnexpectedTokens Code = 2002
	AvailWrongGrammar     Code = 2003 // attribute-style label inside a condition list
	AvailUnknownLabel     Code = 2004

	// driver / IO
	IOLoadFileError Code = 3000
)

var codeIDs = map[Code]string{
	UnknownCode:                 "unknown",
	LexInfo:                     "lex-info",
	LexUnknownChar:              "lex-unknown-char",
	LexUnterminatedString:       "lex-unterminated-string",
	LexUnterminatedBlockComment: "lex-unterminated-block-comment",
	AvailInfo:                   "avail-info",
	AvailMissingToken:           "avail-missing-token",
	AvailUnexpectedTokens:       "avail-unexpected-tokens",
	AvailWrongGrammar:           "avail-wrong-grammar",
	AvailUnknownLabel:           "avail-unknown-label",
	IOLoadFileError:             "io-load-file-error",
}

// ID returns the stable kebab-case identifier used in output.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("code-%d", uint16(c))
}

func (c Code) String() string {
	return fmt.Sprintf("%s(%d)", c.ID(), uint16(c))
}
