package lexer

import (
	"availspec/internal/diag"
	"availspec/internal/source"
)

// Options configures a Lexer. A nil Reporter silences lexical diagnostics;
// scanning always continues either way.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
