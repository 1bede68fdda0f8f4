package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"availspec/internal/diag"
	"availspec/internal/source"
)

// Pretty renders diagnostics for humans. It walks bag.Items() in order
// (callers usually bag.Sort() first) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <code>: <message>
//
// followed by the offending source line with a caret underline when
// ShowSource is set, and by the notes when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for _, d := range bag.Items() {
		p.diagnostic(d)
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p prettyPrinter) diagnostic(d diag.Diagnostic) {
	// diagnostics without a resolvable file (I/O failures) have no location
	if int(d.Primary.File) >= p.fs.Len() {
		fmt.Fprintf(p.w, "%s %s: %s\n", p.severity(d.Severity), p.paint(d.Code.ID(), color.Faint), d.Message)
		return
	}

	start, _ := p.fs.Resolve(d.Primary)
	file := p.fs.Get(d.Primary.File)

	fmt.Fprintf(p.w, "%s:%d:%d: %s %s: %s\n",
		formatPath(file.Path, p.opts.PathMode),
		start.Line, start.Col,
		p.severity(d.Severity),
		p.paint(d.Code.ID(), color.Faint),
		d.Message,
	)

	if p.opts.ShowSource {
		p.sourceLine(file, d.Primary, start)
	}

	if p.opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := p.fs.Resolve(n.Span)
			nFile := p.fs.Get(n.Span.File)
			fmt.Fprintf(p.w, "  %s:%d:%d: %s: %s\n",
				formatPath(nFile.Path, p.opts.PathMode),
				nStart.Line, nStart.Col,
				p.paint("note", color.FgCyan),
				n.Msg,
			)
		}
	}
}

// sourceLine prints the line the span starts on and a ^~~~ underline
// beneath it. The underline is clipped at the end of the line; a
// zero-length span still gets a single caret so synthesized-token
// diagnostics point somewhere.
func (p prettyPrinter) sourceLine(file *source.File, sp source.Span, start source.LineCol) {
	line := file.GetLine(start.Line)
	if line == "" && sp.Len() > 0 {
		return
	}
	fmt.Fprintf(p.w, "  %s\n", line)

	col := int(start.Col) - 1
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	width := int(sp.Len())
	if rest := len(line) - col; width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(p.w, "  %s%s\n", strings.Repeat(" ", col), p.paint(underline, color.FgGreen))
}

func (p prettyPrinter) severity(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return p.paint(sev.String(), color.FgRed, color.Bold)
	case diag.SevWarning:
		return p.paint(sev.String(), color.FgYellow, color.Bold)
	default:
		return p.paint(sev.String(), color.FgCyan)
	}
}

func (p prettyPrinter) paint(s string, attrs ...color.Attribute) string {
	if !p.opts.Color {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func formatPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		return abs
	case PathModeRelative:
		wd, err := filepath.Abs(".")
		if err != nil {
			return path
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		rel, err := filepath.Rel(wd, abs)
		if err != nil {
			return path
		}
		return rel
	case PathModeBasename:
		return filepath.Base(path)
	default:
		return path
	}
}
