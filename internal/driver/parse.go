package driver

import (
	"availspec/internal/diag"
	"availspec/internal/lexer"
	"availspec/internal/parser"
	"availspec/internal/source"
	"availspec/internal/syntax"
	"availspec/internal/token"
)

// ParseResult bundles one file's parse: the tree, the tokens it was built
// from, and every diagnostic the pipeline produced (lexical, tree markers,
// trailing garbage). The bag arrives sorted.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Builder *syntax.Builder
	List    syntax.ListID
	Grammar parser.Grammar
	// Consumed is how many tokens of the stream belong to the list.
	Consumed int
	Bag      *diag.Bag
}

// Parse loads one file and runs the full pipeline for the given grammar.
func Parse(path string, g parser.Grammar, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, g, maxDiagnostics), nil
}

// ParseSource parses in-memory content (stdin, tests) under the given name.
func ParseSource(name string, content []byte, g parser.Grammar, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fileID, g, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, g parser.Grammar, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	toks := lx.Tokens()

	builder := syntax.NewBuilder(syntax.Hints{})
	p := parser.New(toks, builder)
	list := p.Parse(g)

	syntax.Report(builder, list, reporter)
	reportTrailing(toks, p.Cursor().Pos(), reporter)

	bag.Sort()

	return &ParseResult{
		FileSet:  fs,
		File:     file,
		Tokens:   toks,
		Builder:  builder,
		List:     list,
		Grammar:  g,
		Consumed: p.Cursor().Pos(),
		Bag:      bag,
	}
}

// reportTrailing flags tokens left between the end of the argument list and
// EOF. The parser legitimately stops at a closing parenthesis; when the
// whole input is supposed to be one list, what remains is an error.
func reportTrailing(toks []token.Token, consumed int, r diag.Reporter) {
	rest := toks[consumed:]
	if len(rest) == 0 || rest[0].Kind == token.EOF {
		return
	}
	sp := rest[0].Span
	for _, tok := range rest {
		if tok.Kind == token.EOF {
			break
		}
		sp = sp.Cover(tok.Span)
	}
	r.Report(diag.AvailUnexpectedTokens, diag.SevError, sp,
		"unexpected tokens after availability argument list", nil)
}
