package diagfmt

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"availspec/internal/source"
	"availspec/internal/syntax"
	"availspec/internal/token"
)

// Current schema version - increment when TreeDump format changes
const treeDumpSchemaVersion uint16 = 1

// TreeDump is the msgpack wire form of one parsed availability list. The
// builder's arenas are dumped flat, in allocation order, so decoding is a
// replay of the original allocations and every ID survives unchanged.
type TreeDump struct {
	Schema  uint16
	Source  string
	Grammar string

	Tokens      []TokenDump
	Versions    []VersionDump
	Constraints []ConstraintDump
	Labeled     []LabeledDump
	Args        []ArgumentDump
	Lists       []ListDump
	Unexpected  []UnexpectedDump

	Root uint32
}

type TriviaDump struct {
	Kind uint8
	Span source.Span
	Text string
}

type TokenDump struct {
	Kind     uint8
	Span     source.Span
	Text     string
	Missing  bool
	Leading  []TriviaDump
	Trailing []TriviaDump
}

type VersionDump struct {
	Unexpected  uint32
	MajorMinor  uint32
	PatchPeriod uint32
	Patch       uint32
	Span        source.Span
}

type ConstraintDump struct {
	Entry   uint32
	Version uint32
	Span    source.Span
}

type LabeledDump struct {
	Label     uint32
	Colon     uint32
	ValueKind uint8
	StrValue  uint32
	VerValue  uint32
	Span      source.Span
}

type ArgumentDump struct {
	Payload       uint8
	Token         uint32
	Constraint    uint32
	Labeled       uint32
	TokenList     []uint32
	Raw           uint8
	TrailingComma uint32
	Span          source.Span
}

type ListDump struct {
	Args []uint32
	Span source.Span
}

type UnexpectedDump struct {
	Tokens []uint32
	Span   source.Span
}

// EncodeTree serializes the builder's arenas and the root list to w.
func EncodeTree(w io.Writer, b *syntax.Builder, root syntax.ListID, sourcePath, grammar string) error {
	dump := TreeDump{
		Schema:  treeDumpSchemaVersion,
		Source:  sourcePath,
		Grammar: grammar,
		Root:    uint32(root),
	}

	for _, n := range b.Tokens.Slice() {
		dump.Tokens = append(dump.Tokens, TokenDump{
			Kind:     uint8(n.Tok.Kind),
			Span:     n.Tok.Span,
			Text:     n.Tok.Text,
			Missing:  n.Missing,
			Leading:  dumpTrivia(n.Tok.Leading),
			Trailing: dumpTrivia(n.Tok.Trailing),
		})
	}
	for _, v := range b.Versions.Slice() {
		dump.Versions = append(dump.Versions, VersionDump{
			Unexpected:  uint32(v.UnexpectedBeforeMajor),
			MajorMinor:  uint32(v.MajorMinor),
			PatchPeriod: uint32(v.PatchPeriod),
			Patch:       uint32(v.Patch),
			Span:        v.Span,
		})
	}
	for _, c := range b.Constraints.Slice() {
		dump.Constraints = append(dump.Constraints, ConstraintDump{
			Entry:   uint32(c.Entry),
			Version: uint32(c.Version),
			Span:    c.Span,
		})
	}
	for _, l := range b.Labeled.Slice() {
		dump.Labeled = append(dump.Labeled, LabeledDump{
			Label:     uint32(l.Label),
			Colon:     uint32(l.Colon),
			ValueKind: uint8(l.ValueKind),
			StrValue:  uint32(l.StrValue),
			VerValue:  uint32(l.VerValue),
			Span:      l.Span,
		})
	}
	for _, a := range b.Args.Slice() {
		dump.Args = append(dump.Args, ArgumentDump{
			Payload:       uint8(a.Payload),
			Token:         uint32(a.Token),
			Constraint:    uint32(a.Constraint),
			Labeled:       uint32(a.Labeled),
			TokenList:     dumpIDs(a.TokenList),
			Raw:           uint8(a.Raw),
			TrailingComma: uint32(a.TrailingComma),
			Span:          a.Span,
		})
	}
	for _, l := range b.Lists.Slice() {
		dump.Lists = append(dump.Lists, ListDump{
			Args: dumpArgIDs(l.Args),
			Span: l.Span,
		})
	}
	for _, u := range b.Unexpected.Slice() {
		dump.Unexpected = append(dump.Unexpected, UnexpectedDump{
			Tokens: dumpIDs(u.Tokens),
			Span:   u.Span,
		})
	}

	return msgpack.NewEncoder(w).Encode(&dump)
}

// DecodeTree reads a TreeDump and replays it into a fresh builder.
func DecodeTree(r io.Reader) (*syntax.Builder, syntax.ListID, error) {
	var dump TreeDump
	if err := msgpack.NewDecoder(r).Decode(&dump); err != nil {
		return nil, syntax.NoListID, err
	}
	if dump.Schema != treeDumpSchemaVersion {
		return nil, syntax.NoListID, fmt.Errorf("tree dump schema %d, want %d", dump.Schema, treeDumpSchemaVersion)
	}

	b := syntax.NewBuilder(syntax.Hints{
		Tokens:      uint(len(dump.Tokens)) + 1,
		Versions:    uint(len(dump.Versions)) + 1,
		Constraints: uint(len(dump.Constraints)) + 1,
		Labeled:     uint(len(dump.Labeled)) + 1,
		Args:        uint(len(dump.Args)) + 1,
		Lists:       uint(len(dump.Lists)) + 1,
		Unexpected:  uint(len(dump.Unexpected)) + 1,
	})

	for _, t := range dump.Tokens {
		b.Tokens.Allocate(syntax.TokenNode{
			Tok: token.Token{
				Kind:     token.Kind(t.Kind),
				Span:     t.Span,
				Text:     t.Text,
				Leading:  restoreTrivia(t.Leading),
				Trailing: restoreTrivia(t.Trailing),
			},
			Missing: t.Missing,
		})
	}
	for _, v := range dump.Versions {
		b.Versions.Allocate(syntax.VersionTuple{
			UnexpectedBeforeMajor: syntax.UnexpectedID(v.Unexpected),
			MajorMinor:            syntax.TokenID(v.MajorMinor),
			PatchPeriod:           syntax.TokenID(v.PatchPeriod),
			Patch:                 syntax.TokenID(v.Patch),
			Span:                  v.Span,
		})
	}
	for _, c := range dump.Constraints {
		b.Constraints.Allocate(syntax.Constraint{
			Entry:   syntax.TokenID(c.Entry),
			Version: syntax.VersionID(c.Version),
			Span:    c.Span,
		})
	}
	for _, l := range dump.Labeled {
		b.Labeled.Allocate(syntax.LabeledArgument{
			Label:     syntax.TokenID(l.Label),
			Colon:     syntax.TokenID(l.Colon),
			ValueKind: syntax.LabeledValueKind(l.ValueKind),
			StrValue:  syntax.TokenID(l.StrValue),
			VerValue:  syntax.VersionID(l.VerValue),
			Span:      l.Span,
		})
	}
	for _, a := range dump.Args {
		b.Args.Allocate(syntax.Argument{
			Payload:       syntax.PayloadKind(a.Payload),
			Token:         syntax.TokenID(a.Token),
			Constraint:    syntax.ConstraintID(a.Constraint),
			Labeled:       syntax.LabeledID(a.Labeled),
			TokenList:     restoreIDs(a.TokenList),
			Raw:           syntax.RawCapture(a.Raw),
			TrailingComma: syntax.TokenID(a.TrailingComma),
			Span:          a.Span,
		})
	}
	for _, l := range dump.Lists {
		b.Lists.Allocate(syntax.ArgumentList{
			Args: restoreArgIDs(l.Args),
			Span: l.Span,
		})
	}
	for _, u := range dump.Unexpected {
		b.Unexpected.Allocate(syntax.Unexpected{
			Tokens: restoreIDs(u.Tokens),
			Span:   u.Span,
		})
	}

	return b, syntax.ListID(dump.Root), nil
}

func dumpTrivia(trivia []token.Trivia) []TriviaDump {
	out := make([]TriviaDump, 0, len(trivia))
	for _, tr := range trivia {
		out = append(out, TriviaDump{Kind: uint8(tr.Kind), Span: tr.Span, Text: tr.Text})
	}
	return out
}

func restoreTrivia(dump []TriviaDump) []token.Trivia {
	if len(dump) == 0 {
		return nil
	}
	out := make([]token.Trivia, 0, len(dump))
	for _, tr := range dump {
		out = append(out, token.Trivia{Kind: token.TriviaKind(tr.Kind), Span: tr.Span, Text: tr.Text})
	}
	return out
}

func dumpIDs(ids []syntax.TokenID) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

func restoreIDs(raw []uint32) []syntax.TokenID {
	if len(raw) == 0 {
		return nil
	}
	out := make([]syntax.TokenID, len(raw))
	for i, id := range raw {
		out[i] = syntax.TokenID(id)
	}
	return out
}

func dumpArgIDs(ids []syntax.ArgumentID) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

func restoreArgIDs(raw []uint32) []syntax.ArgumentID {
	if len(raw) == 0 {
		return nil
	}
	out := make([]syntax.ArgumentID, len(raw))
	for i, id := range raw {
		out[i] = syntax.ArgumentID(id)
	}
	return out
}
