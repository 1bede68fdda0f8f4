package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"availspec/internal/source"
	"availspec/internal/syntax"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// TreeNodeJSON is one parse-tree node rendered for machine output.
type TreeNodeJSON struct {
	Type     string         `json:"type"`
	Span     source.Span    `json:"span"`
	Text     string         `json:"text,omitempty"`
	Missing  bool           `json:"missing,omitempty"`
	Raw      string         `json:"raw,omitempty"`
	Children []TreeNodeJSON `json:"children,omitempty"`
}

// FormatTreePretty prints the parse tree of one availability argument list
// as box-drawing ASCII art. Missing placeholders and raw captures are shown
// explicitly so the output is a faithful picture of what the parser built.
func FormatTreePretty(w io.Writer, b *syntax.Builder, id syntax.ListID, fs *source.FileSet) error {
	list := b.Lists.Get(uint32(id))
	if list == nil {
		return fmt.Errorf("list %d not found", id)
	}

	root := &treeNode{label: fmt.Sprintf("AvailabilityList (span: %s)", formatSpan(list.Span, fs))}
	for i, argID := range list.Args {
		root.children = append(root.children, buildArgumentNode(b, argID, fs, i))
	}

	writeTree(w, root, "")
	return nil
}

// FormatTreeJSON prints the parse tree as an indented JSON document.
func FormatTreeJSON(w io.Writer, b *syntax.Builder, id syntax.ListID) error {
	list := b.Lists.Get(uint32(id))
	if list == nil {
		return fmt.Errorf("list %d not found", id)
	}

	out := TreeNodeJSON{Type: "AvailabilityList", Span: list.Span}
	for _, argID := range list.Args {
		out.Children = append(out.Children, buildArgumentJSON(b, argID))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func writeTree(w io.Writer, node *treeNode, prefix string) {
	fmt.Fprintf(w, "%s\n", node.label)
	for i, child := range node.children {
		last := i == len(node.children)-1
		branch, childPrefix := "├─ ", prefix+"│  "
		if last {
			branch, childPrefix = "└─ ", prefix+"   "
		}
		fmt.Fprintf(w, "%s%s", prefix, branch)
		writeTree(w, child, childPrefix)
	}
}

func buildArgumentNode(b *syntax.Builder, id syntax.ArgumentID, fs *source.FileSet, idx int) *treeNode {
	arg := b.Args.Get(uint32(id))
	if arg == nil {
		return &treeNode{label: fmt.Sprintf("Arg[%d]: <nil>", idx)}
	}

	head := func(kind string) *treeNode {
		return &treeNode{label: fmt.Sprintf("Arg[%d]: %s (span: %s)", idx, kind, formatSpan(arg.Span, fs))}
	}

	var node *treeNode
	switch arg.Payload {
	case syntax.PayloadToken:
		node = head("Token")
		node.children = append(node.children, tokenLeaf(b, arg.Token, "Value"))

	case syntax.PayloadConstraint:
		node = head("Constraint")
		c := b.Constraints.Get(uint32(arg.Constraint))
		if c != nil {
			node.children = append(node.children, tokenLeaf(b, c.Entry, "Entry"))
			if c.Version.IsValid() {
				node.children = append(node.children, buildVersionNode(b, c.Version, fs))
			}
		}

	case syntax.PayloadLabeled:
		node = head("Labeled")
		l := b.Labeled.Get(uint32(arg.Labeled))
		if l != nil {
			node.children = append(node.children, tokenLeaf(b, l.Label, "Label"))
			node.children = append(node.children, tokenLeaf(b, l.Colon, "Colon"))
			switch l.ValueKind {
			case syntax.ValueString:
				node.children = append(node.children, tokenLeaf(b, l.StrValue, "Value"))
			case syntax.ValueVersion:
				node.children = append(node.children, buildVersionNode(b, l.VerValue, fs))
			}
		}

	case syntax.PayloadTokenList:
		node = head(fmt.Sprintf("Raw (%s)", rawName(arg.Raw)))
		for i, tid := range arg.TokenList {
			node.children = append(node.children, tokenLeaf(b, tid, fmt.Sprintf("[%d]", i)))
		}

	default:
		node = head("<unknown>")
	}

	if arg.TrailingComma.IsValid() {
		node.children = append(node.children, tokenLeaf(b, arg.TrailingComma, "Comma"))
	}
	return node
}

func buildVersionNode(b *syntax.Builder, id syntax.VersionID, fs *source.FileSet) *treeNode {
	v := b.Versions.Get(uint32(id))
	if v == nil {
		return &treeNode{label: "Version: <nil>"}
	}
	node := &treeNode{label: fmt.Sprintf("Version (span: %s)", formatSpan(v.Span, fs))}
	if u := b.Unexpected.Get(uint32(v.UnexpectedBeforeMajor)); u != nil {
		uNode := &treeNode{label: "Unexpected"}
		for i, tid := range u.Tokens {
			uNode.children = append(uNode.children, tokenLeaf(b, tid, fmt.Sprintf("[%d]", i)))
		}
		node.children = append(node.children, uNode)
	}
	node.children = append(node.children, tokenLeaf(b, v.MajorMinor, "MajorMinor"))
	if v.HasPatch() {
		node.children = append(node.children, tokenLeaf(b, v.PatchPeriod, "Period"))
		node.children = append(node.children, tokenLeaf(b, v.Patch, "Patch"))
	}
	return node
}

func tokenLeaf(b *syntax.Builder, id syntax.TokenID, name string) *treeNode {
	n := b.Tokens.Get(uint32(id))
	if n == nil {
		return &treeNode{label: fmt.Sprintf("%s: <none>", name)}
	}
	if n.Missing {
		return &treeNode{label: fmt.Sprintf("%s: <missing %s>", name, n.Tok.Kind)}
	}
	return &treeNode{label: fmt.Sprintf("%s: %s %q", name, n.Tok.Kind, n.Tok.Text)}
}

func rawName(r syntax.RawCapture) string {
	switch r {
	case syntax.RawWrongGrammar:
		return "wrong-grammar"
	case syntax.RawUnknownLabel:
		return "unknown-label"
	default:
		return "garbage"
	}
}

func buildArgumentJSON(b *syntax.Builder, id syntax.ArgumentID) TreeNodeJSON {
	arg := b.Args.Get(uint32(id))
	if arg == nil {
		return TreeNodeJSON{Type: "Argument"}
	}

	node := TreeNodeJSON{Span: arg.Span}
	switch arg.Payload {
	case syntax.PayloadToken:
		node.Type = "Token"
		node.Children = append(node.Children, tokenJSON(b, arg.Token, "Value"))

	case syntax.PayloadConstraint:
		node.Type = "Constraint"
		if c := b.Constraints.Get(uint32(arg.Constraint)); c != nil {
			node.Children = append(node.Children, tokenJSON(b, c.Entry, "Entry"))
			if c.Version.IsValid() {
				node.Children = append(node.Children, buildVersionJSON(b, c.Version))
			}
		}

	case syntax.PayloadLabeled:
		node.Type = "Labeled"
		if l := b.Labeled.Get(uint32(arg.Labeled)); l != nil {
			node.Children = append(node.Children, tokenJSON(b, l.Label, "Label"))
			node.Children = append(node.Children, tokenJSON(b, l.Colon, "Colon"))
			switch l.ValueKind {
			case syntax.ValueString:
				node.Children = append(node.Children, tokenJSON(b, l.StrValue, "Value"))
			case syntax.ValueVersion:
				node.Children = append(node.Children, buildVersionJSON(b, l.VerValue))
			}
		}

	case syntax.PayloadTokenList:
		node.Type = "Raw"
		node.Raw = rawName(arg.Raw)
		for _, tid := range arg.TokenList {
			node.Children = append(node.Children, tokenJSON(b, tid, "Token"))
		}
	}

	if arg.TrailingComma.IsValid() {
		node.Children = append(node.Children, tokenJSON(b, arg.TrailingComma, "Comma"))
	}
	return node
}

func buildVersionJSON(b *syntax.Builder, id syntax.VersionID) TreeNodeJSON {
	v := b.Versions.Get(uint32(id))
	if v == nil {
		return TreeNodeJSON{Type: "Version"}
	}
	node := TreeNodeJSON{Type: "Version", Span: v.Span}
	if u := b.Unexpected.Get(uint32(v.UnexpectedBeforeMajor)); u != nil {
		for _, tid := range u.Tokens {
			node.Children = append(node.Children, tokenJSON(b, tid, "Unexpected"))
		}
	}
	node.Children = append(node.Children, tokenJSON(b, v.MajorMinor, "MajorMinor"))
	if v.HasPatch() {
		node.Children = append(node.Children, tokenJSON(b, v.PatchPeriod, "Period"))
		node.Children = append(node.Children, tokenJSON(b, v.Patch, "Patch"))
	}
	return node
}

func tokenJSON(b *syntax.Builder, id syntax.TokenID, typ string) TreeNodeJSON {
	n := b.Tokens.Get(uint32(id))
	if n == nil {
		return TreeNodeJSON{Type: typ}
	}
	return TreeNodeJSON{
		Type:    typ,
		Span:    n.Tok.Span,
		Text:    n.Tok.Text,
		Missing: n.Missing,
	}
}
