package syntax

import (
	"availspec/internal/source"
	"availspec/internal/token"
)

// Hints sizes the builder's arenas up front.
type Hints struct {
	Tokens, Versions, Constraints, Labeled, Args, Lists, Unexpected uint
}

// Builder owns the arenas for one or more parses. It is append-only while a
// parse runs and safe to read concurrently only after the parse returns.
type Builder struct {
	Tokens      *Arena[TokenNode]
	Versions    *Arena[VersionTuple]
	Constraints *Arena[Constraint]
	Labeled     *Arena[LabeledArgument]
	Args        *Arena[Argument]
	Lists       *Arena[ArgumentList]
	Unexpected  *Arena[Unexpected]
}

func NewBuilder(hints Hints) *Builder {
	if hints.Tokens == 0 {
		hints.Tokens = 1 << 6
	}
	if hints.Versions == 0 {
		hints.Versions = 1 << 4
	}
	if hints.Constraints == 0 {
		hints.Constraints = 1 << 4
	}
	if hints.Labeled == 0 {
		hints.Labeled = 1 << 4
	}
	if hints.Args == 0 {
		hints.Args = 1 << 4
	}
	if hints.Lists == 0 {
		hints.Lists = 1 << 2
	}
	if hints.Unexpected == 0 {
		hints.Unexpected = 1 << 2
	}
	return &Builder{
		Tokens:      NewArena[TokenNode](hints.Tokens),
		Versions:    NewArena[VersionTuple](hints.Versions),
		Constraints: NewArena[Constraint](hints.Constraints),
		Labeled:     NewArena[LabeledArgument](hints.Labeled),
		Args:        NewArena[Argument](hints.Args),
		Lists:       NewArena[ArgumentList](hints.Lists),
		Unexpected:  NewArena[Unexpected](hints.Unexpected),
	}
}

// NewToken wraps a consumed token as a leaf.
func (b *Builder) NewToken(tok token.Token) TokenID {
	return TokenID(b.Tokens.Allocate(TokenNode{Tok: tok}))
}

// NewMissing synthesizes a placeholder for a required token that was absent.
// The placeholder gets a zero-length span at sp and contributes nothing to
// reconstructed text.
func (b *Builder) NewMissing(kind token.Kind, sp source.Span) TokenID {
	return TokenID(b.Tokens.Allocate(TokenNode{
		Tok: token.Token{
			Kind: kind,
			Span: source.Span{File: sp.File, Start: sp.Start, End: sp.Start},
		},
		Missing: true,
	}))
}

// NewUnexpected captures tokens the grammar did not expect. Returns
// NoUnexpectedID for an empty capture.
func (b *Builder) NewUnexpected(toks []TokenID) UnexpectedID {
	if len(toks) == 0 {
		return NoUnexpectedID
	}
	sp := b.TokenSpan(toks[0])
	for _, id := range toks[1:] {
		sp = sp.Cover(b.TokenSpan(id))
	}
	return UnexpectedID(b.Unexpected.Allocate(Unexpected{Tokens: toks, Span: sp}))
}

func (b *Builder) NewVersion(v VersionTuple) VersionID {
	return VersionID(b.Versions.Allocate(v))
}

func (b *Builder) NewConstraint(c Constraint) ConstraintID {
	return ConstraintID(b.Constraints.Allocate(c))
}

func (b *Builder) NewLabeled(l LabeledArgument) LabeledID {
	return LabeledID(b.Labeled.Allocate(l))
}

func (b *Builder) NewArgument(a Argument) ArgumentID {
	return ArgumentID(b.Args.Allocate(a))
}

func (b *Builder) NewList(l ArgumentList) ListID {
	return ListID(b.Lists.Allocate(l))
}

// TokenSpan returns the span of a token leaf, or a zero span for NoTokenID.
func (b *Builder) TokenSpan(id TokenID) source.Span {
	if n := b.Tokens.Get(uint32(id)); n != nil {
		return n.Tok.Span
	}
	return source.Span{}
}

// VersionSpan returns the span of a version node, or a zero span.
func (b *Builder) VersionSpan(id VersionID) source.Span {
	if n := b.Versions.Get(uint32(id)); n != nil {
		return n.Span
	}
	return source.Span{}
}
