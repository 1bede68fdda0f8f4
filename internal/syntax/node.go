package syntax

import (
	"availspec/internal/source"
	"availspec/internal/token"
)

// TokenNode wraps one lexed token as a tree leaf. A Missing node stands in
// for a required token the input did not contain: its text is empty, its
// span is zero-length at the point where the token was expected, and it
// carries no trivia.
type TokenNode struct {
	Tok     token.Token
	Missing bool
}

// Unexpected is an ordered capture of tokens the grammar did not expect at
// a given point, attached immediately before the element they precede.
type Unexpected struct {
	Tokens []TokenID
	Span   source.Span
}

// VersionTuple is a 1-3 component dotted version.
//
// MajorMinor is an IntLit ("1") or FloatLit ("1.0"); the patch pair exists
// only when MajorMinor was lexed as a float, and PatchPeriod and Patch are
// always both set or both absent.
type VersionTuple struct {
	UnexpectedBeforeMajor UnexpectedID // NoUnexpectedID when clean
	MajorMinor            TokenID
	PatchPeriod           TokenID // NoTokenID when no patch component
	Patch                 TokenID // valid iff PatchPeriod is valid
	Span                  source.Span
}

// HasPatch reports whether the third version component is present.
func (v VersionTuple) HasPatch() bool {
	return v.PatchPeriod.IsValid()
}

// Constraint pairs a platform (or availability-macro) name with an optional
// version tuple. Platform names are not validated here; any identifier is
// accepted and checked by a later pass.
type Constraint struct {
	Entry   TokenID   // platform or macro name
	Version VersionID // NoVersionID when absent
	Span    source.Span
}

// LabeledValueKind tags which value shape a LabeledArgument carries.
type LabeledValueKind uint8

const (
	// ValueString is a string-literal value (message:, renamed:).
	ValueString LabeledValueKind = iota
	// ValueVersion is a version-tuple value (introduced:, deprecated:, obsoleted:).
	ValueVersion
)

// LabeledArgument is `label ':' value`. Colon and the value token may be
// Missing placeholders; the argument itself is always structurally complete.
type LabeledArgument struct {
	Label     TokenID
	Colon     TokenID
	ValueKind LabeledValueKind
	StrValue  TokenID   // valid when ValueKind == ValueString
	VerValue  VersionID // valid when ValueKind == ValueVersion
	Span      source.Span
}

// PayloadKind tags the payload variant of an Argument.
type PayloadKind uint8

const (
	// PayloadToken is a bare token: the '*' wildcard, or a lone label such
	// as `deprecated` / `unavailable` / `noasync`.
	PayloadToken PayloadKind = iota
	// PayloadConstraint is a platform+version or macro constraint.
	PayloadConstraint
	// PayloadLabeled is a label:value argument.
	PayloadLabeled
	// PayloadTokenList is the raw fallback: input that fit no grammar
	// position, preserved verbatim.
	PayloadTokenList
)

// RawCapture records why a PayloadTokenList argument was captured raw,
// so the diagnostic walker can phrase its message.
type RawCapture uint8

const (
	RawNone RawCapture = iota
	// RawWrongGrammar marks an attribute-style labeled argument met inside
	// a condition-style list.
	RawWrongGrammar
	// RawUnknownLabel marks a label outside the recognized set in an
	// attribute-style list.
	RawUnknownLabel
)

// Argument is one element of an availability argument list.
type Argument struct {
	Payload    PayloadKind
	Token      TokenID      // PayloadToken
	Constraint ConstraintID // PayloadConstraint
	Labeled    LabeledID    // PayloadLabeled
	TokenList  []TokenID    // PayloadTokenList
	Raw        RawCapture   // set only for PayloadTokenList

	// TrailingComma is the separator consumed after this argument,
	// NoTokenID for the final element.
	TrailingComma TokenID
	Span          source.Span
}

// ArgumentList is the ordered list both entry points produce. Order is
// semantically significant: the attribute-style grammar guarantees the
// first element is the platform argument.
type ArgumentList struct {
	Args []ArgumentID
	Span source.Span
}
