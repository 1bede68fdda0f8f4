package syntax

type (
	// TokenID addresses a token leaf.
	TokenID uint32
	// VersionID addresses a VersionTuple node.
	VersionID uint32
	// ConstraintID addresses a Constraint node.
	ConstraintID uint32
	// LabeledID addresses a LabeledArgument node.
	LabeledID uint32
	// ArgumentID addresses an Argument node.
	ArgumentID uint32
	// ListID addresses an ArgumentList node.
	ListID uint32
	// UnexpectedID addresses an Unexpected node.
	UnexpectedID uint32
)

const (
	NoTokenID      TokenID      = 0
	NoVersionID    VersionID    = 0
	NoConstraintID ConstraintID = 0
	NoLabeledID    LabeledID    = 0
	NoArgumentID   ArgumentID   = 0
	NoListID       ListID       = 0
	NoUnexpectedID UnexpectedID = 0
)

func (id TokenID) IsValid() bool      { return id != NoTokenID }
func (id VersionID) IsValid() bool    { return id != NoVersionID }
func (id ConstraintID) IsValid() bool { return id != NoConstraintID }
func (id LabeledID) IsValid() bool    { return id != NoLabeledID }
func (id ArgumentID) IsValid() bool   { return id != NoArgumentID }
func (id ListID) IsValid() bool       { return id != NoListID }
func (id UnexpectedID) IsValid() bool { return id != NoUnexpectedID }
