package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token (platform names, macro names,
	// and availability labels alike).
	Ident

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token (a "major.minor" shape).
	FloatLit
	// StringLit represents a string literal token.
	StringLit

	// Star represents the '*' wildcard token.
	Star // *
	// Comma represents the ',' separator token.
	Comma // ,
	// Colon represents the ':' token.
	Colon // :
	// Dot represents the '.' token.
	Dot // .
	// LParen represents the '(' token.
	LParen // (
	// RParen represents the ')' token.
	RParen // )
	// At represents the '@' token.
	At // @
	// Semicolon represents the ';' token.
	Semicolon // ;
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",
	Star:      "Star",
	Comma:     "Comma",
	Colon:     "Colon",
	Dot:       "Dot",
	LParen:    "LParen",
	RParen:    "RParen",
	At:        "At",
	Semicolon: "Semicolon",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
