package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null

	// NumberLit represents the numeric literal token.
	NumberLit
	// StringLit represents the string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// AndAnd represents the and and operator token.
	AndAnd // &&
	// OrOr represents the or or operator token.
	OrOr // ||
	// Question represents the question operator token.
	Question // ?
	// Colon represents the colon operator token.
	Colon // :
	// FatArrow represents the fat arrow operator token.
	FatArrow // =>
	// Comma represents the comma operator token.
	Comma // ,
	// Dot represents the dot operator token.
	Dot // .
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]

	// Newline separates statements inside block bodies.
	Newline
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwTrue:    "KwTrue",
	KwFalse:   "KwFalse",
	KwNull:    "KwNull",
	NumberLit: "NumberLit",
	StringLit: "StringLit",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Percent:   "Percent",
	Assign:    "Assign",
	EqEq:      "EqEq",
	Bang:      "Bang",
	BangEq:    "BangEq",
	Lt:        "Lt",
	LtEq:      "LtEq",
	Gt:        "Gt",
	GtEq:      "GtEq",
	AndAnd:    "AndAnd",
	OrOr:      "OrOr",
	Question:  "Question",
	Colon:     "Colon",
	FatArrow:  "FatArrow",
	Comma:     "Comma",
	Dot:       "Dot",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	Newline:   "Newline",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
