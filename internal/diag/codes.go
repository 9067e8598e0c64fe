package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedEscape Code = 1003
	LexBadNumber          Code = 1004

	// Парсерные
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynUnexpectedEOF        Code = 2002
	SynExpectExpression     Code = 2003
	SynExpectIdentifier     Code = 2004
	SynExpectColon          Code = 2005
	SynExpectComma          Code = 2006
	SynUnclosedParen        Code = 2007
	SynUnclosedBrace        Code = 2008
	SynUnclosedBracket      Code = 2009
	SynBadObjectEntry       Code = 2010
	SynBadArrowParams       Code = 2011
	SynIllegalAssignment    Code = 2012
	SynLeftoverTokens       Code = 2013
	SynExpectStatement      Code = 2014

	// Трансформация AST -> S-выражения
	TransformInfo     Code = 3000
	TransformInternal Code = 3001

	// Декодирование текстовой формы S-выражений
	DecInfo               Code = 4000
	DecUnbalancedList     Code = 4001
	DecUnexpectedRParen   Code = 4002
	DecUnknownSentinel    Code = 4003
	DecBadStringEncoding  Code = 4004
	DecTrailingInput      Code = 4005
	DecEmptyInput         Code = 4006
)

// titles хранит человекочитаемые названия кодов.
var titles = map[Code]string{
	UnknownCode: "unknown",

	LexInfo:               "lexical note",
	LexUnknownChar:        "unrecognized character",
	LexUnterminatedString: "unterminated string literal",
	LexUnterminatedEscape: "unterminated escape sequence",
	LexBadNumber:          "malformed number literal",

	SynInfo:              "syntax note",
	SynUnexpectedToken:   "unexpected token",
	SynUnexpectedEOF:     "unexpected end of input",
	SynExpectExpression:  "expected expression",
	SynExpectIdentifier:  "expected identifier",
	SynExpectColon:       "expected ':'",
	SynExpectComma:       "expected ','",
	SynUnclosedParen:     "missing ')'",
	SynUnclosedBrace:     "missing '}'",
	SynUnclosedBracket:   "missing ']'",
	SynBadObjectEntry:    "malformed object entry",
	SynBadArrowParams:    "malformed arrow parameter list",
	SynIllegalAssignment: "assignment outside statement position",
	SynLeftoverTokens:    "leftover input after expression",
	SynExpectStatement:   "expected statement",

	TransformInfo:     "transform note",
	TransformInternal: "internal transform invariant violated",

	DecInfo:              "decode note",
	DecUnbalancedList:    "unbalanced parentheses",
	DecUnexpectedRParen:  "unexpected ')'",
	DecUnknownSentinel:   "sentinel token with no decode rule",
	DecBadStringEncoding: "malformed string atom payload",
	DecTrailingInput:     "trailing input after value",
	DecEmptyInput:        "empty input",
}

// ID возвращает стабильный строковый идентификатор кода (для выводов и тестов).
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TRN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("DEC%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	if t, ok := titles[c]; ok {
		return t
	}
	return "unknown"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
