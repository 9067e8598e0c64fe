package token

import (
	"minijs/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, null, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign, EqEq, Bang, BangEq,
		Lt, LtEq, Gt, GtEq, AndAnd, OrOr, Question, Colon, FatArrow,
		Comma, Dot, LParen, RParen, LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// ContinuesLine reports whether a newline directly after this token is part
// of the same logical statement. Строка, оканчивающаяся на такой токен,
// продолжается на следующей физической строке.
func (k Kind) ContinuesLine() bool {
	switch k {
	case Plus, Minus, Star, Slash, Percent, AndAnd, OrOr, Question, Colon,
		EqEq, BangEq, Lt, Gt, LtEq, GtEq, Comma:
		return true
	default:
		return false
	}
}
