package ast

import (
	"minijs/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprLit represents a literal expression.
	ExprLit
	// ExprUnary represents a prefix unary expression.
	ExprUnary
	// ExprBinary represents a binary expression (arithmetic, comparison, logical).
	ExprBinary
	// ExprTernary represents a conditional expression.
	ExprTernary
	// ExprArray represents an array literal.
	ExprArray
	// ExprObject represents an object literal.
	ExprObject
	// ExprArrow represents an arrow function.
	ExprArrow
	// ExprCall represents a function call.
	ExprCall
	// ExprMember represents dot member access.
	ExprMember
	// ExprIndex represents computed member access.
	ExprIndex
	// ExprBlock represents a brace-delimited statement body.
	ExprBlock
)

var exprKindNames = [...]string{
	ExprIdent:   "Ident",
	ExprLit:     "Lit",
	ExprUnary:   "Unary",
	ExprBinary:  "Binary",
	ExprTernary: "Ternary",
	ExprArray:   "Array",
	ExprObject:  "Object",
	ExprArrow:   "Arrow",
	ExprCall:    "Call",
	ExprMember:  "Member",
	ExprIndex:   "Index",
	ExprBlock:   "Block",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Unknown"
}

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitKind enumerates literal kinds.
type ExprLitKind uint8

const (
	// LitNumber represents a numeric literal.
	LitNumber ExprLitKind = iota
	// LitString represents a string literal.
	LitString
	// LitBool represents a boolean literal.
	LitBool
	// LitNull represents the null literal.
	LitNull
)

// ExprUnaryOp enumerates prefix operator kinds.
type ExprUnaryOp uint8

const (
	// ExprUnaryNeg represents arithmetic negation (-).
	ExprUnaryNeg ExprUnaryOp = iota
	// ExprUnaryNot represents logical negation (!).
	ExprUnaryNot
)

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// Арифметические

	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	// ExprBinarySub represents the subtraction operator (-).
	ExprBinarySub
	// ExprBinaryMul represents the multiplication operator (*).
	ExprBinaryMul
	// ExprBinaryDiv represents the division operator (/).
	ExprBinaryDiv
	// ExprBinaryMod represents the modulo operator (%).
	ExprBinaryMod

	// Сравнения

	// ExprBinaryEq represents the equality operator (==).
	ExprBinaryEq
	// ExprBinaryNotEq represents the inequality operator (!=).
	ExprBinaryNotEq
	// ExprBinaryLess represents the less-than operator (<).
	ExprBinaryLess
	// ExprBinaryLessEq represents the less-or-equal operator (<=).
	ExprBinaryLessEq
	// ExprBinaryGreater represents the greater-than operator (>).
	ExprBinaryGreater
	// ExprBinaryGreaterEq represents the greater-or-equal operator (>=).
	ExprBinaryGreaterEq

	// Логические

	// ExprBinaryLogicalAnd represents the logical AND operator (&&).
	ExprBinaryLogicalAnd
	// ExprBinaryLogicalOr represents the logical OR operator (||).
	ExprBinaryLogicalOr
)
