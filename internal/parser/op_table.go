package parser

import (
	"minijs/internal/ast"
	"minijs/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precLogicalOr      = 1 // ||
	precLogicalAnd     = 2 // &&
	precEquality       = 3 // == !=
	precComparison     = 4 // < <= > >=
	precAdditive       = 5 // + -
	precMultiplicative = 6 // * / %
)

// getBinaryOperatorPrec возвращает приоритет оператора.
// Все бинарные операторы MiniJS левоассоциативны.
func getBinaryOperatorPrec(kind token.Kind) int {
	switch kind {
	// Логические операторы
	case token.OrOr:
		return precLogicalOr
	case token.AndAnd:
		return precLogicalAnd

	// Операторы равенства
	case token.EqEq, token.BangEq:
		return precEquality

	// Операторы сравнения
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison

	// Арифметические операторы
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative

	default:
		return -1 // не бинарный оператор
	}
}

// tokenKindToBinaryOp преобразует токен в тип бинарного оператора
func tokenKindToBinaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	// Арифметические
	case token.Plus:
		return ast.ExprBinaryAdd
	case token.Minus:
		return ast.ExprBinarySub
	case token.Star:
		return ast.ExprBinaryMul
	case token.Slash:
		return ast.ExprBinaryDiv
	case token.Percent:
		return ast.ExprBinaryMod

	// Логические
	case token.AndAnd:
		return ast.ExprBinaryLogicalAnd
	case token.OrOr:
		return ast.ExprBinaryLogicalOr

	// Сравнения
	case token.EqEq:
		return ast.ExprBinaryEq
	case token.BangEq:
		return ast.ExprBinaryNotEq
	case token.Lt:
		return ast.ExprBinaryLess
	case token.LtEq:
		return ast.ExprBinaryLessEq
	case token.Gt:
		return ast.ExprBinaryGreater
	case token.GtEq:
		return ast.ExprBinaryGreaterEq

	default:
		panic("not a binary operator token")
	}
}

// getUnaryOperator возвращает унарный оператор для токена, если есть.
func getUnaryOperator(kind token.Kind) (ast.ExprUnaryOp, bool) {
	switch kind {
	case token.Minus:
		return ast.ExprUnaryNeg, true
	case token.Bang:
		return ast.ExprUnaryNot, true
	default:
		return 0, false
	}
}
