package parser

import (
	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/source"
	"minijs/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений.
// Тернарный оператор — самый низкий приоритет, правоассоциативен.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	cond, ok := p.parseBinaryExpr(0)
	if !ok {
		return ast.NoExprID, false
	}

	if !p.at(token.Question) {
		return cond, true
	}
	p.advance() // '?'

	// при неудаче внутренний разбор уже отчитался; второй diag был бы каскадом
	trueExpr, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression"); !ok {
		return ast.NoExprID, false
	}

	falseExpr, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	condSpan := p.arenas.Exprs.Get(cond).Span
	falseSpan := p.arenas.Exprs.Get(falseExpr).Span
	return p.arenas.Exprs.NewTernary(condSpan.Cover(falseSpan), cond, trueExpr, falseExpr), true
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов
// minPrec - минимальный приоритет для текущего уровня
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	// Парсим левую часть (унарные операторы + primary)
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	// Обрабатываем бинарные операторы в цикле
	for {
		tok := p.peek()

		// '=' внутри выражения всегда нелегален: присваивание
		// разрешено только в позиции statement.
		if tok.Kind == token.Assign {
			p.report(diag.SynIllegalAssignment, diag.SevError, tok.Span,
				"assignment is only allowed as a statement inside a block body")
			return ast.NoExprID, false
		}

		prec := getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec || prec < 0 {
			break
		}

		// Съедаем оператор
		opTok := p.advance()

		// Все операторы левоассоциативны
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}

		op := tokenKindToBinaryOp(opTok.Kind)
		leftSpan := p.arenas.Exprs.Get(left).Span
		rightSpan := p.arenas.Exprs.Get(right).Span
		left = p.arenas.Exprs.NewBinary(leftSpan.Cover(rightSpan), op, left, right)
	}

	return left, true
}

// parseUnaryExpr обрабатывает унарные операторы (префиксы)
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	type prefixOp struct {
		op   ast.ExprUnaryOp
		span source.Span
	}

	var prefixes []prefixOp

	// Собираем все префиксы
	for {
		op, ok := getUnaryOperator(p.peek().Kind)
		if !ok {
			break
		}
		opTok := p.advance()
		prefixes = append(prefixes, prefixOp{op: op, span: opTok.Span})
	}

	// Парсим базовое выражение
	expr, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoExprID, false
	}

	// Применяем префиксы справа налево
	for i := len(prefixes) - 1; i >= 0; i-- {
		exprSpan := p.arenas.Exprs.Get(expr).Span
		expr = p.arenas.Exprs.NewUnary(prefixes[i].span.Cover(exprSpan), prefixes[i].op, expr)
	}

	return expr, true
}
