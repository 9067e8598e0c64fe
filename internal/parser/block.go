package parser

import (
	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/token"
)

// parseBlockExpr разбирает `{ stmt \n stmt ... }` — тело метода или
// стрелочной функции. Единственный разделитель операторов — перевод
// строки; строки-продолжения уже склеены лексером.
func (p *Parser) parseBlockExpr() (ast.ExprID, bool) {
	openTok, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{'")
	if !ok {
		return ast.NoExprID, false
	}
	p.skipNewlines()

	var stmts []ast.StmtID
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, "unexpected end of input inside block")
			return ast.NoExprID, false
		}

		stmt, ok := p.parseStatement()
		if !ok {
			return ast.NoExprID, false
		}
		stmts = append(stmts, stmt)

		// После оператора — перевод строки или конец блока.
		if p.at(token.Newline) {
			p.skipNewlines()
			continue
		}
		break
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after block statements")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewBlock(openTok.Span.Cover(closeTok.Span), stmts), true
}

// parseStatement разбирает один оператор: `name = expr` либо выражение.
// Присваивание распознаётся только здесь — в любом другом месте '='
// синтаксическая ошибка.
func (p *Parser) parseStatement() (ast.StmtID, bool) {
	if p.at(token.Ident) && p.peekAt(1).Kind == token.Assign {
		nameTok := p.advance() // identifier
		p.advance()            // '='

		value, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}

		valueSpan := p.arenas.Exprs.Get(value).Span
		return p.arenas.Stmts.NewAssign(nameTok.Span.Cover(valueSpan), p.intern(nameTok.Text), value), true
	}

	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	exprSpan := p.arenas.Exprs.Get(expr).Span
	return p.arenas.Stmts.NewExpr(exprSpan, expr), true
}
