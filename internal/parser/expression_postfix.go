package parser

import (
	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/token"
)

// parsePostfixExpr обрабатывает постфиксные цепочки: вызовы, доступ к
// членам через '.' и '[expr]'. Левоассоциативно, в любом порядке.
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.peek().Kind {
		case token.Dot:
			p.advance() // '.'
			nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected property name after '.'")
			if !ok {
				return ast.NoExprID, false
			}
			exprSpan := p.arenas.Exprs.Get(expr).Span
			expr = p.arenas.Exprs.NewMember(exprSpan.Cover(nameTok.Span), expr, p.intern(nameTok.Text))

		case token.LBracket:
			p.advance() // '['
			index, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index expression")
			if !ok {
				return ast.NoExprID, false
			}
			exprSpan := p.arenas.Exprs.Get(expr).Span
			expr = p.arenas.Exprs.NewIndex(exprSpan.Cover(closeTok.Span), expr, index)

		case token.LParen:
			p.advance() // '('
			args, closeTok, ok := p.parseCallArgs()
			if !ok {
				return ast.NoExprID, false
			}
			exprSpan := p.arenas.Exprs.Get(expr).Span
			expr = p.arenas.Exprs.NewCall(exprSpan.Cover(closeTok.Span), expr, args)

		default:
			return expr, true
		}
	}
}

// parseCallArgs разбирает список аргументов после уже съеденной '('.
// Возвращает аргументы и закрывающий токен ')'.
func (p *Parser) parseCallArgs() ([]ast.ExprID, token.Token, bool) {
	var args []ast.ExprID

	if p.at(token.RParen) {
		return args, p.advance(), true
	}

	for {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, token.Token{}, false
		}
		args = append(args, arg)

		if p.at(token.Comma) {
			p.advance()
			// trailing comma допустим
			if p.at(token.RParen) {
				break
			}
			continue
		}
		break
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments")
	if !ok {
		return nil, token.Token{}, false
	}
	return args, closeTok, true
}
