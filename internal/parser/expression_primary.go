package parser

import (
	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/lexer"
	"minijs/internal/source"
	"minijs/internal/token"
)

// parsePrimaryExpr разбирает атомы грамматики: литералы, идентификаторы,
// скобочные группы, литералы массивов и объектов, стрелочные функции.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.peek()

	switch tok.Kind {
	case token.NumberLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitNumber, p.intern(tok.Text)), true

	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitString, p.intern(lexer.UnquoteString(tok.Text))), true

	case token.KwTrue:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitBool, p.intern("true")), true

	case token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitBool, p.intern("false")), true

	case token.KwNull:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitNull, p.intern("null")), true

	case token.Ident:
		// `x => body` — стрелочная функция с одним параметром
		if p.peekAt(1).Kind == token.FatArrow {
			return p.parseArrowFn()
		}
		p.advance()
		return p.arenas.Exprs.NewIdent(tok.Span, p.intern(tok.Text)), true

	case token.LParen:
		// `(a, b) => body` — стрелочная функция; иначе скобочная группа.
		// Ограниченный lookahead до парной ')' и следующего за ней токена.
		if p.isArrowAhead() {
			return p.parseArrowFn()
		}
		p.advance() // '('
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
			return ast.NoExprID, false
		}
		return inner, true

	case token.LBracket:
		return p.parseArrayLiteral()

	case token.LBrace:
		return p.parseObjectLiteral()

	case token.EOF:
		p.err(diag.SynUnexpectedEOF, "unexpected end of input")
		return ast.NoExprID, false

	default:
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span,
			"unexpected token "+tok.Kind.String()+" in expression")
		return ast.NoExprID, false
	}
}

// parseArrayLiteral разбирает `[e1, e2, ...]`, trailing comma допустима.
func (p *Parser) parseArrayLiteral() (ast.ExprID, bool) {
	openTok := p.advance() // '['

	var elements []ast.ExprID
	if !p.at(token.RBracket) {
		for {
			element, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			elements = append(elements, element)

			if p.at(token.Comma) {
				p.advance()
				if p.at(token.RBracket) {
					break
				}
				continue
			}
			break
		}
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array elements")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewArray(openTok.Span.Cover(closeTok.Span), elements), true
}

// isArrowAhead смотрит вперёд от текущей '(' до парной ')' и проверяет,
// что сразу за ней идёт '=>'. Не двигает курсор.
func (p *Parser) isArrowAhead() bool {
	depth := 0
	for i := 0; ; i++ {
		tok := p.peekAt(i)
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return p.peekAt(i+1).Kind == token.FatArrow
			}
		case token.EOF:
			return false
		}
	}
}

// parseArrowFn разбирает `x => body`, `(a, b) => body` и `() => body`.
// Тело — выражение или блок в фигурных скобках.
func (p *Parser) parseArrowFn() (ast.ExprID, bool) {
	startTok := p.peek()
	params, ok := p.parseArrowParams()
	if !ok {
		return ast.NoExprID, false
	}

	if _, ok := p.expect(token.FatArrow, diag.SynBadArrowParams, "expected '=>' after arrow parameters"); !ok {
		return ast.NoExprID, false
	}

	var body ast.ExprID
	if p.at(token.LBrace) {
		body, ok = p.parseBlockExpr()
	} else {
		body, ok = p.parseExpr()
	}
	if !ok {
		return ast.NoExprID, false
	}

	bodySpan := p.arenas.Exprs.Get(body).Span
	return p.arenas.Exprs.NewArrow(startTok.Span.Cover(bodySpan), params, body), true
}

// parseArrowParams разбирает параметры стрелочной функции:
// одиночный идентификатор или `(a, b, ...)`.
func (p *Parser) parseArrowParams() ([]source.StringID, bool) {
	if p.at(token.Ident) {
		nameTok := p.advance()
		return []source.StringID{p.intern(nameTok.Text)}, true
	}

	if _, ok := p.expect(token.LParen, diag.SynBadArrowParams, "expected arrow parameter list"); !ok {
		return nil, false
	}

	var params []source.StringID
	if !p.at(token.RParen) {
		for {
			nameTok, ok := p.expect(token.Ident, diag.SynBadArrowParams, "arrow parameters must be identifiers")
			if !ok {
				return nil, false
			}
			params = append(params, p.intern(nameTok.Text))

			if p.at(token.Comma) {
				p.advance()
				if p.at(token.RParen) {
					break
				}
				continue
			}
			break
		}
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arrow parameters"); !ok {
		return nil, false
	}
	return params, true
}
