package parser

import (
	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/source"
	"minijs/internal/token"
)

// parseObjectLiteral разбирает `{ key: expr, name(params) { body }, ... }`.
// Запятая разделяет записи, trailing comma допустима. Методы и обычные
// свойства могут свободно смешиваться.
func (p *Parser) parseObjectLiteral() (ast.ExprID, bool) {
	openTok := p.advance() // '{'
	p.skipNewlines()

	var props []ast.PropID
	for !p.at(token.RBrace) {
		prop, ok := p.parseObjectEntry()
		if !ok {
			return ast.NoExprID, false
		}
		props = append(props, prop)

		p.skipNewlines()
		if p.at(token.Comma) {
			p.advance()
			p.skipNewlines()
			continue
		}
		break
	}

	p.skipNewlines()
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after object entries")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewObject(openTok.Span.Cover(closeTok.Span), props), true
}

// parseObjectEntry разбирает одну запись объектного литерала.
// key '(' — метод; key ':' — свойство; всё остальное — ошибка.
func (p *Parser) parseObjectEntry() (ast.PropID, bool) {
	keyTok, ok := p.expect(token.Ident, diag.SynBadObjectEntry, "expected entry name in object literal")
	if !ok {
		return ast.NoPropID, false
	}
	key := p.intern(keyTok.Text)

	switch p.peek().Kind {
	case token.LParen:
		p.advance() // '('
		params, ok := p.parseMethodParams()
		if !ok {
			return ast.NoPropID, false
		}
		body, ok := p.parseBlockExpr()
		if !ok {
			return ast.NoPropID, false
		}
		bodySpan := p.arenas.Exprs.Get(body).Span
		return p.arenas.Props.NewMethod(keyTok.Span.Cover(bodySpan), key, params, body), true

	case token.Colon:
		p.advance() // ':'
		value, ok := p.parseExpr()
		if !ok {
			return ast.NoPropID, false
		}
		valueSpan := p.arenas.Exprs.Get(value).Span
		return p.arenas.Props.NewValue(keyTok.Span.Cover(valueSpan), key, value), true

	default:
		p.err(diag.SynBadObjectEntry, "expected '(' or ':' after entry name")
		return ast.NoPropID, false
	}
}

// parseMethodParams разбирает список параметров метода после съеденной '('.
func (p *Parser) parseMethodParams() ([]source.StringID, bool) {
	var params []source.StringID

	if !p.at(token.RParen) {
		for {
			nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "method parameters must be identifiers")
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

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after method parameters"); !ok {
		return nil, false
	}
	return params, true
}
