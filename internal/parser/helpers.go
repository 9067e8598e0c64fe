package parser

import (
	"slices"

	"minijs/internal/diag"
	"minijs/internal/source"
	"minijs/internal/token"
)

// peek возвращает текущий токен, не потребляя его.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF, Span: p.lastSpan}
	}
	return p.toks[p.pos]
}

// peekAt возвращает токен на offset вперёд от курсора (0 == peek).
func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.toks) {
		return token.Token{Kind: token.EOF, Span: p.lastSpan}
	}
	return p.toks[idx]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// skipNewlines пропускает подряд идущие Newline токены.
func (p *Parser) skipNewlines() {
	for p.at(token.Newline) {
		p.advance()
	}
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// Если текущий токен EOF с нулевой длиной, используем позицию после lastSpan.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.peek().Text}, false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter != nil {
		if sev == diag.SevError {
			p.opts.CurrentErrors++
		}
		if !p.opts.Enough() {
			p.opts.Reporter.Report(code, sev, sp, msg, nil)
			return true
		}
		return false // достигли максимального количества ошибок
	}
	return false // нет reporter - ничего не записали
}

// intern кладёт строку в интернер арен.
func (p *Parser) intern(s string) source.StringID {
	return p.arenas.StringsInterner.Intern(s)
}
