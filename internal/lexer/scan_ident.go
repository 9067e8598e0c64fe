package lexer

import (
	"minijs/internal/token"
)

// scanIdentOrKeyword сканирует [A-Za-z_][A-Za-z0-9_]* и проверяет через
// LookupKeyword. Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for {
		b := lx.cursor.Peek()
		if !isIdentContinueByte(b) {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// true/false/null — зарезервированы
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}

	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
