package lexer

import (
	"minijs/internal/diag"
	"minijs/internal/token"
)

// Поддержка: 123, 1.5. Знак числа — не лексическая забота (унарный минус
// разбирает парсер). Точка без цифры после неё числу не принадлежит:
// "1." лексится как NumberLit("1") + Dot.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// опциональная дробная часть
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// "12abc" — почти наверняка опечатка, а не Number + Ident
	if isIdentStartByte(lx.cursor.Peek()) {
		bad := lx.cursor.Mark()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		badSp := sp.Cover(lx.cursor.SpanFrom(bad))
		lx.errLex(diag.LexBadNumber, badSp, "identifier characters directly after number literal")
		return token.Token{Kind: token.Invalid, Span: badSp, Text: string(lx.file.Content[badSp.Start:badSp.End])}
	}

	return token.Token{Kind: token.NumberLit, Span: sp, Text: text}
}
