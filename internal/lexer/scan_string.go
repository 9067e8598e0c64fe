package lexer

import (
	"strings"

	"minijs/internal/diag"
	"minijs/internal/token"
)

// scanString сканирует строки в кавычках '"' или '\''.
// Escape-последовательности: \n \t \\ \" \'. Token.Text — ровно исходный
// срез, вместе с кавычками; раскодирует парсер через UnquoteString.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump() // opening '"' or '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexUnterminatedEscape, sp, "escape sequence cut off by end of input")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			// перевод строки в строковом литерале — ошибка
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// UnquoteString снимает кавычки и раскодирует escape-последовательности в
// тексте валидного StringLit токена. Неизвестный escape оставляет символ
// как есть.
func UnquoteString(raw string) string {
	if len(raw) < 2 {
		return ""
	}
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		b := body[i]
		if b != '\\' || i+1 == len(body) {
			sb.WriteByte(b)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case '\'':
			sb.WriteByte('\'')
		default:
			sb.WriteByte(body[i])
		}
	}
	return sb.String()
}
