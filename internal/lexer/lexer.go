package lexer

import (
	"minijs/internal/source"
	"minijs/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	depth  int          // глубина незакрытых '(' и '['
	prev   token.Kind   // последний значимый токен (Newline не считается)
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		depth:  0,
		prev:   token.EOF,
	}
}

// Next возвращает следующий значимый токен.
// Переводы строк видимы как token.Newline, кроме случаев, когда они
// проглатываются правилом продолжения строки или внутри '(' / '['.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) Пропустить пробелы и комментарии; '\n' может стать токеном
	if tok, ok := lx.skipTrivia(); ok {
		return tok
	}

	// 3) Если EOF → вернуть EOF
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	// 4) Посмотреть текущий байт и выбрать сканер
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	// 5) Обновить глубину скобок и последний значимый токен
	switch tok.Kind {
	case token.LParen, token.LBracket:
		lx.depth++
	case token.RParen, token.RBracket:
		if lx.depth > 0 {
			lx.depth--
		}
	}
	lx.prev = tok.Kind

	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipTrivia съедает пробелы, комментарии и незначимые переводы строк.
// Возвращает (Newline-токен, true), когда перевод строки значим.
func (lx *Lexer) skipTrivia() (token.Token, bool) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			lx.cursor.Bump()
			continue
		}

		// //... до конца физической строки
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '/' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}

		if b == '\n' {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			if lx.depth > 0 || lx.prev.ContinuesLine() {
				// внутри скобок или после оператора-продолжения — просто пробел
				continue
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Newline, Span: sp, Text: "\n"}, true
		}

		break
	}
	return token.Token{}, false
}

// EmptySpan возвращает пустой span на текущей позиции курсора.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
