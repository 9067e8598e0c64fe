package sexpr

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"minijs/internal/diag"
)

// Sentinel открывает wire-форму строкового атома: NUL + "STR:".
// Управляющий байт не может встретиться в тексте символа (идентификаторы —
// ASCII буквы/цифры), поэтому строка и символ с одинаковым текстом
// не сливаются на проводе.
const Sentinel = "\x00STR:"

// DecodeError описывает ошибку разбора wire-формы.
type DecodeError struct {
	Offset int
	Code   diag.Code
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Code.ID(), e.Offset, e.Reason)
}

// Serialize renders the value in its textual wire form.
// Гарантия: Deserialize(Serialize(v)) == v для любого значения модели.
func Serialize(v Value) string {
	var sb strings.Builder
	serialize(&sb, v)
	return sb.String()
}

func serialize(sb *strings.Builder, v Value) {
	switch v.Kind {
	case KindNull:
		sb.WriteString("null")
	case KindNumber:
		// 'g' с точностью -1 — кратчайшая запись, восстанавливающая бит в бит
		sb.WriteString(strconv.FormatFloat(v.Num, 'g', -1, 64))
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case KindSymbol:
		sb.WriteString(v.Text)
	case KindString:
		// Содержимое экранируется, чтобы пробелы и скобки внутри строки
		// не разрывали токен (см. DESIGN.md, решение №4).
		sb.WriteString(Sentinel)
		sb.WriteString(url.QueryEscape(v.Text))
	case KindList:
		sb.WriteByte('(')
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			serialize(sb, item)
		}
		sb.WriteByte(')')
	}
}

// Deserialize parses the textual wire form back into a value.
func Deserialize(text string) (Value, error) {
	d := decoder{src: text}
	d.skipSpace()
	if d.eof() {
		return Value{}, &DecodeError{Offset: d.off, Code: diag.DecEmptyInput, Reason: "no value in input"}
	}

	v, err := d.value()
	if err != nil {
		return Value{}, err
	}

	d.skipSpace()
	if !d.eof() {
		return Value{}, &DecodeError{Offset: d.off, Code: diag.DecTrailingInput, Reason: "unexpected input after value"}
	}
	return v, nil
}

type decoder struct {
	src string
	off int
}

func (d *decoder) eof() bool {
	return d.off >= len(d.src)
}

func (d *decoder) peek() byte {
	if d.eof() {
		return 0
	}
	return d.src[d.off]
}

func (d *decoder) skipSpace() {
	for !d.eof() {
		switch d.src[d.off] {
		case ' ', '\t', '\n', '\r':
			d.off++
		default:
			return
		}
	}
}

func (d *decoder) value() (Value, error) {
	switch d.peek() {
	case '(':
		return d.list()
	case ')':
		return Value{}, &DecodeError{Offset: d.off, Code: diag.DecUnexpectedRParen, Reason: "')' without matching '('"}
	default:
		return d.atom()
	}
}

func (d *decoder) list() (Value, error) {
	openOff := d.off
	d.off++ // '('

	items := []Value{}
	for {
		d.skipSpace()
		if d.eof() {
			return Value{}, &DecodeError{Offset: openOff, Code: diag.DecUnbalancedList, Reason: "'(' is never closed"}
		}
		if d.peek() == ')' {
			d.off++
			return Value{Kind: KindList, Items: items}, nil
		}

		item, err := d.value()
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

// atom читает один токен до пробела или скобки и классифицирует его.
func (d *decoder) atom() (Value, error) {
	start := d.off
	for !d.eof() {
		b := d.src[d.off]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '(' || b == ')' {
			break
		}
		d.off++
	}
	tok := d.src[start:d.off]

	// строковый атом — sentinel-префикс
	if tok[0] == 0x00 {
		if !strings.HasPrefix(tok, Sentinel) {
			return Value{}, &DecodeError{Offset: start, Code: diag.DecUnknownSentinel, Reason: "control byte with unknown marker"}
		}
		raw := tok[len(Sentinel):]
		decoded, err := url.QueryUnescape(raw)
		if err != nil {
			return Value{}, &DecodeError{Offset: start, Code: diag.DecBadStringEncoding, Reason: err.Error()}
		}
		return String(decoded), nil
	}

	switch tok {
	case "null":
		return Null(), nil
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	}

	if n, err := strconv.ParseFloat(tok, 64); err == nil {
		return Number(n), nil
	}

	return Symbol(tok), nil
}
