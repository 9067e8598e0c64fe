package sexpr

import (
	"strconv"
	"strings"
)

// Kind enumerates the variants of an S-expression value.
type Kind uint8

const (
	// KindNull represents the null atom.
	KindNull Kind = iota
	// KindNumber represents a numeric atom.
	KindNumber
	// KindBool represents a boolean atom.
	KindBool
	// KindString represents a string atom (literal text).
	KindString
	// KindSymbol represents a symbol atom (variable/function reference).
	KindSymbol
	// KindList represents an ordered list of values.
	KindList
)

var kindNames = [...]string{
	KindNull:   "Null",
	KindNumber: "Number",
	KindBool:   "Bool",
	KindString: "String",
	KindSymbol: "Symbol",
	KindList:   "List",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Value is one node of an S-expression tree.
// Строка и символ оба несут текст; Kind — единственное, что их различает,
// и это различие обязано переживать сериализацию.
type Value struct {
	Kind  Kind
	Num   float64
	Bool  bool
	Text  string  // String and Symbol payload
	Items []Value // List payload
}

// Null returns the null atom.
func Null() Value {
	return Value{Kind: KindNull}
}

// Number returns a numeric atom.
func Number(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// Boolean returns a boolean atom.
func Boolean(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// String returns a string atom.
func String(s string) Value {
	return Value{Kind: KindString, Text: s}
}

// Symbol returns a symbol atom.
func Symbol(name string) Value {
	return Value{Kind: KindSymbol, Text: name}
}

// List returns a list of the given values.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindList, Items: items}
}

// IsAtom reports whether the value is not a list.
func (v Value) IsAtom() bool {
	return v.Kind != KindList
}

// Equal reports deep structural equality.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindNumber:
		return a.Num == b.Num
	case KindBool:
		return a.Bool == b.Bool
	case KindString, KindSymbol:
		return a.Text == b.Text
	case KindList:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value in a human-readable debug form. Строковые атомы
// показываются в кавычках, чтобы отличаться от символов; это НЕ wire-формат
// (см. Serialize).
func (v Value) String() string {
	var sb strings.Builder
	v.debugString(&sb)
	return sb.String()
}

func (v Value) debugString(sb *strings.Builder) {
	switch v.Kind {
	case KindNull:
		sb.WriteString("null")
	case KindNumber:
		sb.WriteString(strconv.FormatFloat(v.Num, 'g', -1, 64))
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case KindString:
		sb.WriteString(strconv.Quote(v.Text))
	case KindSymbol:
		sb.WriteString(v.Text)
	case KindList:
		sb.WriteByte('(')
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			item.debugString(sb)
		}
		sb.WriteByte(')')
	}
}
