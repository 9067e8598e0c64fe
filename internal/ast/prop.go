package ast

import (
	"minijs/internal/source"
)

// PropData describes one object-literal entry.
// IsMethod=true: `key(params) { body }`, Value — ExprBlock.
// IsMethod=false: `key: expr`.
type PropData struct {
	Key      source.StringID
	Span     source.Span
	IsMethod bool
	Params   []source.StringID
	Value    ExprID
}

// Props manages allocation of object-literal entries.
type Props struct {
	Arena *Arena[PropData]
}

func NewProps(capHint uint) *Props {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Props{
		Arena: NewArena[PropData](capHint),
	}
}

// NewMethod creates a method entry.
func (p *Props) NewMethod(span source.Span, key source.StringID, params []source.StringID, body ExprID) PropID {
	return PropID(p.Arena.Allocate(PropData{
		Key:      key,
		Span:     span,
		IsMethod: true,
		Params:   params,
		Value:    body,
	}))
}

// NewValue creates a plain `key: expr` entry.
func (p *Props) NewValue(span source.Span, key source.StringID, value ExprID) PropID {
	return PropID(p.Arena.Allocate(PropData{
		Key:      key,
		Span:     span,
		IsMethod: false,
		Value:    value,
	}))
}

// Get returns the entry with the given ID.
func (p *Props) Get(id PropID) *PropData {
	return p.Arena.Get(uint32(id))
}
