package ast

import (
	"minijs/internal/source"
)

type Hints struct{ Exprs, Stmts, Props uint }

// Builder владеет всеми аренами одного разбора.
type Builder struct {
	Exprs *Exprs
	Stmts *Stmts
	Props *Props

	StringsInterner *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 7
	}
	if hints.Props == 0 {
		hints.Props = 1 << 6
	}
	return &Builder{
		Exprs:           NewExprs(hints.Exprs),
		Stmts:           NewStmts(hints.Stmts),
		Props:           NewProps(hints.Props),
		StringsInterner: source.NewInterner(),
	}
}
