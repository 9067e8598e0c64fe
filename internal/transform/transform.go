// Package transform lowers the surface AST into the S-expression model.
//
// The lowering is total on well-formed trees: every node kind the parser
// can produce has exactly one output form. Malformed node references
// (a symptom of an arena bug, never of bad user input) are reported as
// internal diagnostics and lower to null.
package transform

import (
	"strconv"

	"minijs/internal/ast"
	"minijs/internal/diag"
	"minijs/internal/sexpr"
	"minijs/internal/source"
)

// Options configures a lowering run.
type Options struct {
	Reporter diag.Reporter
}

// Result carries the lowered value together with the success flag.
// Ok=false означает нарушение внутреннего инварианта, не ошибку в исходнике.
type Result struct {
	Value sexpr.Value
	Ok    bool
}

// Transform lowers the expression tree rooted at root.
func Transform(builder *ast.Builder, root ast.ExprID, opts Options) Result {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	t := &transformer{builder: builder, opts: opts, ok: true}
	v := t.expr(root)
	return Result{Value: v, Ok: t.ok}
}

type transformer struct {
	builder *ast.Builder
	opts    Options
	ok      bool
}

// internalErr reports a broken tree invariant and yields the null atom
// so the walk can keep going.
func (t *transformer) internalErr(span source.Span, msg string) sexpr.Value {
	t.ok = false
	t.opts.Reporter.Report(diag.TransformInternal, diag.SevError, span, msg, nil)
	return sexpr.Null()
}

func (t *transformer) name(id source.StringID) string {
	return t.builder.StringsInterner.MustLookup(id)
}

func (t *transformer) expr(id ast.ExprID) sexpr.Value {
	node := t.builder.Exprs.Get(id)
	if node == nil {
		return t.internalErr(source.Span{}, "dangling expression reference")
	}

	switch node.Kind {
	case ast.ExprIdent:
		data, okData := t.builder.Exprs.Ident(id)
		if !okData {
			return t.internalErr(node.Span, "identifier payload missing")
		}
		return sexpr.Symbol(t.name(data.Name))

	case ast.ExprLit:
		return t.literal(id, node.Span)

	case ast.ExprUnary:
		data, okData := t.builder.Exprs.Unary(id)
		if !okData {
			return t.internalErr(node.Span, "unary payload missing")
		}
		operand := t.expr(data.Operand)
		switch data.Op {
		case ast.ExprUnaryNeg:
			// унарный минус — вычитание из нуля
			return sexpr.List(sexpr.Symbol("-"), sexpr.Number(0), operand)
		case ast.ExprUnaryNot:
			return sexpr.List(sexpr.Symbol("not"), operand)
		}
		return t.internalErr(node.Span, "unknown unary operator")

	case ast.ExprBinary:
		data, okData := t.builder.Exprs.Binary(id)
		if !okData {
			return t.internalErr(node.Span, "binary payload missing")
		}
		sym, known := binaryOpSymbol(data.Op)
		if !known {
			return t.internalErr(node.Span, "unknown binary operator")
		}
		return sexpr.List(sexpr.Symbol(sym), t.expr(data.Left), t.expr(data.Right))

	case ast.ExprTernary:
		data, okData := t.builder.Exprs.Ternary(id)
		if !okData {
			return t.internalErr(node.Span, "ternary payload missing")
		}
		return sexpr.List(
			sexpr.Symbol("if"),
			t.expr(data.Cond),
			t.expr(data.TrueExpr),
			t.expr(data.FalseExpr),
		)

	case ast.ExprArray:
		data, okData := t.builder.Exprs.Array(id)
		if !okData {
			return t.internalErr(node.Span, "array payload missing")
		}
		items := make([]sexpr.Value, 0, len(data.Elements)+1)
		items = append(items, sexpr.Symbol("list"))
		for _, el := range data.Elements {
			items = append(items, t.expr(el))
		}
		return sexpr.Value{Kind: sexpr.KindList, Items: items}

	case ast.ExprObject:
		data, okData := t.builder.Exprs.Object(id)
		if !okData {
			return t.internalErr(node.Span, "object payload missing")
		}
		return t.object(data, node.Span)

	case ast.ExprArrow:
		data, okData := t.builder.Exprs.Arrow(id)
		if !okData {
			return t.internalErr(node.Span, "arrow payload missing")
		}
		return sexpr.List(sexpr.Symbol("lambda"), t.paramList(data.Params), t.expr(data.Body))

	case ast.ExprCall:
		data, okData := t.builder.Exprs.Call(id)
		if !okData {
			return t.internalErr(node.Span, "call payload missing")
		}
		items := make([]sexpr.Value, 0, len(data.Args)+1)
		items = append(items, t.expr(data.Callee))
		for _, arg := range data.Args {
			items = append(items, t.expr(arg))
		}
		return sexpr.Value{Kind: sexpr.KindList, Items: items}

	case ast.ExprMember:
		data, okData := t.builder.Exprs.Member(id)
		if !okData {
			return t.internalErr(node.Span, "member payload missing")
		}
		// имя поля — строковый атом, без quote-обёртки
		return sexpr.List(sexpr.Symbol("get"), t.expr(data.Target), sexpr.String(t.name(data.Field)))

	case ast.ExprIndex:
		data, okData := t.builder.Exprs.Index(id)
		if !okData {
			return t.internalErr(node.Span, "index payload missing")
		}
		return sexpr.List(sexpr.Symbol("get"), t.expr(data.Target), t.expr(data.Index))

	case ast.ExprBlock:
		data, okData := t.builder.Exprs.Block(id)
		if !okData {
			return t.internalErr(node.Span, "block payload missing")
		}
		return t.block(data)
	}

	return t.internalErr(node.Span, "unknown expression kind "+node.Kind.String())
}

func (t *transformer) literal(id ast.ExprID, span source.Span) sexpr.Value {
	data, okData := t.builder.Exprs.Literal(id)
	if !okData {
		return t.internalErr(span, "literal payload missing")
	}
	text := t.name(data.Value)

	switch data.Kind {
	case ast.LitNumber:
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			// лексер уже провалидировал запись, сюда попадать не должны
			return t.internalErr(span, "unparseable number literal "+strconv.Quote(text))
		}
		return sexpr.Number(n)
	case ast.LitString:
		// Строковый литерал в позиции выражения обязан быть закавычен,
		// иначе интерпретатор принял бы его за данные без охраны.
		return sexpr.List(sexpr.Symbol("quote"), sexpr.String(text))
	case ast.LitBool:
		return sexpr.Boolean(text == "true")
	case ast.LitNull:
		return sexpr.Null()
	}
	return t.internalErr(span, "unknown literal kind")
}

func (t *transformer) paramList(params []source.StringID) sexpr.Value {
	items := make([]sexpr.Value, 0, len(params))
	for _, p := range params {
		items = append(items, sexpr.Symbol(t.name(p)))
	}
	return sexpr.Value{Kind: sexpr.KindList, Items: items}
}

func (t *transformer) stmt(id ast.StmtID) sexpr.Value {
	node := t.builder.Stmts.Get(id)
	if node == nil {
		return t.internalErr(source.Span{}, "dangling statement reference")
	}

	switch node.Kind {
	case ast.StmtAssign:
		data, okData := t.builder.Stmts.Assign(id)
		if !okData {
			return t.internalErr(node.Span, "assignment payload missing")
		}
		return sexpr.List(sexpr.Symbol("define"), sexpr.Symbol(t.name(data.Name)), t.expr(data.Value))
	case ast.StmtExpr:
		data, okData := t.builder.Stmts.Expr(id)
		if !okData {
			return t.internalErr(node.Span, "expression statement payload missing")
		}
		return t.expr(data.Expr)
	}
	return t.internalErr(node.Span, "unknown statement kind")
}

// block lowers the statement list of `{ ... }`: empty bodies collapse to
// null, single statements stay bare, longer ones get a progn wrapper.
func (t *transformer) block(data *ast.ExprBlockData) sexpr.Value {
	switch len(data.Stmts) {
	case 0:
		return sexpr.Null()
	case 1:
		return t.stmt(data.Stmts[0])
	}
	items := make([]sexpr.Value, 0, len(data.Stmts)+1)
	items = append(items, sexpr.Symbol("progn"))
	for _, s := range data.Stmts {
		items = append(items, t.stmt(s))
	}
	return sexpr.Value{Kind: sexpr.KindList, Items: items}
}

func (t *transformer) object(data *ast.ExprObjectData, span source.Span) sexpr.Value {
	forms := make([]sexpr.Value, 0, len(data.Props))
	for _, pid := range data.Props {
		prop := t.builder.Props.Get(pid)
		if prop == nil {
			forms = append(forms, t.internalErr(span, "dangling property reference"))
			continue
		}
		forms = append(forms, t.prop(prop))
	}

	switch len(forms) {
	case 0:
		return sexpr.Null()
	case 1:
		return forms[0]
	}
	items := make([]sexpr.Value, 0, len(forms)+1)
	items = append(items, sexpr.Symbol("progn"))
	items = append(items, forms...)
	return sexpr.Value{Kind: sexpr.KindList, Items: items}
}

func (t *transformer) prop(prop *ast.PropData) sexpr.Value {
	if prop.IsMethod {
		// метод — define с сигнатурой-списком: (define (key p1 p2) body)
		sig := make([]sexpr.Value, 0, len(prop.Params)+1)
		sig = append(sig, sexpr.Symbol(t.name(prop.Key)))
		for _, p := range prop.Params {
			sig = append(sig, sexpr.Symbol(t.name(p)))
		}
		return sexpr.List(
			sexpr.Symbol("define"),
			sexpr.Value{Kind: sexpr.KindList, Items: sig},
			t.expr(prop.Value),
		)
	}
	return sexpr.List(sexpr.Symbol("define"), sexpr.Symbol(t.name(prop.Key)), t.expr(prop.Value))
}

func binaryOpSymbol(op ast.ExprBinaryOp) (string, bool) {
	switch op {
	case ast.ExprBinaryAdd:
		return "+", true
	case ast.ExprBinarySub:
		return "-", true
	case ast.ExprBinaryMul:
		return "*", true
	case ast.ExprBinaryDiv:
		return "/", true
	case ast.ExprBinaryMod:
		return "%", true
	case ast.ExprBinaryEq:
		return "=", true
	case ast.ExprBinaryNotEq:
		return "!=", true
	case ast.ExprBinaryLess:
		return "<", true
	case ast.ExprBinaryLessEq:
		return "<=", true
	case ast.ExprBinaryGreater:
		return ">", true
	case ast.ExprBinaryGreaterEq:
		return ">=", true
	case ast.ExprBinaryLogicalAnd:
		return "and", true
	case ast.ExprBinaryLogicalOr:
		return "or", true
	}
	return "", false
}
