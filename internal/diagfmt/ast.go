package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"minijs/internal/ast"
	"minijs/internal/source"
)

// FormatASTPretty выводит дерево выражений с отступами.
// Каждая строка: <Kind> (span: line:col-line:col) <детали>.
func FormatASTPretty(w io.Writer, builder *ast.Builder, root ast.ExprID, fs *source.FileSet) error {
	if !root.IsValid() {
		_, err := fmt.Fprintln(w, "<empty program>")
		return err
	}
	p := astPrinter{w: w, b: builder, fs: fs}
	return p.expr(root, 0)
}

type astPrinter struct {
	w  io.Writer
	b  *ast.Builder
	fs *source.FileSet
}

func (p *astPrinter) line(depth int, format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *astPrinter) name(id source.StringID) string {
	return p.b.StringsInterner.MustLookup(id)
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return span.String()
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func (p *astPrinter) expr(id ast.ExprID, depth int) error {
	node := p.b.Exprs.Get(id)
	if node == nil {
		p.line(depth, "<nil expr %d>", id)
		return nil
	}
	loc := formatSpan(node.Span, p.fs)

	switch node.Kind {
	case ast.ExprIdent:
		data, _ := p.b.Exprs.Ident(id)
		p.line(depth, "Ident %q (span: %s)", p.name(data.Name), loc)
	case ast.ExprLit:
		data, _ := p.b.Exprs.Literal(id)
		p.line(depth, "Lit %s %q (span: %s)", litKindName(data.Kind), p.name(data.Value), loc)
	case ast.ExprUnary:
		data, _ := p.b.Exprs.Unary(id)
		p.line(depth, "Unary %s (span: %s)", unaryOpName(data.Op), loc)
		return p.expr(data.Operand, depth+1)
	case ast.ExprBinary:
		data, _ := p.b.Exprs.Binary(id)
		p.line(depth, "Binary %s (span: %s)", binaryOpName(data.Op), loc)
		if err := p.expr(data.Left, depth+1); err != nil {
			return err
		}
		return p.expr(data.Right, depth+1)
	case ast.ExprTernary:
		data, _ := p.b.Exprs.Ternary(id)
		p.line(depth, "Ternary (span: %s)", loc)
		for _, part := range []ast.ExprID{data.Cond, data.TrueExpr, data.FalseExpr} {
			if err := p.expr(part, depth+1); err != nil {
				return err
			}
		}
	case ast.ExprArray:
		data, _ := p.b.Exprs.Array(id)
		p.line(depth, "Array[%d] (span: %s)", len(data.Elements), loc)
		for _, el := range data.Elements {
			if err := p.expr(el, depth+1); err != nil {
				return err
			}
		}
	case ast.ExprObject:
		data, _ := p.b.Exprs.Object(id)
		p.line(depth, "Object[%d] (span: %s)", len(data.Props), loc)
		for _, pid := range data.Props {
			prop := p.b.Props.Get(pid)
			if prop == nil {
				p.line(depth+1, "<nil prop %d>", pid)
				continue
			}
			if prop.IsMethod {
				p.line(depth+1, "Method %q(%s) (span: %s)", p.name(prop.Key), p.paramNames(prop.Params), formatSpan(prop.Span, p.fs))
			} else {
				p.line(depth+1, "Prop %q (span: %s)", p.name(prop.Key), formatSpan(prop.Span, p.fs))
			}
			if err := p.expr(prop.Value, depth+2); err != nil {
				return err
			}
		}
	case ast.ExprArrow:
		data, _ := p.b.Exprs.Arrow(id)
		p.line(depth, "Arrow(%s) (span: %s)", p.paramNames(data.Params), loc)
		return p.expr(data.Body, depth+1)
	case ast.ExprCall:
		data, _ := p.b.Exprs.Call(id)
		p.line(depth, "Call[%d args] (span: %s)", len(data.Args), loc)
		if err := p.expr(data.Callee, depth+1); err != nil {
			return err
		}
		for _, arg := range data.Args {
			if err := p.expr(arg, depth+1); err != nil {
				return err
			}
		}
	case ast.ExprMember:
		data, _ := p.b.Exprs.Member(id)
		p.line(depth, "Member .%s (span: %s)", p.name(data.Field), loc)
		return p.expr(data.Target, depth+1)
	case ast.ExprIndex:
		data, _ := p.b.Exprs.Index(id)
		p.line(depth, "Index (span: %s)", loc)
		if err := p.expr(data.Target, depth+1); err != nil {
			return err
		}
		return p.expr(data.Index, depth+1)
	case ast.ExprBlock:
		data, _ := p.b.Exprs.Block(id)
		p.line(depth, "Block[%d] (span: %s)", len(data.Stmts), loc)
		for _, sid := range data.Stmts {
			if err := p.stmt(sid, depth+1); err != nil {
				return err
			}
		}
	default:
		p.line(depth, "%s (span: %s)", node.Kind.String(), loc)
	}
	return nil
}

func (p *astPrinter) stmt(id ast.StmtID, depth int) error {
	node := p.b.Stmts.Get(id)
	if node == nil {
		p.line(depth, "<nil stmt %d>", id)
		return nil
	}
	loc := formatSpan(node.Span, p.fs)

	switch node.Kind {
	case ast.StmtAssign:
		data, _ := p.b.Stmts.Assign(id)
		p.line(depth, "Assign %q (span: %s)", p.name(data.Name), loc)
		return p.expr(data.Value, depth+1)
	case ast.StmtExpr:
		data, _ := p.b.Stmts.Expr(id)
		p.line(depth, "ExprStmt (span: %s)", loc)
		return p.expr(data.Expr, depth+1)
	}
	p.line(depth, "%s (span: %s)", node.Kind.String(), loc)
	return nil
}

func (p *astPrinter) paramNames(params []source.StringID) string {
	names := make([]string, 0, len(params))
	for _, id := range params {
		names = append(names, p.name(id))
	}
	return strings.Join(names, ", ")
}

func litKindName(k ast.ExprLitKind) string {
	switch k {
	case ast.LitNumber:
		return "Number"
	case ast.LitString:
		return "String"
	case ast.LitBool:
		return "Bool"
	case ast.LitNull:
		return "Null"
	}
	return "Unknown"
}

func unaryOpName(op ast.ExprUnaryOp) string {
	switch op {
	case ast.ExprUnaryNeg:
		return "-"
	case ast.ExprUnaryNot:
		return "!"
	}
	return "?"
}

func binaryOpName(op ast.ExprBinaryOp) string {
	switch op {
	case ast.ExprBinaryAdd:
		return "+"
	case ast.ExprBinarySub:
		return "-"
	case ast.ExprBinaryMul:
		return "*"
	case ast.ExprBinaryDiv:
		return "/"
	case ast.ExprBinaryMod:
		return "%"
	case ast.ExprBinaryEq:
		return "=="
	case ast.ExprBinaryNotEq:
		return "!="
	case ast.ExprBinaryLess:
		return "<"
	case ast.ExprBinaryLessEq:
		return "<="
	case ast.ExprBinaryGreater:
		return ">"
	case ast.ExprBinaryGreaterEq:
		return ">="
	case ast.ExprBinaryLogicalAnd:
		return "&&"
	case ast.ExprBinaryLogicalOr:
		return "||"
	}
	return "?"
}

// ExprJSON — узел дерева выражений для JSON-вывода.
type ExprJSON struct {
	Kind     string      `json:"kind"`
	Span     source.Span `json:"span"`
	Name     string      `json:"name,omitempty"`
	Value    string      `json:"value,omitempty"`
	Op       string      `json:"op,omitempty"`
	Params   []string    `json:"params,omitempty"`
	Children []ExprJSON  `json:"children,omitempty"`
}

// FormatASTJSON сериализует дерево выражений в JSON.
func FormatASTJSON(w io.Writer, builder *ast.Builder, root ast.ExprID) error {
	p := astPrinter{b: builder}
	node := p.jsonExpr(root)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(node)
}

func (p *astPrinter) jsonExpr(id ast.ExprID) ExprJSON {
	node := p.b.Exprs.Get(id)
	if node == nil {
		return ExprJSON{Kind: "Invalid"}
	}
	out := ExprJSON{Kind: node.Kind.String(), Span: node.Span}

	switch node.Kind {
	case ast.ExprIdent:
		data, _ := p.b.Exprs.Ident(id)
		out.Name = p.name(data.Name)
	case ast.ExprLit:
		data, _ := p.b.Exprs.Literal(id)
		out.Name = litKindName(data.Kind)
		out.Value = p.name(data.Value)
	case ast.ExprUnary:
		data, _ := p.b.Exprs.Unary(id)
		out.Op = unaryOpName(data.Op)
		out.Children = []ExprJSON{p.jsonExpr(data.Operand)}
	case ast.ExprBinary:
		data, _ := p.b.Exprs.Binary(id)
		out.Op = binaryOpName(data.Op)
		out.Children = []ExprJSON{p.jsonExpr(data.Left), p.jsonExpr(data.Right)}
	case ast.ExprTernary:
		data, _ := p.b.Exprs.Ternary(id)
		out.Children = []ExprJSON{p.jsonExpr(data.Cond), p.jsonExpr(data.TrueExpr), p.jsonExpr(data.FalseExpr)}
	case ast.ExprArray:
		data, _ := p.b.Exprs.Array(id)
		for _, el := range data.Elements {
			out.Children = append(out.Children, p.jsonExpr(el))
		}
	case ast.ExprObject:
		data, _ := p.b.Exprs.Object(id)
		for _, pid := range data.Props {
			prop := p.b.Props.Get(pid)
			if prop == nil {
				continue
			}
			child := ExprJSON{Kind: "Prop", Span: prop.Span, Name: p.name(prop.Key)}
			if prop.IsMethod {
				child.Kind = "Method"
				for _, param := range prop.Params {
					child.Params = append(child.Params, p.name(param))
				}
			}
			child.Children = []ExprJSON{p.jsonExpr(prop.Value)}
			out.Children = append(out.Children, child)
		}
	case ast.ExprArrow:
		data, _ := p.b.Exprs.Arrow(id)
		for _, param := range data.Params {
			out.Params = append(out.Params, p.name(param))
		}
		out.Children = []ExprJSON{p.jsonExpr(data.Body)}
	case ast.ExprCall:
		data, _ := p.b.Exprs.Call(id)
		out.Children = append(out.Children, p.jsonExpr(data.Callee))
		for _, arg := range data.Args {
			out.Children = append(out.Children, p.jsonExpr(arg))
		}
	case ast.ExprMember:
		data, _ := p.b.Exprs.Member(id)
		out.Name = p.name(data.Field)
		out.Children = []ExprJSON{p.jsonExpr(data.Target)}
	case ast.ExprIndex:
		data, _ := p.b.Exprs.Index(id)
		out.Children = []ExprJSON{p.jsonExpr(data.Target), p.jsonExpr(data.Index)}
	case ast.ExprBlock:
		data, _ := p.b.Exprs.Block(id)
		for _, sid := range data.Stmts {
			out.Children = append(out.Children, p.jsonStmt(sid))
		}
	}
	return out
}

func (p *astPrinter) jsonStmt(id ast.StmtID) ExprJSON {
	node := p.b.Stmts.Get(id)
	if node == nil {
		return ExprJSON{Kind: "Invalid"}
	}
	switch node.Kind {
	case ast.StmtAssign:
		data, _ := p.b.Stmts.Assign(id)
		return ExprJSON{
			Kind:     "Assign",
			Span:     node.Span,
			Name:     p.name(data.Name),
			Children: []ExprJSON{p.jsonExpr(data.Value)},
		}
	case ast.StmtExpr:
		data, _ := p.b.Stmts.Expr(id)
		return ExprJSON{
			Kind:     "ExprStmt",
			Span:     node.Span,
			Children: []ExprJSON{p.jsonExpr(data.Expr)},
		}
	}
	return ExprJSON{Kind: "Unknown", Span: node.Span}
}
