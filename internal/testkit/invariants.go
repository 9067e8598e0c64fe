package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"minijs/internal/ast"
	"minijs/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed program:
// 1) every expression span is non-empty and within file content bounds
// 2) every child span is fully contained in its parent span
// 3) statement spans are contained in their block span
func CheckSpanInvariants(b *ast.Builder, root ast.ExprID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	if !root.IsValid() {
		return fmt.Errorf("invalid root expression")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	c := spanChecker{b: b, file: sf.ID, limit: lenContent}
	return c.expr(root)
}

type spanChecker struct {
	b     *ast.Builder
	file  source.FileID
	limit uint32
}

func (c *spanChecker) check(sp source.Span, what string) error {
	if sp.End <= sp.Start {
		return fmt.Errorf("empty %s span: %v", what, sp)
	}
	if sp.File != c.file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, c.file)
	}
	if sp.End > c.limit {
		return fmt.Errorf("%s span end beyond content: %d > %d", what, sp.End, c.limit)
	}
	return nil
}

func (c *spanChecker) contained(child, parent source.Span, what string) error {
	if child.Start < parent.Start || child.End > parent.End {
		return fmt.Errorf("%s span %v is outside parent span %v", what, child, parent)
	}
	return nil
}

func (c *spanChecker) child(id ast.ExprID, parent source.Span, what string) error {
	node := c.b.Exprs.Get(id)
	if node == nil {
		return fmt.Errorf("nil expression for %s", what)
	}
	if err := c.contained(node.Span, parent, what); err != nil {
		return err
	}
	return c.expr(id)
}

func (c *spanChecker) expr(id ast.ExprID) error {
	node := c.b.Exprs.Get(id)
	if node == nil {
		return fmt.Errorf("nil expression for id=%d", id)
	}
	sp := node.Span
	if err := c.check(sp, node.Kind.String()); err != nil {
		return err
	}

	switch node.Kind {
	case ast.ExprIdent, ast.ExprLit:
		return nil
	case ast.ExprUnary:
		data, ok := c.b.Exprs.Unary(id)
		if !ok {
			return fmt.Errorf("unary payload missing")
		}
		return c.child(data.Operand, sp, "unary operand")
	case ast.ExprBinary:
		data, ok := c.b.Exprs.Binary(id)
		if !ok {
			return fmt.Errorf("binary payload missing")
		}
		if err := c.child(data.Left, sp, "binary left"); err != nil {
			return err
		}
		return c.child(data.Right, sp, "binary right")
	case ast.ExprTernary:
		data, ok := c.b.Exprs.Ternary(id)
		if !ok {
			return fmt.Errorf("ternary payload missing")
		}
		for _, part := range []ast.ExprID{data.Cond, data.TrueExpr, data.FalseExpr} {
			if err := c.child(part, sp, "ternary arm"); err != nil {
				return err
			}
		}
		return nil
	case ast.ExprArray:
		data, ok := c.b.Exprs.Array(id)
		if !ok {
			return fmt.Errorf("array payload missing")
		}
		for _, el := range data.Elements {
			if err := c.child(el, sp, "array element"); err != nil {
				return err
			}
		}
		return nil
	case ast.ExprObject:
		data, ok := c.b.Exprs.Object(id)
		if !ok {
			return fmt.Errorf("object payload missing")
		}
		for _, pid := range data.Props {
			prop := c.b.Props.Get(pid)
			if prop == nil {
				return fmt.Errorf("nil property for id=%d", pid)
			}
			if err := c.check(prop.Span, "property"); err != nil {
				return err
			}
			if err := c.contained(prop.Span, sp, "property"); err != nil {
				return err
			}
			if err := c.child(prop.Value, prop.Span, "property value"); err != nil {
				return err
			}
		}
		return nil
	case ast.ExprArrow:
		data, ok := c.b.Exprs.Arrow(id)
		if !ok {
			return fmt.Errorf("arrow payload missing")
		}
		return c.child(data.Body, sp, "arrow body")
	case ast.ExprCall:
		data, ok := c.b.Exprs.Call(id)
		if !ok {
			return fmt.Errorf("call payload missing")
		}
		if err := c.child(data.Callee, sp, "callee"); err != nil {
			return err
		}
		for _, arg := range data.Args {
			if err := c.child(arg, sp, "call argument"); err != nil {
				return err
			}
		}
		return nil
	case ast.ExprMember:
		data, ok := c.b.Exprs.Member(id)
		if !ok {
			return fmt.Errorf("member payload missing")
		}
		return c.child(data.Target, sp, "member target")
	case ast.ExprIndex:
		data, ok := c.b.Exprs.Index(id)
		if !ok {
			return fmt.Errorf("index payload missing")
		}
		if err := c.child(data.Target, sp, "index target"); err != nil {
			return err
		}
		return c.child(data.Index, sp, "index expression")
	case ast.ExprBlock:
		data, ok := c.b.Exprs.Block(id)
		if !ok {
			return fmt.Errorf("block payload missing")
		}
		for _, sid := range data.Stmts {
			if err := c.stmt(sid, sp); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown expression kind %v", node.Kind)
}

func (c *spanChecker) stmt(id ast.StmtID, parent source.Span) error {
	node := c.b.Stmts.Get(id)
	if node == nil {
		return fmt.Errorf("nil statement for id=%d", id)
	}
	if err := c.check(node.Span, "statement"); err != nil {
		return err
	}
	if err := c.contained(node.Span, parent, "statement"); err != nil {
		return err
	}

	switch node.Kind {
	case ast.StmtAssign:
		data, ok := c.b.Stmts.Assign(id)
		if !ok {
			return fmt.Errorf("assignment payload missing")
		}
		return c.child(data.Value, node.Span, "assignment value")
	case ast.StmtExpr:
		data, ok := c.b.Stmts.Expr(id)
		if !ok {
			return fmt.Errorf("expression statement payload missing")
		}
		return c.child(data.Expr, node.Span, "statement expression")
	}
	return fmt.Errorf("unknown statement kind %v", node.Kind)
}
