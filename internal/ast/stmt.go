package ast

import (
	"minijs/internal/source"
)

// StmtKind enumerates statement kinds inside block bodies.
type StmtKind uint8

const (
	// StmtAssign represents `name = expr` (локальное define-связывание).
	StmtAssign StmtKind = iota
	// StmtExpr represents a bare expression statement.
	StmtExpr
)

func (k StmtKind) String() string {
	switch k {
	case StmtAssign:
		return "Assign"
	case StmtExpr:
		return "Expr"
	}
	return "Unknown"
}

// Stmt represents a statement node in the AST.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtAssignData carries the payload of a StmtAssign node.
type StmtAssignData struct {
	Name  source.StringID
	Value ExprID
}

// StmtExprData carries the payload of a StmtExpr node.
type StmtExprData struct {
	Expr ExprID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Arena[Stmt]
	Assigns *Arena[StmtAssignData]
	Exprs   *Arena[StmtExprData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Assigns: NewArena[StmtAssignData](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewAssign creates a new assignment statement.
func (s *Stmts) NewAssign(span source.Span, name source.StringID, value ExprID) StmtID {
	payload := s.Assigns.Allocate(StmtAssignData{Name: name, Value: value})
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given statement ID.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

// NewExpr creates a new bare expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression data for the given statement ID.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}
