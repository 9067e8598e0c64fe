package ast

import (
	"minijs/internal/source"
)

// ExprIdentData carries the payload of an ExprIdent node.
type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData carries the payload of an ExprLit node.
// Value хранит раскодированный текст: для чисел — исходную запись,
// для строк — содержимое без кавычек и escape-ов, для bool — true/false.
type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID
}

// ExprUnaryData carries the payload of an ExprUnary node.
type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprBinaryData carries the payload of an ExprBinary node.
type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

// ExprTernaryData carries the payload of an ExprTernary node.
type ExprTernaryData struct {
	Cond      ExprID
	TrueExpr  ExprID
	FalseExpr ExprID
}

// ExprArrayData carries the payload of an ExprArray node.
type ExprArrayData struct {
	Elements []ExprID
}

// ExprObjectData carries the payload of an ExprObject node.
type ExprObjectData struct {
	Props []PropID
}

// ExprArrowData carries the payload of an ExprArrow node.
// Body — либо обычное выражение, либо ExprBlock.
type ExprArrowData struct {
	Params []source.StringID
	Body   ExprID
}

// ExprCallData carries the payload of an ExprCall node.
type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

// ExprMemberData carries the payload of an ExprMember node (obj.field).
type ExprMemberData struct {
	Target ExprID
	Field  source.StringID
}

// ExprIndexData carries the payload of an ExprIndex node (obj[expr]).
type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

// ExprBlockData carries the payload of an ExprBlock node.
type ExprBlockData struct {
	Stmts []StmtID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena     *Arena[Expr]
	Idents    *Arena[ExprIdentData]
	Literals  *Arena[ExprLiteralData]
	Unaries   *Arena[ExprUnaryData]
	Binaries  *Arena[ExprBinaryData]
	Ternaries *Arena[ExprTernaryData]
	Arrays    *Arena[ExprArrayData]
	Objects   *Arena[ExprObjectData]
	Arrows    *Arena[ExprArrowData]
	Calls     *Arena[ExprCallData]
	Members   *Arena[ExprMemberData]
	Indices   *Arena[ExprIndexData]
	Blocks    *Arena[ExprBlockData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint
// as the initial capacity.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Idents:    NewArena[ExprIdentData](capHint),
		Literals:  NewArena[ExprLiteralData](capHint),
		Unaries:   NewArena[ExprUnaryData](capHint),
		Binaries:  NewArena[ExprBinaryData](capHint),
		Ternaries: NewArena[ExprTernaryData](capHint),
		Arrays:    NewArena[ExprArrayData](capHint),
		Objects:   NewArena[ExprObjectData](capHint),
		Arrows:    NewArena[ExprArrowData](capHint),
		Calls:     NewArena[ExprCallData](capHint),
		Members:   NewArena[ExprMemberData](capHint),
		Indices:   NewArena[ExprIndexData](capHint),
		Blocks:    NewArena[ExprBlockData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewUnary creates a new unary expression.
func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewTernary creates a new conditional expression.
func (e *Exprs) NewTernary(span source.Span, cond, trueExpr, falseExpr ExprID) ExprID {
	payload := e.Ternaries.Allocate(ExprTernaryData{
		Cond:      cond,
		TrueExpr:  trueExpr,
		FalseExpr: falseExpr,
	})
	return e.new(ExprTernary, span, PayloadID(payload))
}

// Ternary returns the ternary data for the given expression ID.
func (e *Exprs) Ternary(id ExprID) (*ExprTernaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTernary {
		return nil, false
	}
	return e.Ternaries.Get(uint32(expr.Payload)), true
}

// NewArray creates a new array literal expression.
func (e *Exprs) NewArray(span source.Span, elements []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elements: elements})
	return e.new(ExprArray, span, PayloadID(payload))
}

// Array returns the array data for the given expression ID.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewObject creates a new object literal expression.
func (e *Exprs) NewObject(span source.Span, props []PropID) ExprID {
	payload := e.Objects.Allocate(ExprObjectData{Props: props})
	return e.new(ExprObject, span, PayloadID(payload))
}

// Object returns the object data for the given expression ID.
func (e *Exprs) Object(id ExprID) (*ExprObjectData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprObject {
		return nil, false
	}
	return e.Objects.Get(uint32(expr.Payload)), true
}

// NewArrow creates a new arrow function expression.
func (e *Exprs) NewArrow(span source.Span, params []source.StringID, body ExprID) ExprID {
	payload := e.Arrows.Allocate(ExprArrowData{Params: params, Body: body})
	return e.new(ExprArrow, span, PayloadID(payload))
}

// Arrow returns the arrow data for the given expression ID.
func (e *Exprs) Arrow(id ExprID) (*ExprArrowData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArrow {
		return nil, false
	}
	return e.Arrows.Get(uint32(expr.Payload)), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewMember creates a new dot member access expression.
func (e *Exprs) NewMember(span source.Span, target ExprID, field source.StringID) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Target: target, Field: field})
	return e.new(ExprMember, span, PayloadID(payload))
}

// Member returns the member data for the given expression ID.
func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

// NewIndex creates a new computed member access expression.
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the index data for the given expression ID.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

// NewBlock creates a new block expression.
func (e *Exprs) NewBlock(span source.Span, stmts []StmtID) ExprID {
	payload := e.Blocks.Allocate(ExprBlockData{Stmts: stmts})
	return e.new(ExprBlock, span, PayloadID(payload))
}

// Block returns the block data for the given expression ID.
func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.Get(uint32(expr.Payload)), true
}
