/*
File    : apscript/ast/expr.go
Package : ast
*/

// Package ast defines the tagged-variant expression and statement nodes
// produced by the parser. Every node carries a lexer.Span so diagnostics
// and runtime exceptions can be anchored back to the original source text;
// nodes never hold a copy of the source themselves.
package ast

import "github.com/apscript-lang/apscript/lexer"

// Expr is any expression node. Each concrete variant below also exposes
// its span through the embedded Span field, read via NodeSpan.
type Expr interface {
	exprNode()
	NodeSpan() lexer.Span
}

// UnaryOpKind enumerates the prefix operators.
type UnaryOpKind int

const (
	Pos UnaryOpKind = iota
	Neg
	Not
)

// BinaryOpKind enumerates the infix operators.
type BinaryOpKind int

const (
	Add BinaryOpKind = iota
	Sub
	Mul
	Div
	Mod
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	And
	Or
)

type True struct{ Span lexer.Span }
type False struct{ Span lexer.Span }

// Identifier names a variable or procedure looked up in the environment
// chain at evaluation time.
type Identifier struct{ Span lexer.Span }

// StringLiteral's Span covers the surrounding quotes; the evaluator slices
// out the raw body when producing a Value, and lexer.RenderString is only
// applied when that Value is displayed.
type StringLiteral struct{ Span lexer.Span }

type IntegerLiteral struct{ Span lexer.Span }
type FloatLiteral struct{ Span lexer.Span }

// HexLiteral and BinaryLiteral are recognized by the lexer and the parser
// so that `0xFF`/`0b101`-shaped source doesn't fail to parse, but neither
// has a runtime value: evaluating one raises an Exception instead of
// producing a Number.
type HexLiteral struct{ Span lexer.Span }
type BinaryLiteral struct{ Span lexer.Span }

// ArrayLiteral is `[ e0, e1, ... ]`. A trailing comma is permitted by the
// grammar but not reflected here — it does not produce an extra element.
type ArrayLiteral struct {
	Span   lexer.Span
	Values []Expr
}

// Index is `Value[Index]`, 1-based at the language level.
type Index struct {
	Span  lexer.Span
	Value Expr
	Idx   Expr
}

// FnCall is `Callee(Args...)`.
type FnCall struct {
	Span   lexer.Span
	Callee Expr
	Args   []Expr
}

type UnaryOp struct {
	Span  lexer.Span
	Kind  UnaryOpKind
	Value Expr
}

type BinaryOp struct {
	Span lexer.Span
	Kind BinaryOpKind
	Lhs  Expr
	Rhs  Expr
}

// Paren is a parenthesized expression. It is kept as its own node (rather
// than collapsed away during parsing) so its span covers the parentheses
// for error reporting.
type Paren struct {
	Span  lexer.Span
	Value Expr
}

func (*True) exprNode()           {}
func (*False) exprNode()          {}
func (*Identifier) exprNode()     {}
func (*StringLiteral) exprNode()  {}
func (*IntegerLiteral) exprNode() {}
func (*FloatLiteral) exprNode()   {}
func (*HexLiteral) exprNode()     {}
func (*BinaryLiteral) exprNode()  {}
func (*ArrayLiteral) exprNode()   {}
func (*Index) exprNode()          {}
func (*FnCall) exprNode()         {}
func (*UnaryOp) exprNode()        {}
func (*BinaryOp) exprNode()       {}
func (*Paren) exprNode()          {}

func (e *True) NodeSpan() lexer.Span           { return e.Span }
func (e *False) NodeSpan() lexer.Span          { return e.Span }
func (e *Identifier) NodeSpan() lexer.Span     { return e.Span }
func (e *StringLiteral) NodeSpan() lexer.Span  { return e.Span }
func (e *IntegerLiteral) NodeSpan() lexer.Span { return e.Span }
func (e *FloatLiteral) NodeSpan() lexer.Span   { return e.Span }
func (e *HexLiteral) NodeSpan() lexer.Span     { return e.Span }
func (e *BinaryLiteral) NodeSpan() lexer.Span  { return e.Span }
func (e *ArrayLiteral) NodeSpan() lexer.Span   { return e.Span }
func (e *Index) NodeSpan() lexer.Span          { return e.Span }
func (e *FnCall) NodeSpan() lexer.Span         { return e.Span }
func (e *UnaryOp) NodeSpan() lexer.Span        { return e.Span }
func (e *BinaryOp) NodeSpan() lexer.Span       { return e.Span }
func (e *Paren) NodeSpan() lexer.Span          { return e.Span }
