/*
File    : apscript/ast/stmt.go
Package : ast
*/
package ast

import "github.com/apscript-lang/apscript/lexer"

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
	NodeSpan() lexer.Span
}

// Scope is a lexical block: the body of a program, a procedure, a branch,
// or a loop. It has no span of its own — callers span the braces (or, for
// the implicit top-level scope, the whole source) at the call site.
type Scope []Stmt

// ExprStmt evaluates an expression for its side effects and discards the
// result (unless it is an Exception, which propagates).
type ExprStmt struct {
	Span lexer.Span
	E    Expr
}

// VarAssign is `name <- value`.
type VarAssign struct {
	Span     lexer.Span
	NameSpan lexer.Span
	Value    Expr
}

// IndexAssign is `root[index] <- value`.
type IndexAssign struct {
	Span  lexer.Span
	Root  Expr
	Index Expr
	Value Expr
}

// ElseIf is one `ELSE IF (cond) { scope }` clause.
type ElseIf struct {
	Cond  Expr
	Scope Scope
}

// If is `IF (cond) { scope } (ElseIfs)* (Else)?`.
type If struct {
	Span     lexer.Span
	Cond     Expr
	Scope    Scope
	ElseIfs  []ElseIf
	Else     Scope
	HasElse  bool
}

// RepeatN is `REPEAT n TIMES { scope }`.
type RepeatN struct {
	Span  lexer.Span
	N     Expr
	Scope Scope
}

// RepeatUntil is `REPEAT UNTIL (cond) { scope }`: cond is checked before
// each pass and the loop exits once it is true, so the body does not run
// at all if cond is already true before the first pass.
type RepeatUntil struct {
	Span  lexer.Span
	Cond  Expr
	Scope Scope
}

// For is `FOR EACH alias IN array { scope }`.
type For struct {
	Span      lexer.Span
	AliasSpan lexer.Span
	Array     Expr
	Scope     Scope
}

// Return is `RETURN expr?`. Value is nil for a bare RETURN.
type Return struct {
	Span  lexer.Span
	Start int
	Value Expr
}

// Param is one procedure parameter name.
type Param struct {
	Span lexer.Span
}

// Procedure is `PROCEDURE name(params) { scope }`. Binding the resulting
// value happens in the evaluator, not here: this node only records the
// definition.
type Procedure struct {
	Span     lexer.Span
	NameSpan lexer.Span
	Params   []Param
	Scope    Scope
}

func (*ExprStmt) stmtNode()    {}
func (*VarAssign) stmtNode()   {}
func (*IndexAssign) stmtNode() {}
func (*If) stmtNode()          {}
func (*RepeatN) stmtNode()     {}
func (*RepeatUntil) stmtNode() {}
func (*For) stmtNode()         {}
func (*Return) stmtNode()      {}
func (*Procedure) stmtNode()   {}

func (s *ExprStmt) NodeSpan() lexer.Span    { return s.Span }
func (s *VarAssign) NodeSpan() lexer.Span   { return s.Span }
func (s *IndexAssign) NodeSpan() lexer.Span { return s.Span }
func (s *If) NodeSpan() lexer.Span          { return s.Span }
func (s *RepeatN) NodeSpan() lexer.Span     { return s.Span }
func (s *RepeatUntil) NodeSpan() lexer.Span { return s.Span }
func (s *For) NodeSpan() lexer.Span         { return s.Span }
func (s *Return) NodeSpan() lexer.Span      { return s.Span }
func (s *Procedure) NodeSpan() lexer.Span   { return s.Span }
