/*
File    : apscript/parser/stmt.go
Package : parser
*/
package parser

import (
	"github.com/apscript-lang/apscript/ast"
	"github.com/apscript-lang/apscript/lexer"
)

// startsStatement reports whether t can begin a statement: an identifier,
// a prefix +/-, an integer literal, or an opening bracket/paren. A bare
// string/float/boolean literal or a leading NOT cannot start a statement
// on its own — apscript has no expression-statement form that begins with
// one, so seeing one here means the enclosing scope has ended, not that a
// new statement is starting.
func startsStatement(t lexer.TokenType) bool {
	switch t {
	case lexer.IDENTIFIER_ID, lexer.PLUS_OP, lexer.MINUS_OP, lexer.INT_LIT,
		lexer.LEFT_BRACKET, lexer.LEFT_PAREN,
		lexer.KW_IF, lexer.KW_PROCEDURE, lexer.KW_RETURN, lexer.KW_REPEAT, lexer.KW_FOR:
		return true
	default:
		return false
	}
}

// parseScope implements parse_scope(is_global): it loops, dispatching on
// the current token, until it sees a token that starts no statement (or
// the parser has failed). isGlobal is threaded unchanged into every
// nested scope — it only flips to false across a PROCEDURE body, which is
// how RETURN/PROCEDURE placement is checked against the nearest enclosing
// function rather than lexical nesting depth.
func (p *Parser) parseScope(isGlobal bool) ast.Scope {
	var stmts ast.Scope
	for {
		if p.failed || !startsStatement(p.cur.Type) {
			return stmts
		}
		switch p.cur.Type {
		case lexer.IDENTIFIER_ID:
			if p.peekAt(lexer.THIN_ARROW) {
				nameTok := p.advance()
				p.advance() // thin arrow
				value := p.parseExpr(lowestPrec)
				span := nameTok.Span.Join(value.NodeSpan())
				stmt := &ast.VarAssign{Span: span, NameSpan: nameTok.Span, Value: value}
				p.expectStmtEnd(stmt.Span)
				stmts = append(stmts, stmt)
				continue
			}
			stmts = append(stmts, p.parseExprOrIndexAssignStmt())
		case lexer.PLUS_OP, lexer.MINUS_OP, lexer.INT_LIT, lexer.LEFT_BRACKET, lexer.LEFT_PAREN:
			stmts = append(stmts, p.parseExprOrIndexAssignStmt())
		case lexer.KW_IF:
			stmts = append(stmts, p.parseIfStmt(isGlobal))
		case lexer.KW_PROCEDURE:
			stmts = append(stmts, p.parseProcedureStmt(isGlobal))
		case lexer.KW_RETURN:
			stmts = append(stmts, p.parseReturnStmt(isGlobal))
		case lexer.KW_REPEAT:
			stmts = append(stmts, p.parseRepeatStmt(isGlobal))
		case lexer.KW_FOR:
			stmts = append(stmts, p.parseForStmt(isGlobal))
		}
	}
}

// parseExprOrIndexAssignStmt parses an expression and, if it is followed
// by `<-`, reinterprets it as an IndexAssign (legal only when the parsed
// expression is itself an Index); otherwise it's a plain expression
// statement.
func (p *Parser) parseExprOrIndexAssignStmt() ast.Stmt {
	value := p.parseExpr(lowestPrec)

	if p.at(lexer.THIN_ARROW) {
		p.advance()
		idx, ok := value.(*ast.Index)
		if !ok {
			p.addError("left-hand side of '<-' must be an index expression", value.NodeSpan())
			p.failed = true
			return &ast.ExprStmt{Span: value.NodeSpan(), E: value}
		}
		rhs := p.parseExpr(lowestPrec)
		span := idx.Span.Join(rhs.NodeSpan())
		stmt := &ast.IndexAssign{Span: span, Root: idx.Value, Index: idx.Idx, Value: rhs}
		p.expectStmtEnd(stmt.Span)
		return stmt
	}

	stmt := &ast.ExprStmt{Span: value.NodeSpan(), E: value}
	p.expectStmtEnd(stmt.Span)
	return stmt
}

func (p *Parser) parseIfStmt(isGlobal bool) ast.Stmt {
	start := p.advance().Span.Start // IF
	p.expect(lexer.LEFT_PAREN)
	cond := p.parseExpr(lowestPrec)
	p.expect(lexer.RIGHT_PAREN)
	p.expect(lexer.LEFT_BRACE)
	scope := p.parseScope(isGlobal)
	end := p.expect(lexer.RIGHT_BRACE).Span.End

	var elseIfs []ast.ElseIf
	var elseScope ast.Scope
	hasElse := false

	for !p.failed && p.at(lexer.KW_ELSE) {
		p.advance()
		if p.at(lexer.LEFT_BRACE) {
			p.advance()
			elseScope = p.parseScope(isGlobal)
			end = p.expect(lexer.RIGHT_BRACE).Span.End
			hasElse = true
			break
		}
		p.expect(lexer.KW_IF)
		p.expect(lexer.LEFT_PAREN)
		c := p.parseExpr(lowestPrec)
		p.expect(lexer.RIGHT_PAREN)
		p.expect(lexer.LEFT_BRACE)
		s := p.parseScope(isGlobal)
		end = p.expect(lexer.RIGHT_BRACE).Span.End
		elseIfs = append(elseIfs, ast.ElseIf{Cond: c, Scope: s})
	}

	return &ast.If{
		Span:    lexer.NewSpan(start, end),
		Cond:    cond,
		Scope:   scope,
		ElseIfs: elseIfs,
		Else:    elseScope,
		HasElse: hasElse,
	}
}

// parseProcedureStmt parses `PROCEDURE IDENT ( ) { scope }`. The parameter
// list is recognized but must be empty: a procedure reads whatever
// bindings its caller already has in scope rather than receiving them by
// name, so there is nothing for a parameter list to bind. A PROCEDURE
// seen while isGlobal is false is a scope-policy diagnostic, not a parse
// abort: the AST is still produced.
func (p *Parser) parseProcedureStmt(isGlobal bool) ast.Stmt {
	start := p.advance().Span.Start // PROCEDURE
	nameTok := p.expect(lexer.IDENTIFIER_ID)
	p.expect(lexer.LEFT_PAREN)
	p.expect(lexer.RIGHT_PAREN)
	p.expect(lexer.LEFT_BRACE)
	scope := p.parseScope(false)
	end := p.expect(lexer.RIGHT_BRACE).Span.End
	span := lexer.NewSpan(start, end)

	if !isGlobal {
		p.addError("PROCEDURE declarations are only allowed at the top level", span)
	}

	return &ast.Procedure{Span: span, NameSpan: nameTok.Span, Params: nil, Scope: scope}
}

// parseReturnStmt parses `RETURN expr?`. A bare RETURN is legal only when
// immediately followed by a newline or EOF; otherwise an expression is
// required. A RETURN seen while isGlobal is true is a scope-policy
// diagnostic, not a parse abort: the evaluator still honors it if control
// ever reaches it, since top-level code runs inside an implicit scope
// that a RETURN can just as well escape.
func (p *Parser) parseReturnStmt(isGlobal bool) ast.Stmt {
	startTok := p.advance() // RETURN
	start := startTok.Span.Start
	end := startTok.Span.End

	var value ast.Expr
	if !p.cur.HasNewlineBefore && !p.at(lexer.EOF_TYPE) {
		value = p.parseExpr(lowestPrec)
		end = value.NodeSpan().End
	}

	span := lexer.NewSpan(start, end)
	if isGlobal {
		p.addError("RETURN statements cannot be outside of function scopes", span)
	}
	p.expectStmtEnd(span)

	return &ast.Return{Span: span, Start: start, Value: value}
}

func (p *Parser) parseRepeatStmt(isGlobal bool) ast.Stmt {
	start := p.advance().Span.Start // REPEAT

	if p.at(lexer.KW_UNTIL) {
		p.advance()
		p.expect(lexer.LEFT_PAREN)
		cond := p.parseExpr(lowestPrec)
		p.expect(lexer.RIGHT_PAREN)
		p.expect(lexer.LEFT_BRACE)
		scope := p.parseScope(isGlobal)
		end := p.expect(lexer.RIGHT_BRACE).Span.End
		return &ast.RepeatUntil{Span: lexer.NewSpan(start, end), Cond: cond, Scope: scope}
	}

	n := p.parseExpr(lowestPrec)
	p.expect(lexer.KW_TIMES)
	p.expect(lexer.LEFT_BRACE)
	scope := p.parseScope(isGlobal)
	end := p.expect(lexer.RIGHT_BRACE).Span.End
	return &ast.RepeatN{Span: lexer.NewSpan(start, end), N: n, Scope: scope}
}

func (p *Parser) parseForStmt(isGlobal bool) ast.Stmt {
	start := p.advance().Span.Start // FOR
	p.expect(lexer.KW_EACH)
	aliasTok := p.expect(lexer.IDENTIFIER_ID)
	p.expect(lexer.KW_IN)
	arr := p.parseExpr(lowestPrec)
	p.expect(lexer.LEFT_BRACE)
	scope := p.parseScope(isGlobal)
	end := p.expect(lexer.RIGHT_BRACE).Span.End
	return &ast.For{Span: lexer.NewSpan(start, end), AliasSpan: aliasTok.Span, Array: arr, Scope: scope}
}
