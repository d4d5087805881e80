/*
File    : apscript/parser/parser.go
Package : parser
*/

// Package parser implements a Pratt parser over the apscript token stream:
// an operator-precedence expression grammar plus a recursive scope/
// statement grammar, with error recovery via accumulated diagnostics
// rather than panicking on the first malformed construct.
package parser

import (
	"fmt"

	"github.com/apscript-lang/apscript/ast"
	"github.com/apscript-lang/apscript/diag"
	"github.com/apscript-lang/apscript/lexer"
)

// Parser holds the lexer, a one-token lookahead, and the diagnostics
// collected so far. failed marks that a hard (non-recoverable) error was
// hit — once set, the parser stops consuming new constructs and every
// scope unwinds immediately with whatever it already collected, instead
// of attempting to resynchronize and keep parsing past a token stream it
// can no longer make sense of.
type Parser struct {
	src  string
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	diagnostics []diag.Diagnostic
	failed      bool
}

// New creates a Parser over src and primes the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{src: src, lex: lexer.NewLexer(src)}
	p.cur = p.lex.Next()
	p.peek = p.lex.Next()
	return p
}

// Diagnostics returns every diagnostic accumulated during parsing, in the
// order encountered.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	return p.diagnostics
}

func (p *Parser) addError(message string, span lexer.Span) {
	p.diagnostics = append(p.diagnostics, diag.NewError(message, span))
}

// advance consumes the current token and pulls the next one from the
// lexer into the lookahead slot.
func (p *Parser) advance() lexer.Token {
	tok := p.cur
	p.cur = p.peek
	p.peek = p.lex.Next()
	return tok
}

func (p *Parser) at(t lexer.TokenType) bool {
	return p.cur.Type == t
}

func (p *Parser) peekAt(t lexer.TokenType) bool {
	return p.peek.Type == t
}

// expect consumes the current token if it matches t, else records a
// diagnostic, marks the parse as failed, and returns the current
// (unconsumed) token so the caller can keep its span for recovery.
func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	if p.failed {
		return p.cur
	}
	if p.at(t) {
		return p.advance()
	}
	p.addError(fmt.Sprintf("expected %s, found %s", t, p.cur.Type), p.cur.Span)
	p.failed = true
	return p.cur
}

// expectStmtEnd implements the statement-terminator rule: a statement
// must be followed either by EOF or by a token that had a newline before
// it. Unlike expect, a violation here is recorded but does not abort the
// parse — this is error recovery, not a hard failure.
func (p *Parser) expectStmtEnd(stmtSpan lexer.Span) {
	if p.failed {
		return
	}
	if p.cur.HasNewlineBefore || p.at(lexer.EOF_TYPE) {
		return
	}
	p.addError(fmt.Sprintf("expected new line after statement, found %s", p.cur.Type), p.cur.Span)
}

// Parse parses the whole source as the implicit top-level (global) scope
// and returns the resulting AST together with any diagnostics. Per the
// scope-policy rules, any diagnostic means the caller should skip
// evaluation — Parse still returns the best-effort AST for tooling that
// wants it anyway (e.g. an editor outline).
func Parse(src string) (ast.Scope, []diag.Diagnostic) {
	p := New(src)
	scope := p.parseScope(true)
	if !p.at(lexer.EOF_TYPE) && len(p.diagnostics) == 0 {
		p.addError("expected statement", p.cur.Span)
	}
	return scope, p.diagnostics
}
