/*
File    : apscript/parser/expr.go
Package : parser
*/
package parser

import (
	"fmt"

	"github.com/apscript-lang/apscript/ast"
	"github.com/apscript-lang/apscript/lexer"
)

// parsePrimary parses the operand-starting forms: literals, identifiers,
// parenthesized expressions, array literals, and prefix unary operators.
// Everything else is an "expected expression" diagnostic.
func (p *Parser) parsePrimary() ast.Expr {
	if p.failed {
		return &ast.True{Span: p.cur.Span}
	}

	switch p.cur.Type {
	case lexer.KW_TRUE:
		tok := p.advance()
		return &ast.True{Span: tok.Span}

	case lexer.KW_FALSE:
		tok := p.advance()
		return &ast.False{Span: tok.Span}

	case lexer.IDENTIFIER_ID:
		tok := p.advance()
		return &ast.Identifier{Span: tok.Span}

	case lexer.STRING_LIT:
		tok := p.advance()
		return &ast.StringLiteral{Span: tok.Span}

	case lexer.INT_LIT:
		tok := p.advance()
		return &ast.IntegerLiteral{Span: tok.Span}

	case lexer.FLOAT_LIT:
		tok := p.advance()
		return &ast.FloatLiteral{Span: tok.Span}

	case lexer.HEX_LIT:
		tok := p.advance()
		return &ast.HexLiteral{Span: tok.Span}

	case lexer.BINARY_LIT:
		tok := p.advance()
		return &ast.BinaryLiteral{Span: tok.Span}

	case lexer.LEFT_PAREN:
		start := p.advance().Span.Start
		inner := p.parseExpr(lowestPrec)
		end := p.cur.Span.Start
		closeTok := p.expect(lexer.RIGHT_PAREN)
		if closeTok.Type == lexer.RIGHT_PAREN {
			end = closeTok.Span.End
		}
		return &ast.Paren{Span: lexer.NewSpan(start, end), Value: inner}

	case lexer.LEFT_BRACKET:
		start := p.advance().Span.Start
		var values []ast.Expr
		for !p.failed && !p.at(lexer.RIGHT_BRACKET) {
			values = append(values, p.parseExpr(lowestPrec))
			if p.at(lexer.COMMA) {
				p.advance()
			}
		}
		end := p.cur.Span.End
		closeTok := p.expect(lexer.RIGHT_BRACKET)
		if closeTok.Type == lexer.RIGHT_BRACKET {
			end = closeTok.Span.End
		}
		return &ast.ArrayLiteral{Span: lexer.NewSpan(start, end), Values: values}

	case lexer.KW_NOT:
		start := p.advance().Span.Start
		value := p.parseExpr(unaryPrec)
		return &ast.UnaryOp{Span: lexer.NewSpan(start, value.NodeSpan().End), Kind: ast.Not, Value: value}

	case lexer.PLUS_OP:
		start := p.advance().Span.Start
		value := p.parseExpr(unaryPrec)
		return &ast.UnaryOp{Span: lexer.NewSpan(start, value.NodeSpan().End), Kind: ast.Pos, Value: value}

	case lexer.MINUS_OP:
		start := p.advance().Span.Start
		value := p.parseExpr(unaryPrec)
		return &ast.UnaryOp{Span: lexer.NewSpan(start, value.NodeSpan().End), Kind: ast.Neg, Value: value}

	default:
		p.addError(fmt.Sprintf("expected expression, found %s", p.cur.Type), p.cur.Span)
		p.failed = true
		return &ast.True{Span: p.cur.Span}
	}
}

// binaryOpKind maps an infix operator token to its ast.BinaryOpKind. ok is
// false for tokens parsePrimary/parseExpr's postfix handling already
// consumed (call, index) — those never reach here.
func binaryOpKind(t lexer.TokenType) (ast.BinaryOpKind, bool) {
	switch t {
	case lexer.PLUS_OP:
		return ast.Add, true
	case lexer.MINUS_OP:
		return ast.Sub, true
	case lexer.MUL_OP:
		return ast.Mul, true
	case lexer.DIV_OP:
		return ast.Div, true
	case lexer.KW_MOD:
		return ast.Mod, true
	case lexer.EQ_OP:
		return ast.Equal, true
	case lexer.NE_OP:
		return ast.NotEqual, true
	case lexer.LT_OP:
		return ast.Less, true
	case lexer.LE_OP:
		return ast.LessEqual, true
	case lexer.GT_OP:
		return ast.Greater, true
	case lexer.GE_OP:
		return ast.GreaterEqual, true
	case lexer.KW_AND:
		return ast.And, true
	case lexer.KW_OR:
		return ast.Or, true
	default:
		return 0, false
	}
}

// parseExpr parses an expression via precedence climbing: parsePrimary
// produces the left operand, then the loop below extends it with any
// postfix index/call or left-associative infix operator whose binding
// power is greater than minPrec. An operator at exactly minPrec is left
// for the caller, so a chain like `a - b - c` groups as `(a - b) - c`.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	lhs := p.parsePrimary()

	for !p.failed {
		prec := precedenceOf(p.cur.Type)
		if prec == lowestPrec || prec <= minPrec {
			break
		}

		if p.at(lexer.LEFT_BRACKET) {
			p.advance()
			idx := p.parseExpr(lowestPrec)
			end := p.cur.Span.End
			closeTok := p.expect(lexer.RIGHT_BRACKET)
			if closeTok.Type == lexer.RIGHT_BRACKET {
				end = closeTok.Span.End
			}
			lhs = &ast.Index{Span: lexer.NewSpan(lhs.NodeSpan().Start, end), Value: lhs, Idx: idx}
			continue
		}

		if p.at(lexer.LEFT_PAREN) {
			p.advance()
			var args []ast.Expr
			for !p.failed && !p.at(lexer.RIGHT_PAREN) {
				args = append(args, p.parseExpr(lowestPrec))
				if p.at(lexer.COMMA) {
					p.advance()
				}
			}
			end := p.cur.Span.End
			closeTok := p.expect(lexer.RIGHT_PAREN)
			if closeTok.Type == lexer.RIGHT_PAREN {
				end = closeTok.Span.End
			}
			lhs = &ast.FnCall{Span: lexer.NewSpan(lhs.NodeSpan().Start, end), Callee: lhs, Args: args}
			continue
		}

		kind, ok := binaryOpKind(p.cur.Type)
		if !ok {
			break
		}
		p.advance()
		rhs := p.parseExpr(prec)
		lhs = &ast.BinaryOp{Span: lexer.NewSpan(lhs.NodeSpan().Start, rhs.NodeSpan().End), Kind: kind, Lhs: lhs, Rhs: rhs}
	}

	return lhs
}
