/*
File    : apscript/parser/precedence.go
Package : parser
*/
package parser

import "github.com/apscript-lang/apscript/lexer"

// Left-binding power table, exactly the Pratt precedence levels of the
// expression grammar: higher binds tighter. Postfix call/index sit above
// unary prefix so `-f(x)` parses as `-(f(x))`, and every binary operator
// is left-associative (the infix loop recurses at its own precedence, not
// precedence-1).
const (
	lowestPrec = 0

	orPrec      = 10
	andPrec     = 20
	eqPrec      = 30
	relPrec     = 40
	addPrec     = 50
	mulPrec     = 60
	unaryPrec   = 70
	postfixPrec = 80
)

// precedenceOf returns the infix/postfix binding power of tok, or
// lowestPrec if tok does not continue an expression.
func precedenceOf(tok lexer.TokenType) int {
	switch tok {
	case lexer.LEFT_PAREN, lexer.LEFT_BRACKET:
		return postfixPrec
	case lexer.MUL_OP, lexer.DIV_OP, lexer.KW_MOD:
		return mulPrec
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return addPrec
	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		return relPrec
	case lexer.EQ_OP, lexer.NE_OP:
		return eqPrec
	case lexer.KW_AND:
		return andPrec
	case lexer.KW_OR:
		return orPrec
	default:
		return lowestPrec
	}
}
