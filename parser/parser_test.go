/*
File    : apscript/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/apscript-lang/apscript/ast"
	"github.com/stretchr/testify/assert"
)

func TestParse_VarAssignAndBinaryPrecedence(t *testing.T) {
	scope, diags := Parse("x <- 1 + 2 * 3")
	assert.Empty(t, diags)
	assert.Len(t, scope, 1)

	assign, ok := scope[0].(*ast.VarAssign)
	assert.True(t, ok)

	add, ok := assign.Value.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, ast.Add, add.Kind)

	_, ok = add.Lhs.(*ast.IntegerLiteral)
	assert.True(t, ok)

	mul, ok := add.Rhs.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, ast.Mul, mul.Kind)
}

func TestParse_IndexAssign(t *testing.T) {
	scope, diags := Parse("a[1] <- 99")
	assert.Empty(t, diags)
	assert.Len(t, scope, 1)

	ia, ok := scope[0].(*ast.IndexAssign)
	assert.True(t, ok)
	_, ok = ia.Root.(*ast.Identifier)
	assert.True(t, ok)
}

func TestParse_FnCallAndArrayLiteral(t *testing.T) {
	scope, diags := Parse("DISPLAY([1, 2, 3])")
	assert.Empty(t, diags)
	assert.Len(t, scope, 1)

	stmt, ok := scope[0].(*ast.ExprStmt)
	assert.True(t, ok)
	call, ok := stmt.E.(*ast.FnCall)
	assert.True(t, ok)
	assert.Len(t, call.Args, 1)

	arr, ok := call.Args[0].(*ast.ArrayLiteral)
	assert.True(t, ok)
	assert.Len(t, arr.Values, 3)
}

func TestParse_IfElseIfElse(t *testing.T) {
	src := `IF (x) {
y <- 1
} ELSE IF (z) {
y <- 2
} ELSE {
y <- 3
}`
	scope, diags := Parse(src)
	assert.Empty(t, diags)
	assert.Len(t, scope, 1)

	ifStmt, ok := scope[0].(*ast.If)
	assert.True(t, ok)
	assert.Len(t, ifStmt.ElseIfs, 1)
	assert.True(t, ifStmt.HasElse)
}

func TestParse_ProcedureWithReturn(t *testing.T) {
	src := `PROCEDURE F() {
RETURN 5
}`
	scope, diags := Parse(src)
	assert.Empty(t, diags)
	assert.Len(t, scope, 1)

	proc, ok := scope[0].(*ast.Procedure)
	assert.True(t, ok)
	assert.Len(t, proc.Scope, 1)
	ret, ok := proc.Scope[0].(*ast.Return)
	assert.True(t, ok)
	assert.NotNil(t, ret.Value)
}

func TestParse_ReturnOutsideProcedureIsDiagnostic(t *testing.T) {
	_, diags := Parse("RETURN 1")
	assert.NotEmpty(t, diags)
}

func TestParse_ProcedureOutsideGlobalIsDiagnostic(t *testing.T) {
	// isGlobal only flips to false across a PROCEDURE body, not across an
	// IF/REPEAT/FOR block — nesting a PROCEDURE inside another PROCEDURE
	// is how this diagnostic gets triggered.
	src := `PROCEDURE OUTER() {
PROCEDURE INNER() {
RETURN 1
}
}`
	_, diags := Parse(src)
	assert.NotEmpty(t, diags)
}

func TestParse_ProcedureInsideIfAtGlobalScopeIsNotFlagged(t *testing.T) {
	src := `IF (x) {
PROCEDURE F() {
RETURN 1
}
}`
	_, diags := Parse(src)
	assert.Empty(t, diags, "isGlobal is threaded unchanged through IF/REPEAT/FOR blocks")
}

func TestParse_RepeatNAndRepeatUntil(t *testing.T) {
	scope, diags := Parse("REPEAT 3 TIMES {\nx <- 1\n}\nREPEAT UNTIL (done) {\nx <- 1\n}")
	assert.Empty(t, diags)
	assert.Len(t, scope, 2)

	_, ok := scope[0].(*ast.RepeatN)
	assert.True(t, ok)
	_, ok = scope[1].(*ast.RepeatUntil)
	assert.True(t, ok)
}

func TestParse_ForEach(t *testing.T) {
	scope, diags := Parse("FOR EACH v IN arr {\nDISPLAY(v)\n}")
	assert.Empty(t, diags)
	assert.Len(t, scope, 1)
	_, ok := scope[0].(*ast.For)
	assert.True(t, ok)
}

func TestParse_MissingNewlineIsRecoverableDiagnostic(t *testing.T) {
	scope, diags := Parse("x <- 1 y <- 2")
	assert.NotEmpty(t, diags)
	assert.Len(t, scope, 2, "recoverable diagnostic should not stop parsing")
}

func TestParse_LoneBangIsUnexpectedCharacterError(t *testing.T) {
	_, diags := Parse("x <- 1 ! y")
	assert.NotEmpty(t, diags)
}

func TestParse_ExpectedExpressionIsFatal(t *testing.T) {
	_, diags := Parse("x <- )")
	assert.NotEmpty(t, diags)
}
