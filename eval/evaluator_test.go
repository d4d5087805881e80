/*
File    : apscript/eval/evaluator_test.go
Package : eval
*/
package eval

import (
	"strings"
	"testing"

	"github.com/apscript-lang/apscript/objects"
	"github.com/apscript-lang/apscript/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and evaluates src against a fresh Evaluator, failing the
// test immediately on any parse diagnostic, and returns everything
// DISPLAY wrote plus the scope's final result.
func run(t *testing.T, src string) (string, objects.Value) {
	t.Helper()
	scope, diags := parser.Parse(src)
	require.Empty(t, diags)

	var out strings.Builder
	e := New()
	e.SetWriter(&out)
	result := e.Eval(src, scope)
	return out.String(), result
}

func TestScenario_VarAssignAndAdd(t *testing.T) {
	out, _ := run(t, "x <- 3\ny <- 4\nDISPLAY(x + y)\n")
	assert.Equal(t, "7\n", out)
}

func TestScenario_ArrayIndexAssignAndRead(t *testing.T) {
	out, _ := run(t, "a <- [10, 20, 30]\na[2] <- 99\nDISPLAY(a[1], a[2], a[3])\n")
	assert.Equal(t, "10 99 30\n", out)
}

func TestScenario_ProcedureReturnValue(t *testing.T) {
	out, _ := run(t, "PROCEDURE F() {\nRETURN 5\n}\nDISPLAY(F() + 1)\n")
	assert.Equal(t, "6\n", out)
}

func TestScenario_RepeatNTimes(t *testing.T) {
	out, _ := run(t, "i <- 0\nREPEAT 3 TIMES {\ni <- i + 1\n}\nDISPLAY(i)\n")
	assert.Equal(t, "3\n", out)
}

func TestScenario_ForEachArray(t *testing.T) {
	out, _ := run(t, "arr <- [1, 2, 3]\nFOR EACH v IN arr {\nDISPLAY(v)\n}\n")
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestScenario_DivisionByZeroProducesInf(t *testing.T) {
	out, _ := run(t, "DISPLAY(1 / 0)\n")
	assert.Equal(t, "inf\n", out)
}

func TestScenario_UndefinedIdentifierIsException(t *testing.T) {
	_, result := run(t, "DISPLAY(a[1])\n")
	exc, ok := result.(*objects.Exception)
	require.True(t, ok)
	assert.Contains(t, exc.Message, "'a' is not defined")
}

func TestProperty_ExceptionPropagatesThroughBinaryOp(t *testing.T) {
	_, result := run(t, "DISPLAY(1 + a)\n")
	_, ok := result.(*objects.Exception)
	assert.True(t, ok)
}

func TestProperty_ShortCircuitAndSkipsRHS(t *testing.T) {
	out, _ := run(t, "PROCEDURE SIDE() {\nDISPLAY(\"evaluated\")\nRETURN true\n}\nDISPLAY(false AND SIDE())\n")
	assert.Equal(t, "false\n", out, "RHS must never run once the LHS of AND is false")
}

func TestProperty_ShortCircuitOrSkipsRHS(t *testing.T) {
	out, _ := run(t, "PROCEDURE SIDE() {\nDISPLAY(\"evaluated\")\nRETURN false\n}\nDISPLAY(true OR SIDE())\n")
	assert.Equal(t, "true\n", out, "RHS must never run once the LHS of OR is true")
}

func TestProperty_ArrayIndexZeroFails(t *testing.T) {
	_, result := run(t, "a <- [1, 2, 3]\nDISPLAY(a[0])\n")
	_, ok := result.(*objects.Exception)
	assert.True(t, ok)
}

func TestProperty_ArrayIndexLenSucceedsLenPlusOneFails(t *testing.T) {
	out, result := run(t, "a <- [1, 2, 3]\nDISPLAY(a[3])\n")
	assert.Equal(t, "3\n", out)
	assert.Equal(t, objects.VoidValue, result)

	_, result = run(t, "a <- [1, 2, 3]\nDISPLAY(a[4])\n")
	_, ok := result.(*objects.Exception)
	assert.True(t, ok)
}

func TestReturn_EscapesNestedIfWithoutFallingThrough(t *testing.T) {
	src := "PROCEDURE F() {\nIF (true) {\nRETURN 1\n}\nRETURN 2\n}\nDISPLAY(F())\n"
	out, _ := run(t, src)
	assert.Equal(t, "1\n", out, "a RETURN inside a nested IF must escape the whole procedure")
}

func TestDynamicScoping_ProcedureSeesCallersBindingsNotDefinitionSite(t *testing.T) {
	// Per the reference's env-chain design, a procedure's child
	// environment parents to the caller's env, not its definition env:
	// G can see x even though x is defined after G and only visible
	// through whichever scope calls G.
	src := "PROCEDURE G() {\nDISPLAY(x)\n}\nPROCEDURE F() {\nx <- 42\nG()\n}\nF()\n"
	out, _ := run(t, src)
	assert.Equal(t, "42\n", out)
}

func TestStepBudget_ExceededRaisesException(t *testing.T) {
	scope, diags := parser.Parse("REPEAT 100 TIMES {\nx <- 1\n}\n")
	require.Empty(t, diags)

	e := New()
	var out strings.Builder
	e.SetWriter(&out)
	e.MaxSteps = 3

	result := e.Eval("REPEAT 100 TIMES {\nx <- 1\n}\n", scope)
	_, ok := result.(*objects.Exception)
	assert.True(t, ok)
}

func TestBuiltins_ArrayMutationIsVisibleThroughSharedBinding(t *testing.T) {
	src := "a <- [1]\nb <- a\nAPPEND(b, 2)\nDISPLAY(LENGTH(a))\n"
	out, _ := run(t, src)
	assert.Equal(t, "2\n", out, "arrays are shared-mutable: a and b alias the same heap object")
}
