/*
File    : apscript/replpkg/repl_test.go
Package : replpkg
*/
package replpkg

import (
	"strings"
	"testing"

	"github.com/apscript-lang/apscript/eval"
	"github.com/stretchr/testify/assert"
)

func TestBraceDelta_CountsOpenAndClose(t *testing.T) {
	assert.Equal(t, 1, braceDelta("IF (x) {"))
	assert.Equal(t, -1, braceDelta("}"))
	assert.Equal(t, 0, braceDelta("x <- 1"))
}

func TestExecuteWithRecovery_EvaluatesOnlyNewStatements(t *testing.T) {
	r := &Repl{}
	var out strings.Builder
	evaluator := eval.New()
	evaluator.SetWriter(&out)

	n := r.executeWithRecovery(&out, evaluator, "x <- 1\nDISPLAY(x)\n", 0)
	assert.Equal(t, 2, n)
	assert.Equal(t, "1\n", out.String())

	out.Reset()
	n = r.executeWithRecovery(&out, evaluator, "x <- 1\nDISPLAY(x)\nDISPLAY(x + 1)\n", n)
	assert.Equal(t, 3, n)
	assert.Equal(t, "2\n", out.String(), "already-evaluated statements must not re-run")
}

func TestExecuteWithRecovery_ParseDiagnosticLeavesCountUnchanged(t *testing.T) {
	r := &Repl{}
	var out strings.Builder
	evaluator := eval.New()
	evaluator.SetWriter(&out)

	n := r.executeWithRecovery(&out, evaluator, "RETURN 1\n", 0)
	assert.Equal(t, 0, n)
	assert.NotEmpty(t, out.String())
}
