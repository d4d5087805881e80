/*
File    : apscript/objects/objects_test.go
Package : objects
*/
package objects

import (
	"testing"

	"github.com/apscript-lang/apscript/lexer"
	"github.com/stretchr/testify/assert"
)

func TestNumber_IntegralPrintsWithoutDecimal(t *testing.T) {
	assert.Equal(t, "3", (&Number{Value: 3}).String())
	assert.Equal(t, "-2", (&Number{Value: -2}).String())
}

func TestNumber_FractionalUsesShortestForm(t *testing.T) {
	assert.Equal(t, "1.5", (&Number{Value: 1.5}).String())
}

func TestNumber_InfAndNanPrintLowercase(t *testing.T) {
	pos := &Number{Value: 1}
	zero := &Number{Value: 0}
	assert.Equal(t, "inf", (&Number{Value: pos.Value / zero.Value}).String())
	assert.Equal(t, "-inf", (&Number{Value: -pos.Value / zero.Value}).String())
	assert.Equal(t, "nan", (&Number{Value: zero.Value / zero.Value}).String())
}

func TestEqual_NumbersAndStringsAreStructural(t *testing.T) {
	assert.True(t, Equal(&Number{Value: 1}, &Number{Value: 1}))
	assert.False(t, Equal(&Number{Value: 1}, &Number{Value: 2}))
	assert.True(t, Equal(&String{Value: "a"}, &String{Value: "a"}))
}

func TestEqual_ArraysAreByIdentityNotContents(t *testing.T) {
	a := &Array{Elements: []Value{&Number{Value: 1}}}
	b := &Array{Elements: []Value{&Number{Value: 1}}}
	assert.False(t, Equal(a, b), "two distinct arrays with equal contents are not Equal")
	assert.True(t, Equal(a, a))
}

func TestEqual_ExceptionIsNeverEqual(t *testing.T) {
	e := NewException("boom", lexer.NewSpan(0, 1))
	assert.False(t, Equal(e, e))
	assert.False(t, Equal(e, &Number{Value: 0}))
}

func TestException_WithFrameAppendsWithoutMutatingOriginal(t *testing.T) {
	e := NewException("boom", lexer.NewSpan(0, 1))
	framed := e.WithFrame(lexer.NewSpan(5, 6))
	assert.Empty(t, e.Stack)
	assert.Len(t, framed.Stack, 1)
	assert.Equal(t, lexer.NewSpan(5, 6), framed.Stack[0])
}

func TestArray_StringQuotesNestedStringsNotTopLevel(t *testing.T) {
	arr := &Array{Elements: []Value{&String{Value: "a"}, &Number{Value: 1}}}
	assert.Equal(t, `["a", 1]`, arr.String())
}

func TestBuiltin_EqualOnlyForSameFunctionPointer(t *testing.T) {
	f := func(rt Runtime, args []Value) Value { return VoidValue }
	g := func(rt Runtime, args []Value) Value { return VoidValue }
	assert.True(t, Equal(&Builtin{Name: "f", Fn: f}, &Builtin{Name: "f", Fn: f}))
	assert.False(t, Equal(&Builtin{Name: "f", Fn: f}, &Builtin{Name: "g", Fn: g}))
}
