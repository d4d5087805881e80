/*
File    : apscript/std/std_test.go
Package : std
*/
package std

import (
	"strings"
	"testing"

	"github.com/apscript-lang/apscript/objects"
	"github.com/stretchr/testify/assert"
)

type fakeRuntime struct {
	out   strings.Builder
	lines []string
}

func (f *fakeRuntime) Stdin() objects.RuneReader { return &fakeReader{f} }
func (f *fakeRuntime) Stdout() objects.StringWriter {
	return &fakeWriter{f}
}
func (f *fakeRuntime) Rand() objects.RandSource { return fakeRand{} }

type fakeReader struct{ f *fakeRuntime }

func (r *fakeReader) ReadLine() (string, error) {
	if len(r.f.lines) == 0 {
		return "", nil
	}
	line := r.f.lines[0]
	r.f.lines = r.f.lines[1:]
	return line, nil
}

type fakeWriter struct{ f *fakeRuntime }

func (w *fakeWriter) WriteString(s string) (int, error) { return w.f.out.WriteString(s) }

type fakeRand struct{}

func (fakeRand) Intn(n int) int { return 0 }

func TestDisplay_JoinsArgsWithSpacesAndNewline(t *testing.T) {
	rt := &fakeRuntime{}
	result := display(rt, []objects.Value{&objects.Number{Value: 1}, &objects.String{Value: "a"}})
	assert.Equal(t, objects.VoidValue, result)
	assert.Equal(t, "1 a\n", rt.out.String())
}

func TestInput_ParsesNumericLineAsNumber(t *testing.T) {
	rt := &fakeRuntime{lines: []string{"42"}}
	result := input(rt, nil)
	num, ok := result.(*objects.Number)
	assert.True(t, ok)
	assert.Equal(t, float32(42), num.Value)
	assert.Equal(t, "Input: ", rt.out.String())
}

func TestInput_NonNumericLineIsString(t *testing.T) {
	rt := &fakeRuntime{lines: []string{"hello"}}
	result := input(rt, []objects.Value{&objects.String{Value: "Name: "}})
	str, ok := result.(*objects.String)
	assert.True(t, ok)
	assert.Equal(t, "hello", str.Value)
	assert.Equal(t, "Name:  ", rt.out.String())
}

func TestInput_MultipleArgsAreJoinedLikeDisplayWithTrailingSpace(t *testing.T) {
	rt := &fakeRuntime{lines: []string{"hello"}}
	result := input(rt, []objects.Value{&objects.String{Value: "Enter"}, &objects.String{Value: "name"}, &objects.String{Value: ":"}})
	str, ok := result.(*objects.String)
	assert.True(t, ok)
	assert.Equal(t, "hello", str.Value)
	assert.Equal(t, "Enter name : ", rt.out.String())
}

func TestRandom_BoundsAreRoundedAndInclusive(t *testing.T) {
	rt := &fakeRuntime{}
	result := random(rt, []objects.Value{&objects.Number{Value: 1.4}, &objects.Number{Value: 5.6}})
	num, ok := result.(*objects.Number)
	assert.True(t, ok)
	assert.Equal(t, float32(1), num.Value) // fakeRand always returns 0 -> lo
}

func TestRandom_RejectsNonNumberArgs(t *testing.T) {
	rt := &fakeRuntime{}
	result := random(rt, []objects.Value{&objects.String{Value: "x"}, &objects.Number{Value: 1}})
	_, ok := result.(*objects.Exception)
	assert.True(t, ok)
}

func TestAppend_PushesOntoArray(t *testing.T) {
	arr := &objects.Array{Elements: []objects.Value{&objects.Number{Value: 1}}}
	result := appendArray(&fakeRuntime{}, []objects.Value{arr, &objects.Number{Value: 2}})
	assert.Equal(t, objects.VoidValue, result)
	assert.Len(t, arr.Elements, 2)
}

func TestInsert_AtMiddlePosition(t *testing.T) {
	arr := &objects.Array{Elements: []objects.Value{
		&objects.Number{Value: 1}, &objects.Number{Value: 3},
	}}
	result := insertArray(&fakeRuntime{}, []objects.Value{arr, &objects.Number{Value: 2}, &objects.Number{Value: 2}})
	assert.Equal(t, objects.VoidValue, result)
	assert.Len(t, arr.Elements, 3)
	assert.Equal(t, float32(2), arr.Elements[1].(*objects.Number).Value)
}

func TestInsert_AtLenPlusOneAppends(t *testing.T) {
	arr := &objects.Array{Elements: []objects.Value{&objects.Number{Value: 1}}}
	result := insertArray(&fakeRuntime{}, []objects.Value{arr, &objects.Number{Value: 2}, &objects.Number{Value: 9}})
	assert.Equal(t, objects.VoidValue, result)
	assert.Equal(t, float32(9), arr.Elements[1].(*objects.Number).Value)
}

func TestInsert_OutOfRangeIsException(t *testing.T) {
	arr := &objects.Array{Elements: []objects.Value{&objects.Number{Value: 1}}}
	result := insertArray(&fakeRuntime{}, []objects.Value{arr, &objects.Number{Value: 5}, &objects.Number{Value: 9}})
	_, ok := result.(*objects.Exception)
	assert.True(t, ok)
}

func TestRemove_DeletesAtIndex(t *testing.T) {
	arr := &objects.Array{Elements: []objects.Value{
		&objects.Number{Value: 1}, &objects.Number{Value: 2}, &objects.Number{Value: 3},
	}}
	result := removeArray(&fakeRuntime{}, []objects.Value{arr, &objects.Number{Value: 2}})
	assert.Equal(t, objects.VoidValue, result)
	assert.Len(t, arr.Elements, 2)
	assert.Equal(t, float32(3), arr.Elements[1].(*objects.Number).Value)
}

func TestRemove_OutOfRangeIsException(t *testing.T) {
	arr := &objects.Array{Elements: []objects.Value{&objects.Number{Value: 1}}}
	result := removeArray(&fakeRuntime{}, []objects.Value{arr, &objects.Number{Value: 0}})
	_, ok := result.(*objects.Exception)
	assert.True(t, ok)
}

func TestLength_ReturnsElementCount(t *testing.T) {
	arr := &objects.Array{Elements: []objects.Value{&objects.Number{Value: 1}, &objects.Number{Value: 2}}}
	result := lengthArray(&fakeRuntime{}, []objects.Value{arr})
	num, ok := result.(*objects.Number)
	assert.True(t, ok)
	assert.Equal(t, float32(2), num.Value)
}
