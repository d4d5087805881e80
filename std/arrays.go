/*
File    : apscript/std/arrays.go
Package : std
*/

// This file implements APPEND, INSERT, REMOVE, and LENGTH, grounded on the
// teacher's std/arrays.go push/pop/size family, narrowed to the four
// operations the surface language actually exposes.
package std

import (
	"github.com/apscript-lang/apscript/objects"
)

var arrayMethods = []*objects.Builtin{
	{Name: "APPEND", Fn: appendArray},
	{Name: "INSERT", Fn: insertArray},
	{Name: "REMOVE", Fn: removeArray},
	{Name: "LENGTH", Fn: lengthArray},
}

func init() {
	Builtins = append(Builtins, arrayMethods...)
}

func asArray(v objects.Value) (*objects.Array, bool) {
	arr, ok := v.(*objects.Array)
	return arr, ok
}

// intIndex requires v to be an integer-valued Number; fractional indices
// fail here, whereas the surface [] operator truncates them.
func intIndex(v objects.Value) (int, bool) {
	n, ok := v.(*objects.Number)
	if !ok || n.Value != float32(int64(n.Value)) {
		return 0, false
	}
	return int(n.Value), true
}

func appendArray(rt objects.Runtime, args []objects.Value) objects.Value {
	if len(args) != 2 {
		return fail("APPEND expects 2 arguments")
	}
	arr, ok := asArray(args[0])
	if !ok {
		return fail("APPEND expects an array as its first argument")
	}
	arr.Elements = append(arr.Elements, args[1])
	return objects.VoidValue
}

// insertArray inserts v at the 1-based position idx, where idx may run
// from 1 through len(arr)+1 (the latter appending at the end).
func insertArray(rt objects.Runtime, args []objects.Value) objects.Value {
	if len(args) != 3 {
		return fail("INSERT expects 3 arguments")
	}
	arr, ok := asArray(args[0])
	if !ok {
		return fail("INSERT expects an array as its first argument")
	}
	idx, ok := intIndex(args[1])
	if !ok {
		return fail("INSERT index must be an integer")
	}
	if idx < 1 || idx > len(arr.Elements)+1 {
		return fail("INSERT index out of range")
	}
	i := idx - 1
	arr.Elements = append(arr.Elements, nil)
	copy(arr.Elements[i+1:], arr.Elements[i:])
	arr.Elements[i] = args[2]
	return objects.VoidValue
}

// removeArray removes and discards the element at the 1-based position
// idx, where idx must be within [1, len(arr)].
func removeArray(rt objects.Runtime, args []objects.Value) objects.Value {
	if len(args) != 2 {
		return fail("REMOVE expects 2 arguments")
	}
	arr, ok := asArray(args[0])
	if !ok {
		return fail("REMOVE expects an array as its first argument")
	}
	idx, ok := intIndex(args[1])
	if !ok {
		return fail("REMOVE index must be an integer")
	}
	if idx < 1 || idx > len(arr.Elements) {
		return fail("REMOVE index out of range")
	}
	i := idx - 1
	arr.Elements = append(arr.Elements[:i], arr.Elements[i+1:]...)
	return objects.VoidValue
}

func lengthArray(rt objects.Runtime, args []objects.Value) objects.Value {
	if len(args) != 1 {
		return fail("LENGTH expects 1 argument")
	}
	arr, ok := asArray(args[0])
	if !ok {
		return fail("LENGTH expects an array")
	}
	return &objects.Number{Value: float32(len(arr.Elements))}
}
