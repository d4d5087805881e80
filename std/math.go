/*
File    : apscript/std/math.go
Package : std
*/

// This file implements RANDOM, grounded on the teacher's std/math.go
// rand/randInt pair. Bounds are rounded to the nearest integer before
// drawing, matching the original_source stdlib's rounding behavior on
// non-integer bounds rather than truncating them.
package std

import (
	"math"

	"github.com/apscript-lang/apscript/objects"
)

var mathMethods = []*objects.Builtin{
	{Name: "RANDOM", Fn: random},
}

func init() {
	Builtins = append(Builtins, mathMethods...)
}

// random returns a Number uniformly drawn from the integers in
// [round(lo), round(hi)] inclusive. lo and hi are swapped automatically
// if lo rounds greater than hi.
func random(rt objects.Runtime, args []objects.Value) objects.Value {
	if len(args) != 2 {
		return fail("RANDOM expects 2 arguments")
	}
	loN, ok1 := args[0].(*objects.Number)
	hiN, ok2 := args[1].(*objects.Number)
	if !ok1 || !ok2 {
		return fail("RANDOM bounds must be numbers")
	}

	lo := int(math.Round(float64(loN.Value)))
	hi := int(math.Round(float64(hiN.Value)))
	if lo > hi {
		lo, hi = hi, lo
	}

	n := rt.Rand().Intn(hi-lo+1) + lo
	return &objects.Number{Value: float32(n)}
}
