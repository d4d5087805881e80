/*
File    : apscript/std/builtins.go
Package : std
*/

// Package std implements apscript's built-in functions: DISPLAY, INPUT,
// RANDOM, APPEND, INSERT, REMOVE, LENGTH. Each is an *objects.Builtin
// appended to the package-level Builtins slice from the file that owns it,
// mirroring the teacher's one-file-per-concern std package layout.
package std

import (
	"github.com/apscript-lang/apscript/lexer"
	"github.com/apscript-lang/apscript/objects"
)

// Builtins holds every built-in apscript exposes in its root environment.
// Populated by each file's init().
var Builtins = make([]*objects.Builtin, 0, 8)

var zeroSpan = lexer.NewSpan(0, 0)

// fail builds the zero-span Exception every built-in contract calls for;
// the call site (eval.evalFnCall) rewraps it with the FnCall's own span
// before it becomes visible to the caller.
func fail(message string) *objects.Exception {
	return objects.NewException(message, zeroSpan)
}
