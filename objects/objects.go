/*
File    : apscript/objects/objects.go
Package : objects
*/

// Package objects defines the runtime value model for apscript: the
// tagged-variant dynamic values a program manipulates, their equality and
// display rules, and the Exception abrupt-completion value.
package objects

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/apscript-lang/apscript/ast"
	"github.com/apscript-lang/apscript/lexer"
)

// Kind identifies the runtime type of a Value.
type Kind string

const (
	VoidKind      Kind = "void"
	BoolKind      Kind = "bool"
	NumberKind    Kind = "number"
	StringKind    Kind = "string"
	ArrayKind     Kind = "array"
	BuiltinKind   Kind = "builtin"
	ProcedureKind Kind = "procedure"
	ExceptionKind Kind = "exception"
)

// Value is implemented by every runtime variant. String returns the
// DISPLAY form; Debug returns the form used when nesting inside an array
// (strings quoted).
type Value interface {
	Kind() Kind
	String() string
	Debug() string
}

// Void is the result of a statement or scope that produced nothing — the
// success value of a program that never explicitly returns.
type Void struct{}

func (Void) Kind() Kind     { return VoidKind }
func (Void) String() string { return "" }
func (Void) Debug() string  { return "<void>" }

// VoidValue is the single shared Void instance; Void carries no state so
// allocating fresh ones would be wasteful.
var VoidValue = Void{}

// Bool wraps a boolean.
type Bool struct{ Value bool }

func (b *Bool) Kind() Kind { return BoolKind }
func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Bool) Debug() string { return b.String() }

// Number is the language's single numeric type: a 32-bit float. Every
// arithmetic operation and every literal narrows to float32, so two
// programs that compute the same value always print the same digits
// regardless of host architecture.
type Number struct{ Value float32 }

func (n *Number) Kind() Kind { return NumberKind }

// String formats n without a forced decimal point: integral values print
// as "3", not "3.0"; non-integral values use the shortest round-tripping
// form for float32. Infinities and NaN print lowercase ("inf", "-inf",
// "nan") rather than Go's default "+Inf"/"NaN" spelling, so a DISPLAYed
// division by zero reads the same as any other numeric output.
func (n *Number) String() string {
	switch {
	case n.Value != n.Value:
		return "nan"
	case float64(n.Value) > math.MaxFloat32:
		return "inf"
	case float64(n.Value) < -math.MaxFloat32:
		return "-inf"
	}
	if n.Value == float32(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(float64(n.Value), 'g', -1, 32)
}
func (n *Number) Debug() string { return n.String() }

// String is an immutable, shared text value. Value holds the literal body
// exactly as sliced from the source (quotes stripped, backslashes
// untouched); lexer.RenderString is applied at display time, not when the
// literal is first evaluated, so an unescaped value can still be compared
// without paying for escape processing it never shows.
type String struct{ Value string }

func (s *String) Kind() Kind     { return StringKind }
func (s *String) String() string { return lexer.RenderString(s.Value) }
func (s *String) Debug() string  { return `"` + s.String() + `"` }

// Array is a mutable heap object: multiple bindings may share one Array,
// and mutating it through one alias is visible through all of them.
type Array struct {
	Elements []Value
}

func (a *Array) Kind() Kind { return ArrayKind }
func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, v := range a.Elements {
		parts[i] = v.Debug()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (a *Array) Debug() string { return a.String() }

// BuiltinFunc is the signature every built-in implements.
type BuiltinFunc func(rt Runtime, args []Value) Value

// Builtin is an interpreter-provided function exposed by name in the root
// environment. Two Builtins are equal only if they wrap the same function
// pointer: built-ins aren't values a program can construct, so identity is
// the only equality that makes sense.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (b *Builtin) Kind() Kind     { return BuiltinKind }
func (b *Builtin) String() string { return fmt.Sprintf("<builtin %s>", b.Name) }
func (b *Builtin) Debug() string  { return b.String() }

// Procedure is a user-defined callable. It captures its definition
// (parameters and body) but not a defining environment: a call's child
// environment parents to the *caller's* environment, not the procedure's
// definition site, so a callee can see bindings the caller created even
// after the callee itself was defined.
type Procedure struct {
	Name string
	Def  *ast.Procedure
}

func (p *Procedure) Kind() Kind     { return ProcedureKind }
func (p *Procedure) String() string { return fmt.Sprintf("<procedure %s>", p.Name) }
func (p *Procedure) Debug() string  { return p.String() }

// Exception is the runtime's abrupt-completion value. It is never stored
// (never placed in an array or an environment binding) — it only ever
// flows as a transient return from an evaluation site up to whatever
// catches it at the top (the CLI, the REPL, or interp.Interpret).
type Exception struct {
	Message string
	Span    lexer.Span
	Stack   []lexer.Span // call-site spans, innermost first
}

func (e *Exception) Kind() Kind     { return ExceptionKind }
func (e *Exception) String() string { return e.Message }
func (e *Exception) Debug() string  { return e.Message }

// NewException builds an Exception with no call stack yet; frames are
// pushed as it unwinds through FnCall sites.
func NewException(message string, span lexer.Span) *Exception {
	return &Exception{Message: message, Span: span}
}

// WithFrame returns a copy of e with callSite appended to its stack. Used
// when an exception unwinds through a procedure call.
func (e *Exception) WithFrame(callSite lexer.Span) *Exception {
	stack := make([]lexer.Span, len(e.Stack), len(e.Stack)+1)
	copy(stack, e.Stack)
	stack = append(stack, callSite)
	return &Exception{Message: e.Message, Span: e.Span, Stack: stack}
}

// Runtime is the callback surface built-ins use to reach the configured
// I/O streams and the random source.
type Runtime interface {
	Stdin() RuneReader
	Stdout() StringWriter
	Rand() RandSource
}

// RuneReader is the minimal input surface INPUT needs.
type RuneReader interface {
	ReadLine() (string, error)
}

// StringWriter is the minimal output surface DISPLAY needs.
type StringWriter interface {
	WriteString(s string) (int, error)
}

// RandSource is the minimal surface RANDOM needs.
type RandSource interface {
	Intn(n int) int
}

// Equal compares two values the way `=` and `!=` expressions do: Bool,
// Number, and String compare by value, Array by shared identity of the
// handle (two arrays with identical contents but distinct allocations are
// not equal), Builtin by function-pointer identity, and Exception is
// never equal to anything, including another Exception or itself, since
// it is an abrupt completion rather than a comparable value.
func Equal(a, b Value) bool {
	if a.Kind() == ExceptionKind || b.Kind() == ExceptionKind {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Bool:
		return av.Value == b.(*Bool).Value
	case *Number:
		return av.Value == b.(*Number).Value
	case *String:
		return av.Value == b.(*String).Value
	case *Array:
		return av == b.(*Array)
	case *Builtin:
		bv := b.(*Builtin)
		return fmt.Sprintf("%p", av.Fn) == fmt.Sprintf("%p", bv.Fn)
	case *Procedure:
		return av == b.(*Procedure)
	case Void:
		return true
	default:
		return false
	}
}
