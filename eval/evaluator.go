/*
File    : apscript/eval/evaluator.go
Package : eval
*/

// Package eval implements the tree-walking evaluator: eval_expr and
// eval_scope, the two mutually recursive operations that turn an AST into
// a runtime Value or an Exception.
package eval

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/apscript-lang/apscript/ast"
	"github.com/apscript-lang/apscript/environment"
	"github.com/apscript-lang/apscript/lexer"
	"github.com/apscript-lang/apscript/objects"
	"github.com/apscript-lang/apscript/std"
)

// Evaluator holds everything eval_expr/eval_scope need beyond the AST and
// environment: the registered built-ins, the configured I/O streams, the
// random source, and an optional step budget for sandboxing untrusted
// programs (see tick).
type Evaluator struct {
	Root     *environment.Environment
	Builtins map[string]*objects.Builtin

	src    string
	writer io.Writer
	reader *bufio.Reader
	rng    *rand.Rand

	// MaxSteps bounds the number of statement evaluations before Eval
	// gives up and returns an Exception. Zero means
	// unbounded. This is the step-counter the component design calls out
	// for sandboxing a program with no other cancellation protocol.
	MaxSteps int
	steps    int
}

// New creates an Evaluator with every registered built-in bound, stdout/
// stdin as the default I/O streams, and a fixed-seed RNG (call SeedRandom
// to randomize it; the default favors reproducible runs and tests).
func New() *Evaluator {
	e := &Evaluator{
		Root:     environment.New(nil),
		Builtins: make(map[string]*objects.Builtin),
		writer:   os.Stdout,
		reader:   bufio.NewReader(os.Stdin),
		rng:      rand.New(rand.NewSource(1)),
	}
	for _, b := range std.Builtins {
		e.Builtins[b.Name] = b
		e.Root.Bind(b.Name, b)
	}
	return e
}

// SetWriter redirects built-in output (DISPLAY) to w.
func (e *Evaluator) SetWriter(w io.Writer) { e.writer = w }

// SetReader redirects built-in input (INPUT) to r.
func (e *Evaluator) SetReader(r io.Reader) { e.reader = bufio.NewReader(r) }

// SeedRandom reseeds RANDOM's source deterministically, for reproducible
// tests and sandboxed runs.
func (e *Evaluator) SeedRandom(seed int64) { e.rng = rand.New(rand.NewSource(seed)) }

// Stdin implements objects.Runtime.
func (e *Evaluator) Stdin() objects.RuneReader { return lineReader{e.reader} }

// Stdout implements objects.Runtime.
func (e *Evaluator) Stdout() objects.StringWriter { return stringWriter{e.writer} }

// Rand implements objects.Runtime.
func (e *Evaluator) Rand() objects.RandSource { return e.rng }

// Eval evaluates program — parsed from src — as the top-level scope
// against e's root environment (already populated with built-ins) and
// returns its result: Void on a clean finish, or an Exception. src must be
// the exact text program's spans were computed against: identifiers,
// literals, and parameter names are sliced out of it lazily at evaluation
// time rather than stored on the AST.
func (e *Evaluator) Eval(src string, program ast.Scope) objects.Value {
	e.src = src
	return e.EvalScope(program, e.Root)
}

type lineReader struct{ r *bufio.Reader }

func (l lineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type stringWriter struct{ w io.Writer }

func (s stringWriter) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}

// tick advances the step counter and returns an Exception if MaxSteps has
// been exceeded. Called once per statement; expressions, including
// FnCalls, do not advance it.
func (e *Evaluator) tick(span lexer.Span) *objects.Exception {
	if e.MaxSteps <= 0 {
		return nil
	}
	e.steps++
	if e.steps > e.MaxSteps {
		return objects.NewException("step budget exceeded", span)
	}
	return nil
}
