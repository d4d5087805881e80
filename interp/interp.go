/*
File    : apscript/interp/interp.go
Package : interp
*/

// Package interp is the embeddable surface a host (the CLI's run and
// validate commands, or a future non-CLI embedder) drives instead of
// wiring parser/eval/diag together itself: Validate for parse-only
// checking, Interpret for a full run. Both return the structured
// diagnostic vector spec'd for external interfaces, not just rendered
// text, so a host can re-render or inspect it however it needs.
package interp

import (
	"bytes"
	"io"
	"os"

	"github.com/apscript-lang/apscript/diag"
	"github.com/apscript-lang/apscript/eval"
	"github.com/apscript-lang/apscript/objects"
	"github.com/apscript-lang/apscript/parser"
)

// Validate parses text and returns its diagnostics with no evaluation.
// An empty slice means text parsed cleanly.
func Validate(text string) []diag.Diagnostic {
	_, diags := parser.Parse(text)
	return diags
}

// Result is the outcome of Interpret: either a clean run (Ok true, no
// other field meaningful — DISPLAY output already went to the
// configured writer as the program ran) or a failure, in which case Log
// holds the rendered diagnostic block and Errors the structured
// diagnostics behind it. Parse errors and the runtime Exception both
// surface this way — exactly one origin populates Errors per run, since
// a parse failure short-circuits before evaluation ever starts.
type Result struct {
	Ok     bool
	Log    string
	Errors []diag.Diagnostic
}

// Interpret runs text to completion against a fresh Evaluator configured
// by opts (os.Stdout unless overridden by WithWriter) and returns its
// Result. Parse diagnostics short-circuit before evaluation; a runtime
// Exception is rendered the same way, its call stack becoming one note
// per frame.
func Interpret(text string, opts ...Option) Result {
	scope, diags := parser.Parse(text)
	if len(diags) > 0 {
		return failure(text, diags)
	}

	e := eval.New()
	e.SetWriter(os.Stdout)
	for _, opt := range opts {
		opt(e)
	}

	result := e.Eval(text, scope)
	if exc, ok := result.(*objects.Exception); ok {
		return failure(text, []diag.Diagnostic{exceptionDiagnostic(exc)})
	}
	return Result{Ok: true}
}

// Option configures the Evaluator Interpret constructs before running.
type Option func(*eval.Evaluator)

// WithSeed fixes RANDOM's source for a reproducible run.
func WithSeed(seed int64) Option {
	return func(e *eval.Evaluator) { e.SeedRandom(seed) }
}

// WithStepBudget bounds evaluation to at most n statement evaluations,
// for sandboxing untrusted input.
func WithStepBudget(n int) Option {
	return func(e *eval.Evaluator) { e.MaxSteps = n }
}

// WithWriter redirects DISPLAY output away from the os.Stdout default —
// used by tests that want to capture output instead of racing stdout.
func WithWriter(w io.Writer) Option {
	return func(e *eval.Evaluator) { e.SetWriter(w) }
}

func failure(text string, diags []diag.Diagnostic) Result {
	var log bytes.Buffer
	diag.RenderAll(&log, text, "<input>", diags)
	return Result{Ok: false, Log: log.String(), Errors: diags}
}

// exceptionDiagnostic renders a runtime Exception as a Diagnostic: the
// primary label at the offending span, then one note label per stack
// frame, innermost first — matching how it unwound.
func exceptionDiagnostic(exc *objects.Exception) diag.Diagnostic {
	labels := make([]diag.Label, 0, len(exc.Stack)+1)
	labels = append(labels, diag.Label{Span: exc.Span})
	for _, frame := range exc.Stack {
		labels = append(labels, diag.Label{Span: frame, Message: "called from here"})
	}
	return diag.Diagnostic{
		Severity:          diag.Error,
		Message:           exc.Message,
		Labels:            labels,
		PrimaryLabelIndex: 0,
	}
}
