/*
File    : apscript/replpkg/repl.go
Package : replpkg
*/

// Package replpkg implements the interactive Read-Eval-Print Loop,
// grounded on the teacher's repl package: readline for line editing and
// history, fatih/color for banner/result/error coloring, panic recovery
// around each submission so one bad line never kills the session.
//
// Unlike the teacher's per-line REPL, apscript statements can span
// several lines (an IF/PROCEDURE/REPEAT/FOR body is only complete once
// its braces balance), so input is buffered until braces close before
// it is handed to the parser. The accumulated source only ever grows by
// appending text, never rewriting earlier bytes, so Span offsets bound
// into earlier submissions (procedure bodies, captured identifiers)
// stay valid across the whole session.
package replpkg

import (
	"io"
	"strings"

	"github.com/apscript-lang/apscript/diag"
	"github.com/apscript-lang/apscript/eval"
	"github.com/apscript-lang/apscript/objects"
	"github.com/apscript-lang/apscript/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/prompt configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to apscript!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Open a brace and keep typing until it balances to submit a block")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a line, buffer it until braces balance,
// parse and evaluate the whole accumulated session source, and report
// only the new statements' effects.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(writer)

	var source strings.Builder
	var pending strings.Builder
	depth := 0
	evaluated := 0

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		trimmed := strings.TrimSpace(line)
		if pending.Len() == 0 && trimmed == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		if pending.Len() == 0 && trimmed == "" {
			continue
		}

		rl.SaveHistory(line)
		pending.WriteString(line)
		pending.WriteString("\n")
		depth += braceDelta(line)
		if depth > 0 {
			continue // still inside an open block, keep buffering
		}

		source.WriteString(pending.String())
		pending.Reset()
		depth = 0

		evaluated = r.executeWithRecovery(writer, evaluator, source.String(), evaluated)
	}
}

func braceDelta(line string) int {
	delta := 0
	for _, r := range line {
		switch r {
		case '{':
			delta++
		case '}':
			delta--
		}
	}
	return delta
}

// executeWithRecovery parses the full accumulated src, reports any
// diagnostics, and — if parsing succeeded — evaluates only the
// statements past alreadyEvaluated. It returns the new evaluated count.
func (r *Repl) executeWithRecovery(writer io.Writer, evaluator *eval.Evaluator, src string, alreadyEvaluated int) (newCount int) {
	newCount = alreadyEvaluated
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	scope, diags := parser.Parse(src)
	if len(diags) > 0 {
		for _, d := range diags {
			diag.Render(writer, src, "<repl>", d)
		}
		return alreadyEvaluated
	}
	if alreadyEvaluated > len(scope) {
		alreadyEvaluated = len(scope)
	}

	result := evaluator.Eval(src, scope[alreadyEvaluated:])
	if exc, ok := result.(*objects.Exception); ok {
		redColor.Fprintf(writer, "%s\n", exc.String())
	}
	return len(scope)
}
