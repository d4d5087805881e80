/*
File    : apscript/std/io.go
Package : std
*/

// This file implements DISPLAY and INPUT. Both pull their reader/writer
// from the Runtime rather than a package-level stdin/stdout, since
// apscript's I/O is scoped per-Evaluator, not global.
package std

import (
	"strconv"
	"strings"

	"github.com/apscript-lang/apscript/objects"
)

var ioMethods = []*objects.Builtin{
	{Name: "DISPLAY", Fn: display},
	{Name: "INPUT", Fn: input},
}

func init() {
	Builtins = append(Builtins, ioMethods...)
}

// display prints each argument separated by single spaces, then a
// newline. Arrays and nested values render through their Debug form so
// that DISPLAY([1, "a"]) shows quoted strings inside the brackets, while
// a bare string argument prints unquoted.
func display(rt objects.Runtime, args []objects.Value) objects.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	rt.Stdout().WriteString(strings.Join(parts, " ") + "\n")
	return objects.VoidValue
}

// input writes a prompt, reads a line, and trims its trailing newline. With
// no arguments the prompt is "Input: "; otherwise every argument is joined
// with single spaces exactly like DISPLAY, followed by one trailing space
// instead of a newline, so INPUT("Enter ", name, ": ") prompts with all
// three pieces instead of only the first. A trimmed text that parses as a
// number returns a Number; anything else returns a String.
func input(rt objects.Runtime, args []objects.Value) objects.Value {
	prompt := "Input: "
	if len(args) > 0 {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		prompt = strings.Join(parts, " ") + " "
	}
	rt.Stdout().WriteString(prompt)

	line, err := rt.Stdin().ReadLine()
	if err != nil && line == "" {
		return fail("failed to read input: " + err.Error())
	}

	if f, err := strconv.ParseFloat(strings.TrimSpace(line), 32); err == nil {
		return &objects.Number{Value: float32(f)}
	}
	return &objects.String{Value: line}
}
