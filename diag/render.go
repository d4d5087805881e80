/*
File    : apscript/diag/render.go
Package : diag
*/
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color definitions for rendered diagnostics, following the red/yellow/cyan
// convention the teacher's CLI uses for errors/results/info.
var (
	errorColor = color.New(color.FgRed, color.Bold)
	noteColor  = color.New(color.FgYellow)
	locColor   = color.New(color.FgCyan)
)

// lineCol converts a byte offset into 1-indexed line/column numbers
// against src, for human-readable location reporting.
func lineCol(src string, offset int) (line, col int) {
	line, col = 1, 1
	if offset > len(src) {
		offset = len(src)
	}
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}

// Render writes d to w as a colored "{primary_error, note*}" block: the
// primary label's message and location first, then one note line per
// remaining label (innermost call-stack frame first).
func Render(w io.Writer, src string, filename string, d Diagnostic) {
	primary, ok := d.PrimaryLabel()
	if ok {
		line, col := lineCol(src, primary.Span.Start)
		errorColor.Fprintf(w, "error: %s\n", d.Message)
		locColor.Fprintf(w, "  --> %s:%d:%d\n", displayName(filename), line, col)
	} else {
		errorColor.Fprintf(w, "error: %s\n", d.Message)
	}

	for i, lbl := range d.Labels {
		if i == d.PrimaryLabelIndex {
			continue
		}
		line, col := lineCol(src, lbl.Span.Start)
		msg := lbl.Message
		if msg == "" {
			msg = "called from here"
		}
		noteColor.Fprintf(w, "  note: %s\n", msg)
		locColor.Fprintf(w, "    --> %s:%d:%d\n", displayName(filename), line, col)
	}
}

// RenderAll renders a batch of diagnostics, separated by a blank line.
func RenderAll(w io.Writer, src string, filename string, diags []Diagnostic) {
	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(w)
		}
		Render(w, src, filename, d)
	}
}

func displayName(filename string) string {
	if strings.TrimSpace(filename) == "" {
		return "<input>"
	}
	return filename
}
