/*
File    : apscript/cli/validate.go
Package : cli
*/
package cli

import (
	"fmt"
	"os"

	"github.com/apscript-lang/apscript/diag"
	"github.com/apscript-lang/apscript/interp"
	"github.com/spf13/cobra"
)

// validateCmd implements `apscript validate <file>`: parse-only, prints
// every diagnostic, exits 0 only if there were none.
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse an apscript source file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				redColor.Fprintf(os.Stderr, "could not read %s: %v\n", args[0], err)
				os.Exit(1)
			}

			diags := interp.Validate(string(source))
			if len(diags) == 0 {
				greenColor.Fprintln(os.Stdout, "no errors")
				return nil
			}
			diag.RenderAll(os.Stderr, string(source), args[0], diags)
			fmt.Fprintln(os.Stderr)
			os.Exit(1)
			return nil
		},
	}
}
