/*
File    : apscript/cli/run.go
Package : cli
*/
package cli

import (
	"os"

	"github.com/apscript-lang/apscript/interp"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
)

// runCmd implements `apscript run <file>`: parse+run, rendering
// diagnostics/exceptions with diag.Render via interp, exiting non-zero
// on any failure so a shell script invoking apscript can detect that the
// program didn't complete successfully.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Parse and run an apscript source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				redColor.Fprintf(os.Stderr, "could not read %s: %v\n", args[0], err)
				os.Exit(1)
			}

			result := interp.Interpret(string(source), configOptions()...)
			if result.Ok {
				return nil
			}
			redColor.Fprint(os.Stderr, result.Log)
			os.Exit(1)
			return nil
		},
	}
}

// configOptions translates globalCfg into the interp.Option list
// Interpret expects.
func configOptions() []interp.Option {
	var opts []interp.Option
	if globalCfg.Seed != 0 {
		opts = append(opts, interp.WithSeed(globalCfg.Seed))
	}
	if globalCfg.StepBudget > 0 {
		opts = append(opts, interp.WithStepBudget(globalCfg.StepBudget))
	}
	return opts
}
