/*
File    : apscript/cli/root.go
Package : cli
*/

// Package cli assembles apscript's cobra command tree: run, validate,
// repl, serve, version. It mirrors the teacher's main/main.go mode
// dispatch (file argument vs REPL vs server), rebuilt on cobra instead
// of hand-rolled os.Args switching, per the rest of the example pack's
// convention for multi-command tools.
package cli

import (
	"github.com/apscript-lang/apscript/config"
	"github.com/spf13/cobra"
)

var (
	cfgPath    string
	globalCfg  *config.Config
	noColorOpt bool
	seedOpt    int64
	stepsOpt   int
)

// Root builds the top-level apscript command.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "apscript",
		Short:         "apscript - an AP-Pseudocode interpreter",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().BoolVar(&noColorOpt, "no-color", false, "disable colored output")
	root.PersistentFlags().Int64Var(&seedOpt, "seed", 0, "seed RANDOM deterministically (0 = interpreter default)")
	root.PersistentFlags().IntVar(&stepsOpt, "max-steps", 0, "abort after this many evaluation steps (0 = unbounded)")

	root.AddCommand(runCmd(), validateCmd(), replCmd(), serveCmd(), versionCmd())
	return root
}

// loadConfig resolves globalCfg from --config (falling back to
// config.Default()), then applies the CLI flag overrides. A flag that is
// set (non-zero, or --no-color) wins over the file.
func loadConfig() error {
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		globalCfg = cfg
	} else {
		globalCfg = config.Default()
	}

	if noColorOpt {
		globalCfg.Color = false
	}
	if seedOpt != 0 {
		globalCfg.Seed = seedOpt
	}
	if stepsOpt != 0 {
		globalCfg.StepBudget = stepsOpt
	}
	globalCfg.Apply()
	return nil
}
