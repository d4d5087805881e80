/*
File    : apscript/cli/repl.go
Package : cli
*/
package cli

import (
	"github.com/apscript-lang/apscript/replpkg"
	"github.com/spf13/cobra"
)

const (
	banner = `                 _____ _____ _____ _____ _____ _____ _____ _____
                |  _  |  _  |   __|     | __  |     |  _  |_   _|
                |     |   __|__   |  |  |    -|-   -|   __| | |
                |__|__|__|  |_____|_____|__|__|_____|__|    |_|
`
	line    = "----------------------------------------------------------------"
	license = "MIT"
	author  = "apscript-lang"
	prompt  = "aps >>> "
)

// replCmd implements `apscript repl`: an interactive session grounded on
// the teacher's repl package (readline line editing, colored feedback).
func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive apscript session",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := replpkg.NewRepl(banner, version.Short(), author, line, license, prompt)
			r.Start(cmd.OutOrStdout())
			return nil
		},
	}
}
