/*
File    : apscript/cli/version.go
Package : cli
*/
package cli

import (
	"fmt"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

// versionCmd implements `apscript version`: prints a semver-formatted
// version string, grounded on playbymail-ottomap's version/--build-info
// convention.
func versionCmd() *cobra.Command {
	var buildInfo bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the apscript version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if buildInfo {
				fmt.Println(version.String())
			} else {
				fmt.Println(version.Short())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&buildInfo, "build-info", false, "include build metadata")
	return cmd
}
