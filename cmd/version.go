package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Actual version and commit can be specified in build command.
var (
	version = "unknown"
	commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(versionString())
	},
}

func versionString() string {
	if commit == "" {
		return fmt.Sprintf("%s version: %s", app, version)
	}
	return fmt.Sprintf("%s version: %s (%s)", app, version, commit)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
