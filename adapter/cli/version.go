package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version, Commit and BuildDate are set during build via -ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func versionString() string {
	return fmt.Sprintf("keep-agent %s (commit %s, built %s, %s)",
		Version, Commit, BuildDate, runtime.Version())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
