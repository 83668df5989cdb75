package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitship-dev/gitship/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show gitship version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gitship %s (built at %s)\n", version.Version, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
