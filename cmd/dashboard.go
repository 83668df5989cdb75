package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitship-dev/gitship/internal/dashboard"
	"github.com/gitship-dev/gitship/internal/execx"
	"github.com/gitship-dev/gitship/internal/git"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open a full-screen view of repository state",
	RunE: func(cmd *cobra.Command, args []string) error {
		branch, err := git.NewClient(execx.Runner{Verbose: verbose}).CurrentBranch()
		if err != nil {
			branch = "unknown"
		}
		return dashboard.Run(branch)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
