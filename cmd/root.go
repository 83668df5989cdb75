package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gitship-dev/gitship/internal/config"
	"github.com/gitship-dev/gitship/internal/execx"
	"github.com/gitship-dev/gitship/internal/git"
	"github.com/gitship-dev/gitship/internal/suggest"
	"github.com/gitship-dev/gitship/internal/version"
	"github.com/gitship-dev/gitship/internal/workflow"
)

var (
	cfgFile   string
	verbose   bool
	configErr error

	rootCmd = &cobra.Command{
		Use:   "gitship",
		Short: "gitship - stage, commit with a suggested message, and push",
		Long: `gitship is an interactive CLI that stages your changes, asks an ` +
			`external suggestion tool (gh copilot) for a commit message, lets you ` +
			`confirm or replace it, then commits and pushes.`,
		Version: fmt.Sprintf("%s (built at %s)", version.Version, version.BuildTime),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			return runMenu()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $HOME/.gitship.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false,
		"Show the commands being run")
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

func runMenu() error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return errors.New("gitship is interactive and needs a terminal")
	}

	cfg := config.Get()
	runner := execx.Runner{Verbose: verbose}
	gitClient := git.NewClient(runner)
	generator := &suggest.Generator{
		Git:     gitClient,
		Runner:  runner,
		Command: cfg.SuggestCommand,
	}

	flow := workflow.NewFlow(gitClient, generator, workflow.HuhSurface{}, workflow.Options{
		Remote: cfg.Remote,
		Branch: cfg.Branch,
	})

	fmt.Println("Welcome to gitship!")
	return flow.RunMenu()
}
