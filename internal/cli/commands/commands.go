package commands

import (
	"github.com/spf13/cobra"

	"tcrun/internal/cli"
	"tcrun/internal/config"
	"tcrun/internal/discovery"
	"tcrun/internal/execution"
	"tcrun/internal/storage"
	"tcrun/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.Prefix, cfg.Extension)
	filter := discovery.NewFilter()
	runner := execution.NewRunner(cfg)
	harness := execution.NewHarness(cfg, scanner, filter, runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewResultViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, harness, jsonStorage, formatter),
		List:     NewListCommand(cfg, scanner, filter, formatter),
		Failures: NewFailuresCommand(jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run all TC test scripts and generate a report",
		Long:    "Discover TC-prefixed test scripts, execute each as an isolated child process under a timeout, and write a JSON report next to the tests",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
		// A failing test run is not a usage error
		SilenceUsage: true,
	}
	runCmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "Directory to discover tests in (default: current directory)")
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. 'TC0*' or '*login*')")
	runCmd.Flags().StringVarP(&flags.Interpreter, "interpreter", "i", "", "Interpreter used to run test files (default: python3)")
	runCmd.Flags().IntVarP(&flags.Timeout, "timeout", "t", 0, "Per-test timeout in seconds (default: 60)")
	runCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Disable the progress bar")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered tests",
		Long:    "Scan and list TC test scripts without executing them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "Directory to discover tests in (default: current directory)")
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter tests by name pattern")
	rootCmd.AddCommand(listCmd)

	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View failing tests interactively",
		Long:    "Display the failed, errored and timed-out tests from the last run in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	failuresCmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "Directory the report was written in (default: current directory)")
	rootCmd.AddCommand(failuresCmd)
}
