package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcrun/internal/cli"
	"tcrun/internal/cli/commands"
	"tcrun/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "tcrun",
		Short:   "Local TC test-script runner",
		Long:    `Runs TC-prefixed test scripts as isolated child processes under a per-test timeout, prints a progress trace and summary, and writes a JSON report next to the tests.`,
		Version: version,
	}

	// Defaults plus .env / TCRUN_* environment overrides
	cfg := config.Load()

	// Populated by cobra during flag parsing
	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
