package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tcrun/internal/config"
	"tcrun/internal/domain"
	"tcrun/internal/execution"
	"tcrun/internal/storage"
	"tcrun/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	harness   *execution.Harness
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	harness *execution.Harness,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		harness:   harness,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	dir, tests, err := rc.harness.Discover()
	if err != nil {
		return err
	}

	rc.formatter.PrintHeader(len(tests))

	var progress *ui.ProgressBar
	if len(tests) > 0 && !rc.config.Flags.NoProgress {
		progress = ui.NewProgressBar(len(tests))
	}

	passed, notPassed := 0, 0
	observer := func(index, total int, result domain.TestResult) {
		rc.formatter.PrintResult(index, total, tests[index-1], result)
		if result.Passed() {
			passed++
		} else {
			notPassed++
		}
		if progress != nil {
			progress.Update(index, passed, notPassed)
		}
	}

	report := rc.harness.Execute(cmd.Context(), dir, tests, observer)
	if progress != nil {
		progress.Finish()
	}

	rc.formatter.PrintSummary(report.Summary)

	if err := rc.storage.Save(&report); err != nil {
		return fmt.Errorf("failed to save test report: %w", err)
	}
	rc.formatter.PrintReportSaved(rc.config.GetOutputPath())

	// Timed-out tests count as failing for the exit code; a test whose exit
	// code was never observed cannot be called a pass
	if n := report.Summary.Failing(); n > 0 {
		return fmt.Errorf("%d of %d tests did not pass", n, report.Summary.Total)
	}
	return nil
}
