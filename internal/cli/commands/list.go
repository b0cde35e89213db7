package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tcrun/internal/config"
	"tcrun/internal/discovery"
	"tcrun/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := lc.scanner.Scan(lc.config.GetTestDir())
	if err != nil {
		return err
	}

	tests = lc.filter.FilterByName(tests, lc.config.Flags.Filter)

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	lc.formatter.PrintTestList(tests)
	return nil
}
