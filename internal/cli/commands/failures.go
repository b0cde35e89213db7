package commands

import (
	"github.com/spf13/cobra"

	"tcrun/internal/storage"
	"tcrun/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	storage storage.Storage
	viewer  *ui.ResultViewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(st storage.Storage, viewer *ui.ResultViewer) *FailuresCommand {
	return &FailuresCommand{
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := fc.storage.Load()
	if err != nil {
		return err
	}

	return fc.viewer.View(report)
}
