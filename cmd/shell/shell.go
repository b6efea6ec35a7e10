// Package shell opens the interactive menu explicitly
package shell

import (
	"fjacquet/expense-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// NewCommand builds the shell command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive menu (same as running without a command)",
		Args:  cobra.NoArgs,
		RunE:  root.RunShell,
	}
}
