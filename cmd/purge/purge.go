// Package purge deletes the expense file
package purge

import (
	"errors"
	"path/filepath"

	"fjacquet/expense-tracker/cmd/common"

	"github.com/spf13/cobra"
)

// ErrNotConfirmed is returned when purge runs without --yes.
var ErrNotConfirmed = errors.New("refusing to delete all records without --yes")

// NewCommand builds the purge command.
func NewCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete all expense records",
		Long:  `Delete the expense file. Registered categories are kept.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return ErrNotConfirmed
			}
			c, err := common.Setup(cmd)
			if err != nil {
				return err
			}
			removed, err := c.GetLedger().Purge()
			if err != nil {
				return err
			}
			name := filepath.Base(c.GetConfig().ExpensesPath())
			if removed {
				common.Linef(cmd, "All records deleted from %s.", name)
			} else {
				common.Linef(cmd, "No records found to delete in %s.", name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}
