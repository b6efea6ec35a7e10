// Package list prints every recorded expense
package list

import (
	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/report"

	"github.com/spf13/cobra"
)

// NewCommand builds the list command.
func NewCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "View all expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := common.Setup(cmd)
			if err != nil {
				return err
			}
			records, err := c.GetLedger().List()
			if err != nil {
				return err
			}
			table := report.ExpensesTable(records)
			if table.Empty() {
				common.Linef(cmd, "No expenses found.")
				return nil
			}
			return common.PrintTable(cmd, c, table, format)
		},
	}
	common.AddFormatFlag(cmd, &format)
	return cmd
}
