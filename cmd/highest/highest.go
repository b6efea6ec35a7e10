// Package highest prints the single most expensive record
package highest

import (
	"errors"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/aggregator"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/trackererror"

	"github.com/spf13/cobra"
)

// NewCommand builds the highest command.
func NewCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "highest",
		Short: "Show the highest single expense",
		Long:  `Show the highest single expense. When several share the top cost, the first recorded wins.`,
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
			top, err := aggregator.Highest(records)
			if errors.Is(err, trackererror.ErrNoExpenses) {
				common.Linef(cmd, "No expenses found.")
				return nil
			}
			if err != nil {
				return err
			}
			return common.PrintTable(cmd, c, report.ExpensesTable([]models.ExpenseRecord{top}), format)
		},
	}
	common.AddFormatFlag(cmd, &format)
	return cmd
}
