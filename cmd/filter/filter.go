// Package filter lists expenses within a date range
package filter

import (
	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/aggregator"
	"fjacquet/expense-tracker/internal/report"

	"github.com/spf13/cobra"
)

// NewCommand builds the filter command.
func NewCommand() *cobra.Command {
	var from, to, format string

	cmd := &cobra.Command{
		Use:     "filter",
		Short:   "Filter expenses by date range",
		Long:    `List the expenses dated between --from and --to, both included. Rows with an unreadable date are skipped.`,
		Example: "  expense-tracker filter --from 2024-01-01 --to 2024-01-31",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := aggregator.ParseRange(from, to)
			if err != nil {
				return err
			}
			c, err := common.Setup(cmd)
			if err != nil {
				return err
			}
			records, err := c.GetLedger().List()
			if err != nil {
				return err
			}
			table := report.ExpensesTable(aggregator.FilterByDateRange(records, start, end))
			if table.Empty() {
				common.Linef(cmd, "No expenses found in this range.")
				return nil
			}
			return common.PrintTable(cmd, c, table, format)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Start date YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "End date YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	common.AddFormatFlag(cmd, &format)
	return cmd
}
