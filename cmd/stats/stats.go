// Package stats prints an overview of all expenses
package stats

import (
	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/aggregator"
	"fjacquet/expense-tracker/internal/report"

	"github.com/spf13/cobra"
)

// NewCommand builds the stats command.
func NewCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show count, total and average cost with each category's share",
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
			if len(records) == 0 {
				common.Linef(cmd, "No expenses found.")
				return nil
			}

			overview, err := aggregator.Summarize(records)
			if err != nil {
				return err
			}
			totals, err := aggregator.ByCategory(records)
			if err != nil {
				return err
			}

			return common.PrintTables(cmd, c, format,
				report.OverviewTable(overview),
				report.ShareTable(totals, overview.Total, aggregator.Share))
		},
	}
	common.AddFormatFlag(cmd, &format)
	return cmd
}
