// Package summary prints per-category and per-month totals
package summary

import (
	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/aggregator"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"

	"github.com/spf13/cobra"
)

type options struct {
	format string
	save   bool
}

// NewCommand builds the summary command with its category and month subcommands.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarise expenses by category or by month",
	}
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", common.FormatUsage)
	cmd.PersistentFlags().BoolVarP(&opts.save, "save", "s", false, "Also save the summary to its report file")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "category",
			Short: "Total expense per category",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, opts, func(c *container.Container, records []models.ExpenseRecord) (report.Table, string, error) {
					totals, err := aggregator.ByCategory(records)
					return report.CategorySummaryTable(totals), c.GetConfig().Report.CategoryFile, err
				})
			},
		},
		&cobra.Command{
			Use:   "month",
			Short: "Total expense per month",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, opts, func(c *container.Container, records []models.ExpenseRecord) (report.Table, string, error) {
					totals, err := aggregator.ByMonth(records)
					return report.MonthSummaryTable(totals), c.GetConfig().Report.MonthFile, err
				})
			},
		},
	)
	return cmd
}

type summarize func(c *container.Container, records []models.ExpenseRecord) (report.Table, string, error)

func run(cmd *cobra.Command, opts *options, build summarize) error {
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

	table, filename, err := build(c, records)
	if err != nil {
		return err
	}
	if err := common.PrintTable(cmd, c, table, opts.format); err != nil {
		return err
	}
	if !opts.save {
		return nil
	}
	path, err := c.GetReports().Save(table, filename)
	if err != nil {
		return err
	}
	common.Linef(cmd, "Summary saved to %s", path)
	return nil
}
