// Package add records an expense from the command line
package add

import (
	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

// NewCommand builds the add command.
func NewCommand() *cobra.Command {
	var expense models.Expense

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record a new expense. Name and category are stored trimmed and lowercased;
the category is registered if it is new. An expense with the same date and
name as an existing one is rejected.`,
		Example: "  expense-tracker add --name coffee --cost 4 --category food --date 2024-12-25",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := common.Setup(cmd)
			if err != nil {
				return err
			}
			added, err := c.GetLedger().Add(expense)
			if err != nil {
				return err
			}
			common.Linef(cmd, "Expense record added successfully! %s %s (%s) %d",
				added.Date, added.Name, displayCategory(added.Category), added.Cost)
			return nil
		},
	}

	cmd.Flags().StringVarP(&expense.Name, "name", "n", "", "Expense name")
	cmd.Flags().Int64VarP(&expense.Cost, "cost", "c", 0, "Expense cost in whole units")
	cmd.Flags().StringVarP(&expense.Category, "category", "k", "", "Expense category")
	cmd.Flags().StringVarP(&expense.Date, "date", "d", "", "Expense date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("cost")

	return cmd
}

func displayCategory(category string) string {
	if category == "" {
		return models.CategoryUncategorized
	}
	return category
}
