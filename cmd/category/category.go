// Package category manages the category registry from the command line
package category

import (
	"errors"
	"fmt"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/trackererror"

	"github.com/spf13/cobra"
)

// NewCommand builds the category command and its add and list subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Add or view expense categories",
	}
	cmd.AddCommand(newAddCommand(), newListCommand())
	return cmd
}

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := common.Setup(cmd)
			if err != nil {
				return err
			}
			added, err := c.GetCategories().Add(args[0])
			if errors.Is(err, trackererror.ErrCategoryExists) {
				return fmt.Errorf("category '%s' already exists: %w", models.NormalizeCategoryName(args[0]), trackererror.ErrCategoryExists)
			}
			if err != nil {
				return err
			}
			common.Linef(cmd, "Category '%s' added.", added)
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "View all categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := common.Setup(cmd)
			if err != nil {
				return err
			}
			categories, err := c.GetCategories().List()
			if err != nil {
				return err
			}
			table := report.CategoriesTable(categories)
			if table.Empty() {
				common.Linef(cmd, "No categories found.")
				return nil
			}
			return common.PrintTable(cmd, c, table, format)
		},
	}
	common.AddFormatFlag(cmd, &format)
	return cmd
}
