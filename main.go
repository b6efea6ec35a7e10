package main

import (
	"fmt"
	"os"

	"fjacquet/expense-tracker/cmd/add"
	"fjacquet/expense-tracker/cmd/category"
	"fjacquet/expense-tracker/cmd/filter"
	"fjacquet/expense-tracker/cmd/highest"
	"fjacquet/expense-tracker/cmd/list"
	"fjacquet/expense-tracker/cmd/purge"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/cmd/shell"
	"fjacquet/expense-tracker/cmd/stats"
	"fjacquet/expense-tracker/cmd/summary"
	"fjacquet/expense-tracker/internal/container"

	"github.com/spf13/cobra"
)

// newRootCommand assembles the root command and all subcommands.
func newRootCommand(opts ...container.Option) *cobra.Command {
	cmd := root.NewCommand(opts...)
	cmd.AddCommand(
		add.NewCommand(),
		list.NewCommand(),
		category.NewCommand(),
		purge.NewCommand(),
		summary.NewCommand(),
		highest.NewCommand(),
		filter.NewCommand(),
		stats.NewCommand(),
		shell.NewCommand(),
	)
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
