// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"strings"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/report"

	"github.com/spf13/cobra"
)

// FormatUsage is the help text of --format.
var FormatUsage = fmt.Sprintf("Output format (%s); defaults to report.format", strings.Join(report.Formats, ", "))

// AddFormatFlag registers --format on cmd. An empty value means report.format.
func AddFormatFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "format", "f", "", FormatUsage)
}

// Setup returns the container of the running command.
func Setup(cmd *cobra.Command) (*container.Container, error) {
	return root.Container(cmd)
}

// PrintTable renders t on the command's output.
func PrintTable(cmd *cobra.Command, c *container.Container, t report.Table, format string) error {
	return c.GetReports().Print(cmd.OutOrStdout(), t, format)
}

// PrintTables renders several tables one after the other. YAML output gets a
// document separator between tables, markdown a blank line.
func PrintTables(cmd *cobra.Command, c *container.Container, format string, tables ...report.Table) error {
	if format == "" {
		format = c.GetReports().Format()
	}
	for i, t := range tables {
		if i > 0 {
			switch format {
			case report.FormatYAML:
				Linef(cmd, "---")
			case report.FormatTable:
				Linef(cmd, "")
			}
		}
		if err := PrintTable(cmd, c, t, format); err != nil {
			return err
		}
	}
	return nil
}

// Linef writes one formatted line to the command's output.
func Linef(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
