// Package root contains the root command for the application
package root

import (
	"context"
	"errors"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
)

// Flags holds the persistent flags shared by every command.
type Flags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	DataDir    string
	ReportDir  string
}

type containerKey struct{}

// NewCommand builds the root command. Run without a subcommand it starts the
// interactive menu. opts are passed to the container built before each command.
func NewCommand(opts ...container.Option) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:   "expense-tracker",
		Short: "Record personal expenses and summarise them.",
		Long: `expense-tracker keeps a CSV ledger of personal expenses.
Run without arguments it opens an interactive menu; the subcommands
offer the same operations for scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := build(cmd, flags, opts)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(contextOf(cmd), containerKey{}, c))
			return nil
		},
		RunE: RunShell,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.ConfigFile, "config", "", "Config file (default searches config.yaml in $HOME/.expense-tracker, .expense-tracker and .)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&flags.LogFormat, "log-format", "", "Log format (text, json)")
	pf.StringVar(&flags.DataDir, "data-dir", "", "Directory holding the expense and category files")
	pf.StringVar(&flags.ReportDir, "report-dir", "", "Directory saved summaries are written to")

	return cmd
}

// RunShell starts the interactive menu on the command's input and output.
func RunShell(cmd *cobra.Command, args []string) error {
	c, err := Container(cmd)
	if err != nil {
		return err
	}
	return c.NewShell(cmd.InOrStdin(), cmd.OutOrStdout()).Run(contextOf(cmd))
}

// Container returns the dependencies built for the running command.
func Container(cmd *cobra.Command) (*container.Container, error) {
	c, ok := contextOf(cmd).Value(containerKey{}).(*container.Container)
	if !ok || c == nil {
		return nil, errors.New("application not initialized")
	}
	return c, nil
}

func build(cmd *cobra.Command, flags *Flags, opts []container.Option) (*container.Container, error) {
	config.LoadEnv()

	cfg, err := config.InitializeConfig(flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.DataDir != "" {
		cfg.Store.Directory = flags.DataDir
	}
	if flags.ReportDir != "" {
		cfg.Report.Directory = flags.ReportDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c, err := container.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	c.GetLogger().Debug("Command starting", logging.F(logging.FieldCommand, cmd.CommandPath()))
	return c, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
