// Package container wires the expense tracker's components from configuration.
// Commands and the interactive shell obtain their dependencies from here
// instead of building stores and loggers themselves.
package container

import (
	"errors"
	"io"
	"path/filepath"

	"fjacquet/expense-tracker/internal/categories"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/shell"
	"fjacquet/expense-tracker/internal/store"
)

// Container holds all application dependencies.
//
// Container is immutable after creation; fields are reached through getters.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	categories *categories.Registry
	ledger     *ledger.Ledger
	reports    *report.Generator
}

// Option customises container construction.
type Option func(*options)

type options struct {
	logger     logging.Logger
	ledgerOpts []ledger.Option
}

// WithLogger replaces the logger built from cfg.Log.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLedgerOptions passes options through to the ledger, e.g. a fixed clock.
func WithLedgerOptions(opts ...ledger.Option) Option {
	return func(o *options) {
		o.ledgerOpts = append(o.ledgerOpts, opts...)
	}
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("configuration cannot be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	delimiter := cfg.Delimiter()
	expenses := store.New[models.ExpenseRecord](cfg.ExpensesPath(), delimiter, logger)
	registry := categories.NewRegistry(store.New[models.Category](cfg.CategoriesPath(), delimiter, logger), logger)
	l := ledger.New(expenses, registry, logger, o.ledgerOpts...)

	terminal := report.NewTerminal(cfg.Terminal.Style)
	reports := report.NewGenerator(cfg.Report.Directory, cfg.Report.Format, terminal, logger)

	logger.Debug("Container initialized",
		logging.F("expenses_path", expenses.Path()),
		logging.F("categories_path", cfg.CategoriesPath()),
		logging.F(logging.FieldDelimiter, string(delimiter)),
		logging.F(logging.FieldFormat, cfg.Report.Format))

	return &Container{
		logger:     logger,
		config:     cfg,
		categories: registry,
		ledger:     l,
		reports:    reports,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLedger returns the expense ledger.
func (c *Container) GetLedger() *ledger.Ledger {
	return c.ledger
}

// GetCategories returns the category registry.
func (c *Container) GetCategories() *categories.Registry {
	return c.categories
}

// GetReports returns the report generator.
func (c *Container) GetReports() *report.Generator {
	return c.reports
}

// NewShell builds an interactive session over in and out.
func (c *Container) NewShell(in io.Reader, out io.Writer) *shell.Shell {
	return shell.New(c.ledger, c.categories, c.reports, shell.Options{
		ExpensesFile:        filepath.Base(c.config.ExpensesPath()),
		CategorySummaryFile: c.config.Report.CategoryFile,
		MonthSummaryFile:    c.config.Report.MonthFile,
		ClearScreen:         c.config.Shell.ClearScreen,
	}, in, out, c.logger)
}
