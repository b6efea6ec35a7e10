// Package ledger records expenses: it normalises and validates input, keeps the
// category registry in sync and refuses duplicate (date, name) entries.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/trackererror"

	"github.com/go-playground/validator/v10"
)

// ExpenseStore is the subset of store.Store the ledger needs.
type ExpenseStore interface {
	Append(record models.ExpenseRecord) error
	Load() ([]models.ExpenseRecord, error)
	Purge() (bool, error)
}

// CategoryRegistrar registers categories introduced by new expenses.
type CategoryRegistrar interface {
	AutoRegister(name string) (bool, error)
}

// Ledger is the write side of the expense file.
type Ledger struct {
	store      ExpenseStore
	categories CategoryRegistrar
	validate   *validator.Validate
	logger     logging.Logger
	now        func() time.Time
}

// Option customises a Ledger.
type Option func(*Ledger)

// WithClock replaces time.Now, used for "today" dates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New creates a Ledger.
func New(store ExpenseStore, categories CategoryRegistrar, logger logging.Logger, opts ...Option) *Ledger {
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	l := &Ledger{
		store:      store,
		categories: categories,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger.WithField(logging.FieldStore, "expenses"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Today returns the current date in the stored layout.
func (l *Ledger) Today() string {
	return dateutils.ToISODate(l.now())
}

// Add stores a new expense. An empty date means today. The category is
// registered first, so it is kept even when the expense itself turns out to be
// a duplicate.
func (l *Ledger) Add(expense models.Expense) (models.Expense, error) {
	expense = expense.Normalize()
	if expense.Date == "" {
		expense.Date = l.Today()
	}

	if err := l.check(expense); err != nil {
		return expense, err
	}

	if expense.Category != "" && l.categories != nil {
		if _, err := l.categories.AutoRegister(expense.Category); err != nil {
			return expense, fmt.Errorf("registering category: %w", err)
		}
	}

	existing, err := l.store.Load()
	if err != nil {
		return expense, err
	}
	for _, r := range existing {
		if r.SameEntry(expense.Date, expense.Name) {
			l.logger.Warn("Rejected duplicate expense",
				logging.F(logging.FieldDate, expense.Date),
				logging.F(logging.FieldExpense, expense.Name))
			return expense, &trackererror.DuplicateError{Date: expense.Date, Name: expense.Name}
		}
	}

	if err := l.store.Append(expense.Record()); err != nil {
		return expense, err
	}

	l.logger.Info("Recorded expense",
		logging.F(logging.FieldDate, expense.Date),
		logging.F(logging.FieldExpense, expense.Name),
		logging.F(logging.FieldCategory, expense.Category),
		logging.F(logging.FieldCost, expense.Cost))
	return expense, nil
}

// List returns every stored expense row.
func (l *Ledger) List() ([]models.ExpenseRecord, error) {
	return l.store.Load()
}

// Purge deletes the expense file. Categories are left untouched.
func (l *Ledger) Purge() (bool, error) {
	return l.store.Purge()
}

func (l *Ledger) check(expense models.Expense) error {
	err := l.validate.Struct(expense)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &trackererror.ValidationError{Field: "expense", Reason: err.Error()}
	}

	fe := fieldErrs[0]
	return &trackererror.ValidationError{
		Field:  strings.ToLower(fe.Field()),
		Reason: describe(fe),
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "datetime":
		return fmt.Sprintf("'%v' is not a date in YYYY-MM-DD format", fe.Value())
	case "gte":
		return "must not be negative"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed '%s' check", fe.Tag())
	}
}
