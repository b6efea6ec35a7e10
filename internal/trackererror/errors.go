// Package trackererror defines the error kinds returned by the expense tracker.
// Operation boundaries (shell, commands) turn them into user-facing messages.
package trackererror

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateExpense is matched by DuplicateError.
	ErrDuplicateExpense = errors.New("duplicate expense")
	// ErrCategoryExists is returned when a manually added category is already registered.
	ErrCategoryExists = errors.New("category already exists")
	// ErrNoExpenses is returned by queries that need at least one expense.
	ErrNoExpenses = errors.New("no expenses found")
)

// StoreError represents an I/O failure on one of the flat files.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ParseError represents a field value that could not be interpreted.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents user input rejected before it reaches a store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateError reports an expense whose (date, name) pair is already recorded.
type DuplicateError struct {
	Date string
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate record: expense '%s' already exists on %s", e.Name, e.Date)
}

// Is makes errors.Is(err, ErrDuplicateExpense) hold for every DuplicateError.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateExpense
}
