package trackererror

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	err := &StoreError{Op: "append", Path: "record.csv", Err: os.ErrPermission}

	assert.Equal(t, "append record.csv: permission denied", err.Error())
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name:     "cost",
			err:      &ParseError{Field: "Expense_cost", Value: "ten", Err: errors.New("not a number")},
			expected: "failed to parse Expense_cost='ten': not a number",
		},
		{
			name:     "empty date",
			err:      &ParseError{Field: "Date", Value: "", Err: errors.New("empty date")},
			expected: "failed to parse Date='': empty date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := fmt.Errorf("summary: %w", &ParseError{Field: "Date", Value: "x", Err: cause})

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Date", parseErr.Field)
	assert.True(t, errors.Is(err, cause))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "name", Reason: "must not be empty"}
	assert.Equal(t, "invalid name: must not be empty", err.Error())
}

func TestDuplicateError(t *testing.T) {
	err := &DuplicateError{Date: "2024-12-25", Name: "gift"}

	assert.Equal(t, "duplicate record: expense 'gift' already exists on 2024-12-25", err.Error())
	assert.True(t, errors.Is(err, ErrDuplicateExpense))
	assert.True(t, errors.Is(fmt.Errorf("add: %w", err), ErrDuplicateExpense))
	assert.False(t, errors.Is(err, ErrCategoryExists))
}
