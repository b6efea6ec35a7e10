// Package models holds the records persisted by the expense tracker and the
// rows produced by its summaries.
package models

import (
	"errors"
	"strconv"
	"strings"

	"fjacquet/expense-tracker/internal/trackererror"
)

// Expense is a validated expense ready to be stored.
type Expense struct {
	Date     string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Name     string `json:"name" yaml:"name" validate:"required,max=200"`
	Category string `json:"category" yaml:"category" validate:"max=100"`
	Cost     int64  `json:"cost" yaml:"cost" validate:"gte=0"`
}

// ExpenseRecord is one row of the expense file exactly as stored. Fields are
// kept as strings so that a hand-edited file with a bad cell still loads.
type ExpenseRecord struct {
	Date     string `csv:"Date" json:"date" yaml:"date"`
	Name     string `csv:"Expense_name" json:"name" yaml:"name"`
	Category string `csv:"Expense_category" json:"category" yaml:"category"`
	CostText string `csv:"Expense_cost" json:"cost" yaml:"cost"`
}

// Normalize trims name and category and lowercases them, the canonical form
// used for duplicate detection and category registration.
func (e Expense) Normalize() Expense {
	e.Date = strings.TrimSpace(e.Date)
	e.Name = strings.ToLower(strings.TrimSpace(e.Name))
	e.Category = strings.ToLower(strings.TrimSpace(e.Category))
	return e
}

// Record converts the expense into its stored form.
func (e Expense) Record() ExpenseRecord {
	return ExpenseRecord{
		Date:     e.Date,
		Name:     e.Name,
		Category: e.Category,
		CostText: strconv.FormatInt(e.Cost, 10),
	}
}

// Cost parses the cost cell. An empty cell reads as zero.
func (r ExpenseRecord) Cost() (int64, error) {
	text := strings.TrimSpace(r.CostText)
	if text == "" {
		return 0, nil
	}
	cost, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &trackererror.ParseError{Field: HeaderExpenseCost, Value: r.CostText, Err: err}
	}
	if cost < 0 {
		return 0, &trackererror.ParseError{Field: HeaderExpenseCost, Value: r.CostText, Err: errors.New("cost cannot be negative")}
	}
	return cost, nil
}

// CategoryOrDefault returns the category, or Uncategorized for an unlabelled row.
func (r ExpenseRecord) CategoryOrDefault() string {
	if strings.TrimSpace(r.Category) == "" {
		return CategoryUncategorized
	}
	return r.Category
}

// SameEntry reports whether two rows share the (date, name) uniqueness key.
func (r ExpenseRecord) SameEntry(date, name string) bool {
	return r.Date == date && r.Name == name
}
