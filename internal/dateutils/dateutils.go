// Package dateutils provides the date handling shared by the ledger and the aggregator.
// Expense dates are stored as plain strings in a single fixed layout.
package dateutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// DateLayoutISO is the layout of the Date column in the expense file.
	DateLayoutISO = "2006-01-02"
	// MonthLayout is the year-month bucket key used by the monthly summary.
	MonthLayout = "2006-01"
)

var spaceRun = regexp.MustCompile(`\s+`)

// ErrEmptyDate is returned when an empty string is parsed as a date.
var ErrEmptyDate = errors.New("empty date")

// ParseDate parses an expense date in DateLayoutISO. Surrounding whitespace is ignored.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, ErrEmptyDate
	}
	t, err := time.Parse(DateLayoutISO, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q, expected YYYY-MM-DD: %w", dateStr, err)
	}
	return t, nil
}

// IsValidDate reports whether dateStr parses with ParseDate.
func IsValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey returns the YYYY-MM bucket of a date.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}

// CleanDateString trims the string and collapses inner whitespace runs.
func CleanDateString(dateStr string) string {
	return spaceRun.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// CompareDates compares the calendar days of two dates and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = time.Date(date1.Year(), date1.Month(), date1.Day(), 0, 0, 0, 0, time.UTC)
	date2 = time.Date(date2.Year(), date2.Month(), date2.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case date1.Before(date2):
		return -1
	case date1.After(date2):
		return 1
	default:
		return 0
	}
}

// InRange reports whether date lies within [start, end], both ends inclusive.
func InRange(date, start, end time.Time) bool {
	return CompareDates(date, start) >= 0 && CompareDates(date, end) <= 0
}
