// Package aggregator computes summaries over the loaded expense rows.
//
// All functions are pure: they take the rows as loaded by the store and never
// touch the filesystem. A row whose cost cannot be parsed aborts the
// aggregation with a *trackererror.ParseError.
package aggregator

import (
	"time"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/trackererror"

	"github.com/shopspring/decimal"
)

// ByCategory sums costs per category. Rows without a category are counted
// under models.CategoryUncategorized. Categories appear in the order they are
// first met.
func ByCategory(records []models.ExpenseRecord) ([]models.CategoryTotal, error) {
	totals := make([]models.CategoryTotal, 0)
	index := make(map[string]int)

	for _, r := range records {
		cost, err := r.Cost()
		if err != nil {
			return nil, err
		}
		key := r.CategoryOrDefault()
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, models.CategoryTotal{Category: key})
		}
		totals[i].Total += cost
	}
	return totals, nil
}

// ByMonth sums costs per YYYY-MM month. Rows with an unparseable date are
// counted under models.MonthUnknown.
func ByMonth(records []models.ExpenseRecord) ([]models.MonthTotal, error) {
	totals := make([]models.MonthTotal, 0)
	index := make(map[string]int)

	for _, r := range records {
		cost, err := r.Cost()
		if err != nil {
			return nil, err
		}
		key := models.MonthUnknown
		if date, err := dateutils.ParseDate(r.Date); err == nil {
			key = dateutils.MonthKey(date)
		}
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, models.MonthTotal{Month: key})
		}
		totals[i].Total += cost
	}
	return totals, nil
}

// Highest returns the most expensive row. On a tie the earliest row wins.
func Highest(records []models.ExpenseRecord) (models.ExpenseRecord, error) {
	if len(records) == 0 {
		return models.ExpenseRecord{}, trackererror.ErrNoExpenses
	}

	best := records[0]
	bestCost, err := best.Cost()
	if err != nil {
		return models.ExpenseRecord{}, err
	}
	for _, r := range records[1:] {
		cost, err := r.Cost()
		if err != nil {
			return models.ExpenseRecord{}, err
		}
		if cost > bestCost {
			best, bestCost = r, cost
		}
	}
	return best, nil
}

// ParseRange parses the two boundaries of a date filter.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	from, err := dateutils.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, &trackererror.ParseError{Field: "start date", Value: start, Err: err}
	}
	to, err := dateutils.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, &trackererror.ParseError{Field: "end date", Value: end, Err: err}
	}
	return from, to, nil
}

// FilterByDateRange keeps the rows dated within [start, end], both ends
// included. Rows with an unparseable date are skipped. An inverted range
// matches nothing.
func FilterByDateRange(records []models.ExpenseRecord, start, end time.Time) []models.ExpenseRecord {
	filtered := make([]models.ExpenseRecord, 0)
	for _, r := range records {
		date, err := dateutils.ParseDate(r.Date)
		if err != nil {
			continue
		}
		if dateutils.InRange(date, start, end) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Summarize returns the count, total and mean cost of records. The mean is
// rounded to two places; it is zero when there are no records.
func Summarize(records []models.ExpenseRecord) (models.Overview, error) {
	overview := models.Overview{Average: decimal.Zero}
	for _, r := range records {
		cost, err := r.Cost()
		if err != nil {
			return models.Overview{}, err
		}
		overview.Count++
		overview.Total += cost
	}
	if overview.Count > 0 {
		overview.Average = decimal.NewFromInt(overview.Total).
			DivRound(decimal.NewFromInt(int64(overview.Count)), 2)
	}
	return overview, nil
}

// Share returns part as a percentage of whole, rounded to one place.
func Share(part, whole int64) string {
	if whole == 0 {
		return "0.0"
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(whole), 1).
		StringFixed(1)
}
