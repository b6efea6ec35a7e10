package report

import (
	"strconv"

	"fjacquet/expense-tracker/internal/models"

	md "github.com/nao1215/markdown"
)

// Summary column headers, shared by every output format.
const (
	HeaderCategory     = "Category"
	HeaderMonth        = "Month"
	HeaderTotalExpense = "Total Expense"
	HeaderMetric       = "Metric"
	HeaderValue        = "Value"
	HeaderShare        = "Share %"
)

// Table is a rectangular result ready to be rendered.
type Table struct {
	Headers   []string
	Rows      [][]string
	Alignment []md.TableAlignment
}

// Records returns the rows keyed by header, the shape used by json and yaml output.
func (t Table) Records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		m := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(row) {
				m[h] = row[i]
			} else {
				m[h] = ""
			}
		}
		out = append(out, m)
	}
	return out
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// ExpensesTable lists expense rows with the stored column names.
func ExpensesTable(records []models.ExpenseRecord) Table {
	t := Table{
		Headers:   []string{models.HeaderDate, models.HeaderExpenseName, models.HeaderCategory, models.HeaderExpenseCost},
		Rows:      make([][]string, 0, len(records)),
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
	}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{r.Date, r.Name, r.Category, r.CostText})
	}
	return t
}

// CategoriesTable lists registered categories.
func CategoriesTable(categories []models.Category) Table {
	t := Table{
		Headers:   []string{models.HeaderCategoryName},
		Rows:      make([][]string, 0, len(categories)),
		Alignment: []md.TableAlignment{md.AlignLeft},
	}
	for _, c := range categories {
		t.Rows = append(t.Rows, []string{c.Name})
	}
	return t
}

// CategorySummaryTable shows per-category totals.
func CategorySummaryTable(totals []models.CategoryTotal) Table {
	t := Table{
		Headers:   []string{HeaderCategory, HeaderTotalExpense},
		Rows:      make([][]string, 0, len(totals)),
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	}
	for _, c := range totals {
		t.Rows = append(t.Rows, []string{c.Category, strconv.FormatInt(c.Total, 10)})
	}
	return t
}

// MonthSummaryTable shows per-month totals.
func MonthSummaryTable(totals []models.MonthTotal) Table {
	t := Table{
		Headers:   []string{HeaderMonth, HeaderTotalExpense},
		Rows:      make([][]string, 0, len(totals)),
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	}
	for _, m := range totals {
		t.Rows = append(t.Rows, []string{m.Month, strconv.FormatInt(m.Total, 10)})
	}
	return t
}

// OverviewTable shows count, total and average of a set of expenses.
func OverviewTable(o models.Overview) Table {
	return Table{
		Headers: []string{HeaderMetric, HeaderValue},
		Rows: [][]string{
			{"Expenses", strconv.Itoa(o.Count)},
			{"Total", strconv.FormatInt(o.Total, 10)},
			{"Average", o.Average.StringFixed(2)},
		},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	}
}

// ShareTable shows per-category totals with their share of the grand total.
// share computes the percentage label for one category.
func ShareTable(totals []models.CategoryTotal, grand int64, share func(part, whole int64) string) Table {
	t := Table{
		Headers:   []string{HeaderCategory, HeaderTotalExpense, HeaderShare},
		Rows:      make([][]string, 0, len(totals)),
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
	}
	for _, c := range totals {
		t.Rows = append(t.Rows, []string{c.Category, strconv.FormatInt(c.Total, 10), share(c.Total, grand)})
	}
	return t
}
