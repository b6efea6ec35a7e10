package shell

import (
	"errors"
	"strconv"

	"fjacquet/expense-tracker/internal/aggregator"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/trackererror"
)

// fail reports an operation error on the console and in the log. End of input
// is passed through so the session can stop.
func (s *Shell) fail(prefix string, err error) error {
	if errors.Is(err, errInputClosed) {
		return err
	}

	var storeErr *trackererror.StoreError
	if errors.As(err, &storeErr) {
		s.logger.WithError(err).Error(prefix, logging.F(logging.FieldFile, storeErr.Path))
	} else {
		s.logger.WithError(err).Debug(prefix)
	}
	s.printf("%s: %v\n", prefix, err)
	return nil
}

func (s *Shell) addExpense() error {
	s.println("ADDING A NEW EXPENSE:")

	name, err := s.prompt("Enter Expense Name >>>")
	if err != nil {
		return err
	}
	costText, err := s.prompt("Enter Cost of the Expense >>>")
	if err != nil {
		return err
	}
	cost, err := strconv.ParseInt(costText, 10, 64)
	if err != nil {
		s.println("Invalid cost entered. Please enter a number.")
		return nil
	}

	categories, err := s.categories.List()
	if err != nil {
		return s.fail("Error adding new record", err)
	}
	if len(categories) > 0 {
		s.println("Choose from the following Categories or add a new category:")
		if err := s.show(report.CategoriesTable(categories)); err != nil {
			return s.fail("Error adding new record", err)
		}
	}
	category, err := s.prompt("Enter category name >>>")
	if err != nil {
		return err
	}

	date, err := s.askDate()
	if err != nil {
		return err
	}

	added, err := s.ledger.Add(models.Expense{Date: date, Name: name, Category: category, Cost: cost})
	var dup *trackererror.DuplicateError
	switch {
	case errors.As(err, &dup):
		s.printf("Duplicate record! Expense '%s' already exists on %s.\n", dup.Name, dup.Date)
		return nil
	case err != nil:
		return s.fail("Error adding new record", err)
	}

	s.logger.Debug("Expense added from shell", logging.F(logging.FieldExpense, added.Name))
	s.println("Expense record added successfully!")
	return nil
}

// askDate offers today or a custom date. A custom date is asked again until it
// parses; any answer other than 2 means today.
func (s *Shell) askDate() (string, error) {
	s.println("")
	s.println("Date Options:")
	s.println("1. Use today's date")
	s.println("2. Enter custom date")
	choice, err := s.prompt("Choose date option (1 or 2): ")
	if err != nil {
		return "", err
	}
	if choice != "2" {
		return s.ledger.Today(), nil
	}

	for {
		custom, err := s.prompt("Enter date (YYYY-MM-DD format): ")
		if err != nil {
			return "", err
		}
		if dateutils.IsValidDate(custom) {
			return dateutils.CleanDateString(custom), nil
		}
		s.println("Invalid date format. Please use YYYY-MM-DD (e.g., 2024-12-25)")
	}
}

func (s *Shell) viewExpenses() error {
	records, err := s.ledger.List()
	if err != nil {
		return s.fail("Error displaying data", err)
	}
	table := report.ExpensesTable(records)
	if table.Empty() {
		s.println("No expenses found.")
		return nil
	}
	if err := s.show(table); err != nil {
		return s.fail("Error displaying data", err)
	}
	return nil
}

func (s *Shell) addCategory() error {
	name, err := s.prompt("Add new category>>")
	if err != nil {
		return err
	}

	added, err := s.categories.Add(name)
	switch {
	case errors.Is(err, trackererror.ErrCategoryExists):
		s.printf("Category '%s' already exists.\n", models.NormalizeCategoryName(name))
		return nil
	case err != nil:
		return s.fail("Error adding category", err)
	}
	s.printf("Category '%s' added.\n", added)
	return nil
}

func (s *Shell) viewCategories() error {
	categories, err := s.categories.List()
	if err != nil {
		return s.fail("Error getting categories", err)
	}
	table := report.CategoriesTable(categories)
	if table.Empty() {
		s.println("No categories found.")
		return nil
	}
	s.println("Available Categories:")
	if err := s.show(table); err != nil {
		return s.fail("Error getting categories", err)
	}
	s.clear()
	return nil
}

func (s *Shell) deleteAll() error {
	ok, err := s.confirm("Are you sure you want to delete all records? Type 'yes' to confirm: ", "yes")
	if err != nil {
		return err
	}
	if !ok {
		s.println("Deletion cancelled.")
		return nil
	}

	removed, err := s.ledger.Purge()
	if err != nil {
		return s.fail("Error deleting records", err)
	}
	if removed {
		s.printf("All records deleted from %s.\n", s.opts.ExpensesFile)
	} else {
		s.printf("No records found to delete in %s.\n", s.opts.ExpensesFile)
	}
	return nil
}

func (s *Shell) summaryByCategory() error {
	records, err := s.ledger.List()
	if err != nil {
		return s.fail("Error generating summary", err)
	}
	if len(records) == 0 {
		s.println("No expenses found.")
		return nil
	}
	totals, err := aggregator.ByCategory(records)
	if err != nil {
		return s.fail("Error generating summary", err)
	}
	return s.showAndOfferSave(report.CategorySummaryTable(totals), s.opts.CategorySummaryFile)
}

func (s *Shell) summaryByMonth() error {
	records, err := s.ledger.List()
	if err != nil {
		return s.fail("Error generating summary", err)
	}
	if len(records) == 0 {
		s.println("No expenses found.")
		return nil
	}
	totals, err := aggregator.ByMonth(records)
	if err != nil {
		return s.fail("Error generating summary", err)
	}
	return s.showAndOfferSave(report.MonthSummaryTable(totals), s.opts.MonthSummaryFile)
}

func (s *Shell) showAndOfferSave(t report.Table, filename string) error {
	if err := s.show(t); err != nil {
		return s.fail("Error generating summary", err)
	}

	save, err := s.confirm("Save summary to file? (y/n): ", "y")
	if err != nil {
		return err
	}
	if !save {
		return nil
	}
	path, err := s.reports.Save(t, filename)
	if err != nil {
		return s.fail("Error generating summary", err)
	}
	s.printf("Summary saved to %s\n", path)
	return nil
}

func (s *Shell) highest() error {
	records, err := s.ledger.List()
	if err != nil {
		return s.fail("Error finding highest expense", err)
	}
	top, err := aggregator.Highest(records)
	switch {
	case errors.Is(err, trackererror.ErrNoExpenses):
		s.println("No expenses found.")
		return nil
	case err != nil:
		return s.fail("Error finding highest expense", err)
	}

	s.println("")
	s.println("Highest Single Expense:")
	if err := s.show(report.ExpensesTable([]models.ExpenseRecord{top})); err != nil {
		return s.fail("Error finding highest expense", err)
	}
	return nil
}

func (s *Shell) filterByDateRange() error {
	records, err := s.ledger.List()
	if err != nil {
		return s.fail("Error filtering by date range", err)
	}
	if len(records) == 0 {
		s.println("No expenses found.")
		return nil
	}

	start, err := s.prompt("Enter start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := s.prompt("Enter end date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	from, to, err := aggregator.ParseRange(start, end)
	if err != nil {
		s.logger.WithError(err).Debug("Rejected date range")
		s.println("Invalid date format.")
		return nil
	}

	table := report.ExpensesTable(aggregator.FilterByDateRange(records, from, to))
	if table.Empty() {
		s.println("No expenses found in this range.")
		return nil
	}
	s.println("")
	s.println("Expenses in selected date range:")
	if err := s.show(table); err != nil {
		return s.fail("Error filtering by date range", err)
	}
	return nil
}
