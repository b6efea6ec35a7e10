// Package shell implements the interactive numbered menu of the expense
// tracker. It reads answers line by line from an io.Reader and writes prompts
// and results to an io.Writer, so it runs the same against a console or a
// scripted test.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"
)

// Ledger records and lists expenses.
type Ledger interface {
	Add(expense models.Expense) (models.Expense, error)
	List() ([]models.ExpenseRecord, error)
	Purge() (bool, error)
	Today() string
}

// Categories manages the category registry.
type Categories interface {
	Add(name string) (string, error)
	List() ([]models.Category, error)
}

// Reporter prints and saves tables.
type Reporter interface {
	Print(w io.Writer, t report.Table, format string) error
	Save(t report.Table, filename string) (string, error)
}

// Options holds the file names the shell mentions or writes.
type Options struct {
	ExpensesFile        string
	CategorySummaryFile string
	MonthSummaryFile    string
	ClearScreen         bool
}

const (
	menuRule     = "========================================"
	clearSeq     = "\033[H\033[2J"
	goodbye      = "Thank you for using Expense Tracker! Goodbye!"
	invalidEntry = "Invalid choice. Please enter a number between 1-10."
	tooLong      = "Input too long, operation cancelled."

	// maxLineLength bounds one answer; longer lines are discarded whole.
	maxLineLength = 64 * 1024
)

var menuItems = []string{
	"Add new expense",
	"View all expenses",
	"Add new category",
	"View all categories",
	"Delete All records",
	"Summary by Category",
	"Summary by Month",
	"Highest Single Expense",
	"Filter Expenses by Date Range",
	"Exit",
}

var (
	// errInputClosed ends the session when the reader is exhausted mid-prompt.
	errInputClosed = errors.New("input closed")
	// errLineTooLong cancels the current operation only.
	errLineTooLong = errors.New("input line too long")
)

// Shell is one interactive session.
type Shell struct {
	ledger     Ledger
	categories Categories
	reports    Reporter
	opts       Options
	in         *bufio.Reader
	out        io.Writer
	logger     logging.Logger
}

// New creates a Shell reading from in and writing to out.
func New(ledger Ledger, categories Categories, reports Reporter, opts Options, in io.Reader, out io.Writer, logger logging.Logger) *Shell {
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	if opts.ExpensesFile == "" {
		opts.ExpensesFile = "record.csv"
	}
	if opts.CategorySummaryFile == "" {
		opts.CategorySummaryFile = "category_summary.txt"
	}
	if opts.MonthSummaryFile == "" {
		opts.MonthSummaryFile = "monthly_summary.txt"
	}
	return &Shell{
		ledger:     ledger,
		categories: categories,
		reports:    reports,
		opts:       opts,
		in:         bufio.NewReader(in),
		out:        out,
		logger:     logger.WithField("component", "shell"),
	}
}

// Run shows the menu until the user exits, the input ends or ctx is done.
// Failed operations are reported and the menu is shown again.
func (s *Shell) Run(ctx context.Context) error {
	s.println("Welcome to Expense Tracker!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.prompt("Enter your choice (1-10): ")
		if errors.Is(err, errLineTooLong) {
			s.rejectLine()
			continue
		}
		if err != nil {
			return s.closed(err)
		}
		s.logger.Debug("Menu choice", logging.F(logging.FieldChoice, choice))

		done, err := s.dispatch(choice)
		if err != nil {
			return s.closed(err)
		}
		if done {
			return nil
		}
	}
}

func (s *Shell) dispatch(choice string) (bool, error) {
	var err error
	switch choice {
	case "1":
		err = s.addExpense()
		s.clear()
	case "2":
		err = s.viewExpenses()
	case "3":
		err = s.addCategory()
		s.clear()
	case "4":
		err = s.viewCategories()
	case "5":
		err = s.deleteAll()
		s.clear()
	case "6":
		err = s.summaryByCategory()
	case "7":
		err = s.summaryByMonth()
	case "8":
		err = s.highest()
	case "9":
		err = s.filterByDateRange()
	case "10":
		s.println(goodbye)
		s.clear()
		return true, nil
	default:
		s.println(invalidEntry)
	}
	if errors.Is(err, errLineTooLong) {
		s.rejectLine()
		return false, nil
	}
	return false, err
}

func (s *Shell) rejectLine() {
	s.logger.Warn("Discarded oversized input line", logging.F("limit", maxLineLength))
	s.println("")
	s.println(tooLong)
}

// closed turns end of input into a clean exit.
func (s *Shell) closed(err error) error {
	if errors.Is(err, errInputClosed) {
		s.logger.Debug("Input closed, leaving shell")
		s.println("")
		return nil
	}
	return err
}

func (s *Shell) printMenu() {
	s.println("")
	s.println(menuRule)
	s.println("EXPENSE TRACKER MENU")
	s.println(menuRule)
	for i, item := range menuItems {
		s.printf("%d. %s\n", i+1, item)
	}
	s.println(menuRule)
}

// prompt writes label and reads one trimmed line.
func (s *Shell) prompt(label string) (string, error) {
	s.printf("%s", label)
	return s.readLine()
}

// readLine returns the next line without its terminator. A line longer than
// maxLineLength is consumed up to its newline and reported as errLineTooLong.
func (s *Shell) readLine() (string, error) {
	var line []byte
	discarding := false
	for {
		chunk, err := s.in.ReadSlice('\n')
		if !discarding {
			line = append(line, chunk...)
			if len(line) > maxLineLength {
				discarding = true
				line = nil
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(line) == 0 && !discarding {
				return "", errInputClosed
			}
		default:
			return "", fmt.Errorf("reading input: %w", err)
		}

		if discarding {
			return "", errLineTooLong
		}
		return strings.TrimSpace(string(line)), nil
	}
}

func (s *Shell) confirm(label, want string) (bool, error) {
	answer, err := s.prompt(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, want), nil
}

func (s *Shell) show(t report.Table) error {
	return s.reports.Print(s.out, t, "")
}

func (s *Shell) clear() {
	if s.opts.ClearScreen {
		s.printf("%s", clearSeq)
	}
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
