package add_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/expense-tracker/cmd/add"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/trackererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	clock := func() time.Time { return time.Date(2024, time.August, 2, 9, 0, 0, 0, time.UTC) }
	cmd := root.NewCommand(
		container.WithLogger(logging.NewMockLogger()),
		container.WithLedgerOptions(ledger.WithClock(clock)),
	)
	cmd.AddCommand(add.NewCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAddCommand_Metadata(t *testing.T) {
	cmd := add.NewCommand()
	assert.Equal(t, "add", cmd.Use)
	for _, name := range []string{"name", "cost", "category", "date"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestAddCommand_Records(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "add", "--name", "Coffee", "--cost", "4", "--category", "Food", "--date", "2024-07-30")
	require.NoError(t, err)
	assert.Contains(t, out, "Expense record added successfully! 2024-07-30 coffee (food) 4")

	data, err := os.ReadFile(filepath.Join(dir, "record.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Date,Expense_name,Expense_category,Expense_cost\n2024-07-30,coffee,food,4\n", string(data))

	cats, err := os.ReadFile(filepath.Join(dir, "categories.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Category_name\nfood\n", string(cats))
}

func TestAddCommand_DefaultsToToday(t *testing.T) {
	out, err := execute(t, t.TempDir(), "add", "-n", "bus", "-c", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-08-02 bus (Uncategorized) 3")
}

func TestAddCommand_Duplicate(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "add", "--name", "rent", "--cost", "900", "--date", "2024-07-01")
	require.NoError(t, err)

	_, err = execute(t, dir, "add", "--name", "Rent", "--cost", "950", "--date", "2024-07-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, trackererror.ErrDuplicateExpense))
}

func TestAddCommand_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing cost", []string{"add", "--name", "x"}, `required flag(s) "cost" not set`},
		{"negative cost", []string{"add", "--name", "x", "--cost", "-1"}, "invalid cost"},
		{"bad date", []string{"add", "--name", "x", "--cost", "1", "--date", "yesterday"}, "invalid date"},
		{"non-numeric cost", []string{"add", "--name", "x", "--cost", "ten"}, "invalid argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, t.TempDir(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
