package filter_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/expense-tracker/cmd/filter"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/trackererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cmd := root.NewCommand(container.WithLogger(logging.NewMockLogger()))
	cmd.AddCommand(filter.NewCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestFilterCommand(t *testing.T) {
	dir := t.TempDir()
	csv := "Date,Expense_name,Expense_category,Expense_cost\n" +
		"2024-01-01,jan,x,1\n" +
		"bad-date,broken,x,1\n" +
		"2024-02-29,leap,x,2\n" +
		"2024-03-01,mar,x,3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "record.csv"), []byte(csv), 0600))

	out, err := execute(t, dir, "filter", "--from", "2024-01-01", "--to", "2024-02-29", "-f", "json")
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "jan", rows[0]["Expense_name"])
	assert.Equal(t, "leap", rows[1]["Expense_name"])

	out, err = execute(t, dir, "filter", "--from", "2025-01-01", "--to", "2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, "No expenses found in this range.\n", out)
}

func TestFilterCommand_EmptyStore(t *testing.T) {
	out, err := execute(t, t.TempDir(), "filter", "--from", "2024-01-01", "--to", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "No expenses found in this range.\n", out)
}

func TestFilterCommand_InvalidRange(t *testing.T) {
	_, err := execute(t, t.TempDir(), "filter", "--from", "01/01/2024", "--to", "2024-12-31")

	var parseErr *trackererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "start date", parseErr.Field)

	_, err = execute(t, t.TempDir(), "filter", "--from", "2024-01-01")
	assert.Error(t, err)
}
