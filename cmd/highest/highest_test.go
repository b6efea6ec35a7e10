package highest_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/expense-tracker/cmd/highest"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cmd := root.NewCommand(container.WithLogger(logging.NewMockLogger()))
	cmd.AddCommand(highest.NewCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestHighestCommand_FirstWinsTie(t *testing.T) {
	dir := t.TempDir()
	csv := "Date,Expense_name,Expense_category,Expense_cost\n2024-01-01,tv,home,500\n2024-01-02,sofa,home,500\n2024-01-03,pen,office,2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "record.csv"), []byte(csv), 0600))

	out, err := execute(t, dir, "highest", "--format", "json")
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "tv", rows[0]["Expense_name"])
}

func TestHighestCommand_Empty(t *testing.T) {
	out, err := execute(t, t.TempDir(), "highest")
	require.NoError(t, err)
	assert.Equal(t, "No expenses found.\n", out)
}
