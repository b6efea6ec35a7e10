package purge_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/expense-tracker/cmd/purge"
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
	cmd.AddCommand(purge.NewCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPurgeCommand(t *testing.T) {
	dir := t.TempDir()
	records := filepath.Join(dir, "record.csv")
	categories := filepath.Join(dir, "categories.csv")
	require.NoError(t, os.WriteFile(records, []byte("Date,Expense_name,Expense_category,Expense_cost\n2024-01-01,a,b,1\n"), 0600))
	require.NoError(t, os.WriteFile(categories, []byte("Category_name\nb\n"), 0600))

	_, err := execute(t, dir, "purge")
	assert.ErrorIs(t, err, purge.ErrNotConfirmed)
	assert.FileExists(t, records)

	out, err := execute(t, dir, "purge", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "All records deleted from record.csv.\n", out)
	assert.NoFileExists(t, records)
	assert.FileExists(t, categories)

	out, err = execute(t, dir, "purge", "-y")
	require.NoError(t, err)
	assert.Equal(t, "No records found to delete in record.csv.\n", out)
}
