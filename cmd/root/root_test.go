package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T, logger logging.Logger) (*cobra.Command, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cmd := root.NewCommand(container.WithLogger(logger))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	return cmd, &out, dir
}

func TestRootCommand_Metadata(t *testing.T) {
	cmd := root.NewCommand()

	assert.Equal(t, "expense-tracker", cmd.Use)
	assert.Contains(t, cmd.Short, "expenses")
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.PersistentPreRunE)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{"config", "log-level", "log-format", "data-dir", "report-dir"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCommand_RunsShellByDefault(t *testing.T) {
	logger := logging.NewMockLogger()
	cmd, out, dir := newRoot(t, logger)
	cmd.SetIn(strings.NewReader("3\nbooks\n10\n"))
	cmd.SetArgs([]string{"--data-dir", filepath.Join(dir, "data")})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "EXPENSE TRACKER MENU")
	assert.Contains(t, out.String(), "Category 'books' added.")
	assert.FileExists(t, filepath.Join(dir, "data", "categories.csv"))
	assert.True(t, logger.HasEntry("DEBUG", "Command starting"))
}

func TestRootCommand_ConfigFile(t *testing.T) {
	cmd, out, dir := newRoot(t, logging.NewMockLogger())
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("store:\n  directory: ledger\n  categories_file: cats.csv\n"), 0600))
	cmd.SetIn(strings.NewReader("3\nrent\n"))
	cmd.SetArgs([]string{"--config", cfgPath})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Category 'rent' added.")
	assert.FileExists(t, filepath.Join(dir, "ledger", "cats.csv"))
}

func TestRootCommand_InvalidOverride(t *testing.T) {
	cmd, _, _ := newRoot(t, logging.NewMockLogger())
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"--log-format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	cmd, _, dir := newRoot(t, logging.NewMockLogger())
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "absent.yaml")})

	assert.Error(t, cmd.Execute())
}

func TestContainer_NotInitialized(t *testing.T) {
	_, err := root.Container(&cobra.Command{})
	assert.EqualError(t, err, "application not initialized")
}
