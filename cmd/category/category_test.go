package category_test

import (
	"bytes"
	"errors"
	"testing"

	"fjacquet/expense-tracker/cmd/category"
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
	cmd.AddCommand(category.NewCommand())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCategoryCommand_AddAndList(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "category", "list")
	require.NoError(t, err)
	assert.Equal(t, "No categories found.\n", out)

	out, err = execute(t, dir, "category", "add", " Travel ")
	require.NoError(t, err)
	assert.Equal(t, "Category 'travel' added.\n", out)

	_, err = execute(t, dir, "category", "add", "TRAVEL")
	require.Error(t, err)
	assert.True(t, errors.Is(err, trackererror.ErrCategoryExists))
	assert.Contains(t, err.Error(), "category 'travel' already exists")

	out, err = execute(t, dir, "category", "list", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "- Category_name: travel\n", out)
}

func TestCategoryCommand_AddRequiresName(t *testing.T) {
	_, err := execute(t, t.TempDir(), "category", "add")
	assert.Error(t, err)

	_, err = execute(t, t.TempDir(), "category", "add", "  ")
	var validationErr *trackererror.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}
