package categories

import (
	"errors"
	"path/filepath"
	"testing"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/store"
	"fjacquet/expense-tracker/internal/trackererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) (*Registry, *store.Store[models.Category]) {
	t.Helper()
	s := store.New[models.Category](filepath.Join(t.TempDir(), "categories.csv"), ',', logging.NewMockLogger())
	return NewRegistry(s, logging.NewMockLogger()), s
}

type failingStore struct{ err error }

func (f failingStore) Append(models.Category) error     { return f.err }
func (f failingStore) Load() ([]models.Category, error) { return nil, f.err }

func TestAutoRegister_IdempotentIgnoringCase(t *testing.T) {
	reg, s := newRegistry(t)

	added, err := reg.AutoRegister("Groceries")
	require.NoError(t, err)
	assert.True(t, added)

	for _, variant := range []string{"groceries", "GROCERIES", "  Groceries  "} {
		added, err = reg.AutoRegister(variant)
		require.NoError(t, err)
		assert.False(t, added, variant)
	}

	rows, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{Name: "groceries"}}, rows)
}

func TestAutoRegister_IgnoresEmptyName(t *testing.T) {
	reg, s := newRegistry(t)

	added, err := reg.AutoRegister("   ")
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, s.Exists())
}

func TestAdd(t *testing.T) {
	reg, _ := newRegistry(t)

	name, err := reg.Add(" Travel ")
	require.NoError(t, err)
	assert.Equal(t, "travel", name)

	_, err = reg.Add("TRAVEL")
	assert.True(t, errors.Is(err, trackererror.ErrCategoryExists))
	assert.Contains(t, err.Error(), "travel")

	_, err = reg.Add("")
	var validationErr *trackererror.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestNamesAndContains(t *testing.T) {
	reg, _ := newRegistry(t)
	for _, n := range []string{"rent", "food", "travel"} {
		_, err := reg.Add(n)
		require.NoError(t, err)
	}

	names, err := reg.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"rent", "food", "travel"}, names)

	ok, err := reg.Contains("Food")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = reg.Contains("fuel")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := reg.List()
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRegistry_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("disk gone")
	reg := NewRegistry(failingStore{err: boom}, nil)

	_, err := reg.AutoRegister("food")
	assert.ErrorIs(t, err, boom)

	_, err = reg.Names()
	assert.ErrorIs(t, err, boom)

	_, err = reg.Add("food")
	assert.ErrorIs(t, err, boom)
}
