// Package categories keeps the list of known expense categories in its own
// single-column store.
package categories

import (
	"fmt"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/trackererror"
)

// RecordStore is the subset of store.Store the registry needs.
type RecordStore interface {
	Append(record models.Category) error
	Load() ([]models.Category, error)
}

// Registry holds unique category names, compared case-insensitively.
type Registry struct {
	store  RecordStore
	logger logging.Logger
}

// NewRegistry creates a Registry on top of store.
func NewRegistry(store RecordStore, logger logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	return &Registry{
		store:  store,
		logger: logger.WithField(logging.FieldStore, "categories"),
	}
}

// List returns every registered category in insertion order.
func (r *Registry) List() ([]models.Category, error) {
	return r.store.Load()
}

// Names returns the registered category names in insertion order.
func (r *Registry) Names() ([]string, error) {
	cats, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names, nil
}

// Contains reports whether name is registered, ignoring case.
func (r *Registry) Contains(name string) (bool, error) {
	cats, err := r.store.Load()
	if err != nil {
		return false, err
	}
	for _, c := range cats {
		if c.Matches(name) {
			return true, nil
		}
	}
	return false, nil
}

// AutoRegister adds name if no category matches it yet. It reports whether a
// row was written. Empty names are ignored.
func (r *Registry) AutoRegister(name string) (bool, error) {
	normalized := models.NormalizeCategoryName(name)
	if normalized == "" {
		return false, nil
	}

	exists, err := r.Contains(normalized)
	if err != nil || exists {
		return false, err
	}

	if err := r.store.Append(models.Category{Name: normalized}); err != nil {
		return false, err
	}
	r.logger.Info("Registered new category", logging.F(logging.FieldCategory, normalized))
	return true, nil
}

// Add registers name on explicit user request. A name that is already known
// yields ErrCategoryExists.
func (r *Registry) Add(name string) (string, error) {
	normalized := models.NormalizeCategoryName(name)
	if normalized == "" {
		return "", &trackererror.ValidationError{Field: "category", Reason: "name must not be empty"}
	}

	added, err := r.AutoRegister(normalized)
	if err != nil {
		return normalized, err
	}
	if !added {
		return normalized, fmt.Errorf("category '%s': %w", normalized, trackererror.ErrCategoryExists)
	}
	return normalized, nil
}
