package models

import "strings"

// Category is one row of the category file.
type Category struct {
	Name string `csv:"Category_name" json:"name" yaml:"name"`
}

// NormalizeCategoryName is the canonical form categories are stored and compared in.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Matches compares the category with name, ignoring case and surrounding spaces.
func (c Category) Matches(name string) bool {
	return NormalizeCategoryName(c.Name) == NormalizeCategoryName(name)
}
