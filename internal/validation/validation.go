// Package validation holds small checks used when loading configuration.
package validation

import (
	"fmt"
	"strings"
)

// IsOneOf checks that value is one of allowed.
func IsOneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = "'" + a + "'"
	}
	return fmt.Errorf("invalid %s: %s (must be %s)", name, value, joinChoices(quoted))
}

// IsSingleRune checks that value is exactly one character and not one of forbidden.
func IsSingleRune(name, value string, forbidden ...rune) error {
	runes := []rune(value)
	if len(runes) != 1 {
		return fmt.Errorf("%s must be a single character, got: %q", name, value)
	}
	for _, f := range forbidden {
		if runes[0] == f {
			return fmt.Errorf("%s cannot be %q", name, value)
		}
	}
	return nil
}

func joinChoices(choices []string) string {
	switch len(choices) {
	case 0:
		return "nothing"
	case 1:
		return choices[0]
	default:
		return strings.Join(choices[:len(choices)-1], ", ") + " or " + choices[len(choices)-1]
	}
}
