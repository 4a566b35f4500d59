// Package enums holds the closed string sets shared by the domain packages.
package enums

import (
	"fmt"
	"slices"
	"strings"
)

func isOneOf[T ~string](valid []T, v T) bool {
	return slices.Contains(valid, v)
}

// parseOneOf accepts case and surrounding whitespace variations of a member.
func parseOneOf[T ~string](label string, valid []T, raw string) (T, error) {
	want := strings.ToLower(strings.TrimSpace(raw))
	for _, candidate := range valid {
		if string(candidate) == want {
			return candidate, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q", label, raw)
}
