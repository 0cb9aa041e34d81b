package utils

import (
	"strings"

	"github.com/ajxudir/qcfilter/pkg/constants"
)

// TrimAndSplit splits a comma-style flag value and drops empty parts.
//
// "" and "all" both mean no selection and return an empty slice.
//
// Parameters:
//   - s: The string to split
//   - sep: The separator to split on
//
// Returns:
//   - []string: Trimmed non-empty parts in input order
func TrimAndSplit(s string, sep string) []string {
	if s == "" || s == constants.FilterAll {
		return []string{}
	}

	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// FindIgnoreCase returns the element of slice equal to item ignoring case.
//
// Returns:
//   - string: The element as spelled in slice
//   - bool: false when nothing matches
func FindIgnoreCase(slice []string, item string) (string, bool) {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return s, true
		}
	}
	return "", false
}
