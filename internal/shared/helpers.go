// Package shared provides common utility functions used across multiple
// packages in the manifest-lint codebase.
package shared

import (
	"sort"
	"strings"
)

// NormalizePackageName lowercases a vendor/name package reference so
// lookups and deduplication are case-insensitive.
func NormalizePackageName(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// SortedKeys returns the keys of a string map in lexical order for
// deterministic iteration.
func SortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
