// Package patch merges optional request fields over stored values for PATCH-style updates.
package patch

import "strings"

// Coalesce returns *ptr when the caller sent the field, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Text is Coalesce for free-text fields: a sent value is trimmed, so "  " clears the field.
func Text(ptr *string, fallback string) string {
	if ptr != nil {
		return strings.TrimSpace(*ptr)
	}
	return fallback
}
