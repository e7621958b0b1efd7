// Package stringutil provides small string helpers shared across fragtools.
package stringutil

import (
	"strings"
	"unicode/utf8"
)

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Truncate shortens s to at most n runes, appending "..." when truncation
// occurs. Values of n below 3 are treated as 3 so the ellipsis always fits.
func Truncate(s string, n int) string {
	if n < 3 {
		n = 3
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}
