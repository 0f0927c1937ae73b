package text

import "strings"

// CollapseSpaces replaces each run of whitespace in a string with a single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveTrailingSpaces removes leading and trailing whitespace of a string.
func RemoveTrailingSpaces(s string) string {
	return strings.Trim(s, " \t\n")
}

// Normalize removes
// 1) leading and trailing whitespace
// 2) internal runs of whitespace
// from a corpus line.
func Normalize(s string) string {
	s = RemoveTrailingSpaces(s)
	s = CollapseSpaces(s)
	return s
}
