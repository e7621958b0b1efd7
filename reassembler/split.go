package reassembler

import "strings"

// DefaultDelimiter separates fragments within a record.
const DefaultDelimiter = ';'

// SplitRecord splits a delimited record into its fragments, dropping the
// empty tokens produced by consecutive or trailing delimiters. Empty
// fragments carry no information and trivially overlap everything at length
// zero, so they are removed before the working set is used.
//
// Whitespace-only fragments are preserved: they are data, not artifacts of
// the delimiter.
func SplitRecord(record string, delim rune) []string {
	parts := strings.Split(record, string(delim))
	fragments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		fragments = append(fragments, p)
	}
	return fragments
}
