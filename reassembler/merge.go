package reassembler

import "fmt"

// Merge joins two fragments using a known overlap length: the characters of
// prefix minus its trailing overlap, followed by the whole of suffix.
//
//	Merge("ABCDEF", "DEFG", 3) == "ABCDEFG"
//	Merge("ABCDEF", "XCDEZ", 0) == "ABCDEFXCDEZ"
//
// The overlap must be a value produced by Overlap for the same pair; an
// overlap outside [0, len(prefix)] indicates a defect in the caller and
// panics rather than returning a recoverable error.
func Merge(prefix, suffix string, overlap int) string {
	if overlap < 0 || overlap > len(prefix) {
		panic(fmt.Sprintf("reassembler: merge overlap %d out of range for %d-character prefix", overlap, len(prefix)))
	}
	return prefix[:len(prefix)-overlap] + suffix
}
