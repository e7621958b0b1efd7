package reassembler

import "strings"

// Overlap returns the number of trailing characters of a that line up with
// the head of b. A return of 0 indicates no usable overlap.
//
// The window of trailing characters grows while b still contains it
// anywhere. A partial tail match only qualifies when it sits at position 0
// of b; when the whole of a is contained in b the overlap is len(a)
// regardless of position, since merging then collapses a into b.
//
// Content-equal fragments and empty fragments yield 0: a fragment never
// overlaps itself, and the empty string carries no information.
//
// Lengths are byte counts, matching the slicing in Merge. On multi-byte
// UTF-8 input an overlap may therefore split a rune across the boundary;
// merging with the reported length still reproduces the original bytes.
func Overlap(a, b string) int {
	if a == b || a == "" || b == "" {
		return 0
	}

	// Largest k such that b contains the last k characters of a.
	k := 0
	for k < len(a) && strings.Contains(b, a[len(a)-k-1:]) {
		k++
	}
	if k == 0 {
		return 0
	}

	if k < len(a) && !strings.HasPrefix(b, a[len(a)-k:]) {
		return 0
	}
	return k
}
