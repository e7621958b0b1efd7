package reassembler

// Candidate records a potential merge between two fragments of a working
// set. Prefix and Suffix index into the fragment slice the candidate was
// enumerated from; Length is the number of overlapping characters.
//
// Candidates are ephemeral: they are enumerated fresh on every reassembly
// iteration and become stale as soon as the working set changes.
type Candidate struct {
	Prefix int
	Suffix int
	Length int
}

// EnumerateOverlaps computes all pairwise overlap candidates among the given
// fragments. Every ordered pair of distinct positions is considered; a
// candidate is included only when its overlap length is greater than zero.
// Returns nil when no pair overlaps.
//
// Candidates refer to fragments by index rather than by value so that
// duplicate fragment contents remain unambiguous for the caller.
//
// The enumeration is a brute-force O(N²) double loop over the working set.
// Callers depend only on this function's signature, so a smarter overlap
// index could replace the implementation without touching the reassembly
// loop.
func EnumerateOverlaps(fragments []string) []Candidate {
	var candidates []Candidate
	for i, outer := range fragments {
		for j, inner := range fragments {
			if i == j {
				continue
			}
			if n := Overlap(outer, inner); n > 0 {
				candidates = append(candidates, Candidate{Prefix: i, Suffix: j, Length: n})
			}
		}
	}
	return candidates
}
