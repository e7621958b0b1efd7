// Package reassembler reconstructs lines of text from unordered, overlapping
// fragments.
//
// A record is a sequence of fragments joined by a delimiter character
// (';' by default). The reassembler splits the record, then repeatedly merges
// the pair of fragments with the greatest character overlap until a single
// fragment remains. The algorithm is a greedy heuristic: it does not solve
// the shortest common superstring problem, but reconstructs typical
// fragmented text reliably.
//
// # Quick Start
//
// Reassemble a record with the default configuration:
//
//	text := reassembler.Reassemble("O draconia;conian devil! Oh la;h lame sa;saint!")
//	// text == "O draconian devil! Oh lame saint!"
//
// Use functional options for per-call configuration:
//
//	result, err := reassembler.ReassembleWithOptions(
//		reassembler.WithRecord(record),
//		reassembler.WithDelimiter('|'),
//		reassembler.WithTraceSteps(true),
//	)
//
// Or create a reusable Reassembler instance:
//
//	r := reassembler.New()
//	r.MaxFragments = 1000
//	result1, _ := r.Reassemble(record1)
//	result2, _ := r.Reassemble(record2)
//
// # Overlap Rules
//
// Overlap computes the longest run of trailing characters of the first
// fragment that lines up with the head of the second:
//
//	Overlap("ABCDEF", "DEFG")   == 3
//	Overlap("XYZABC", "ABCDEF") == 3
//	Overlap("BCDE", "ABCDEF")   == 4 // whole fragment contained in the other
//	Overlap("ABCDEF", "XDEFZ")  == 0 // tail match not at the head of b
//
// A partial tail match only counts when it sits at the very start of the
// second fragment; this prevents spurious merges when a short run happens to
// occur somewhere inside another fragment. When the entire first fragment is
// contained in the second, the overlap is its full length regardless of
// position, since merging then simply discards the redundant fragment.
//
// # Degenerate Inputs
//
// Degenerate records are defined outcomes, never errors: whitespace-only
// records are returned verbatim, single-fragment records are returned as-is,
// and when no overlaps remain among multiple fragments the longest remaining
// fragment is returned with Result.Complete == false.
//
// # Concurrency
//
// Reassembler instances are not safe for concurrent use. Create separate
// instances for concurrent operations; individual records are independent.
package reassembler
