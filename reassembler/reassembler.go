package reassembler

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jazza72/fragtools/internal/stringutil"
)

// Reassembler reconstructs original lines of text from delimited fragment
// records.
//
// Concurrency: Reassembler instances are not safe for concurrent use.
// Create separate Reassembler instances for concurrent operations.
type Reassembler struct {
	// Delimiter separates fragments within a record. Defaults to ';' when
	// left as the zero value.
	Delimiter rune
	// TraceSteps records every merge performed during reassembly in
	// Result.Steps. Off by default; tracing allocates per merge.
	TraceSteps bool
	// MaxFragments limits the number of fragments accepted per record.
	// Zero means no limit.
	MaxFragments int
	// Logger receives debug-level merge events when set. Nil disables
	// logging.
	Logger *slog.Logger
}

// New creates a new Reassembler with the default configuration.
func New() *Reassembler {
	return &Reassembler{Delimiter: DefaultDelimiter}
}

// MergeStep describes one merge performed by the reassembly loop.
type MergeStep struct {
	// Iteration is the 1-based loop iteration that performed the merge.
	Iteration int `json:"iteration" yaml:"iteration"`
	// Prefix is the fragment whose tail overlapped.
	Prefix string `json:"prefix" yaml:"prefix"`
	// Suffix is the fragment whose head overlapped.
	Suffix string `json:"suffix" yaml:"suffix"`
	// Overlap is the number of overlapping characters.
	Overlap int `json:"overlap" yaml:"overlap"`
	// Merged is the fragment produced by the merge.
	Merged string `json:"merged" yaml:"merged"`
	// Remaining is the working-set size after the merge.
	Remaining int `json:"remaining" yaml:"remaining"`
}

// Stats contains statistical information about a reassembly.
type Stats struct {
	// FragmentCount is the number of non-empty fragments the record split
	// into.
	FragmentCount int `json:"fragment_count" yaml:"fragment_count"`
	// MergeCount is the number of merges performed.
	MergeCount int `json:"merge_count" yaml:"merge_count"`
	// MaxOverlap is the largest overlap used by any merge.
	MaxOverlap int `json:"max_overlap" yaml:"max_overlap"`
	// DroppedTokens is the number of empty tokens removed during record
	// splitting.
	DroppedTokens int `json:"dropped_tokens,omitempty" yaml:"dropped_tokens,omitempty"`
}

// Result contains the reconstructed text and metadata about the reassembly.
type Result struct {
	// Text is the reconstructed line.
	Text string `json:"text" yaml:"text"`
	// Complete reports whether the working set was reduced to a single
	// fragment. When false, Text holds the longest remaining fragment and
	// Leftover holds the rest.
	Complete bool `json:"complete" yaml:"complete"`
	// Leftover contains the fragments that could not be merged, in
	// length-descending order. Empty for complete reconstructions.
	Leftover []string `json:"leftover,omitempty" yaml:"leftover,omitempty"`
	// Stats contains statistical information about the reassembly.
	Stats Stats `json:"stats" yaml:"stats"`
	// Steps contains the merge trace when tracing is enabled.
	Steps []MergeStep `json:"steps,omitempty" yaml:"steps,omitempty"`
	// Elapsed is the wall-clock duration of the reassembly.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Reassemble reconstructs the original line of text from a delimited record
// of fragments.
//
// The loop repeatedly sorts the working set by descending fragment length,
// enumerates all pairwise overlaps, merges the pair with the largest overlap
// (ties favour the earliest candidate, and therefore the longer fragments),
// and replaces the pair with the merged fragment. Each iteration shrinks the
// working set by exactly one, so the loop terminates after at most N−1
// merges.
//
// Degenerate records are defined outcomes, not errors: a whitespace-only
// record is returned verbatim, a single-fragment record is returned as-is,
// and when no overlaps remain among multiple fragments the longest remaining
// fragment is returned with Complete set to false. The only error conditions
// are configuration limits such as MaxFragments.
func (r *Reassembler) Reassemble(record string) (*Result, error) {
	start := time.Now()

	delim := r.Delimiter
	if delim == 0 {
		delim = DefaultDelimiter
	}

	result := &Result{}

	// Whitespace-only records pass through verbatim, preserving the
	// original spacing.
	if stringutil.IsBlank(record) {
		result.Text = record
		result.Complete = true
		result.Elapsed = time.Since(start)
		return result, nil
	}

	working := SplitRecord(record, delim)
	result.Stats.FragmentCount = len(working)
	result.Stats.DroppedTokens = strings.Count(record, string(delim)) + 1 - len(working)

	// A record of nothing but delimiters splits to zero fragments. The
	// delimiters are structure, not data, so the reconstruction is empty.
	if len(working) == 0 {
		result.Text = ""
		result.Complete = true
		result.Elapsed = time.Since(start)
		return result, nil
	}

	if r.MaxFragments > 0 && len(working) > r.MaxFragments {
		return nil, fmt.Errorf("reassembler: record has %d fragments, maximum is %d", len(working), r.MaxFragments)
	}

	if len(working) == 1 {
		result.Text = working[0]
		result.Complete = true
		result.Elapsed = time.Since(start)
		return result, nil
	}

	iteration := 0
	for len(working) > 1 {
		// Longest fragments first, so overlap-length ties resolve toward
		// merging long fragments early. The sort must be stable to keep
		// tie-breaking deterministic across iterations.
		slices.SortStableFunc(working, func(a, b string) int {
			return len(b) - len(a)
		})

		candidates := EnumerateOverlaps(working)
		if len(candidates) == 0 {
			break
		}

		// First-encountered strict maximum: enumeration order follows the
		// length-descending sort, so equal overlaps favour earlier pairs.
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.Length > best.Length {
				best = c
			}
		}

		iteration++
		prefix, suffix := working[best.Prefix], working[best.Suffix]
		merged := Merge(prefix, suffix, best.Length)

		result.Stats.MergeCount++
		if best.Length > result.Stats.MaxOverlap {
			result.Stats.MaxOverlap = best.Length
		}
		if r.TraceSteps {
			result.Steps = append(result.Steps, MergeStep{
				Iteration: iteration,
				Prefix:    prefix,
				Suffix:    suffix,
				Overlap:   best.Length,
				Merged:    merged,
				Remaining: len(working) - 1,
			})
		}
		if r.Logger != nil {
			r.Logger.Debug("merged fragments",
				"iteration", iteration,
				"overlap", best.Length,
				"remaining", len(working)-1)
		}

		working = replacePair(working, best.Prefix, best.Suffix, merged)
	}

	// The working set is sorted by descending length, so on an incomplete
	// reconstruction the first element is the longest remaining fragment.
	result.Text = working[0]
	result.Complete = len(working) == 1
	if !result.Complete {
		result.Leftover = append(result.Leftover, working[1:]...)
	}
	result.Elapsed = time.Since(start)
	return result, nil
}

// replacePair removes the fragments at positions i and j and appends the
// merged fragment. Removal is by index rather than by value: duplicate
// fragment contents would make value-based removal ambiguous.
func replacePair(fragments []string, i, j int, merged string) []string {
	out := make([]string, 0, len(fragments)-1)
	for k, f := range fragments {
		if k == i || k == j {
			continue
		}
		out = append(out, f)
	}
	return append(out, merged)
}

// Reassemble reconstructs a record using the default configuration. It is
// the convenience form of (*Reassembler).Reassemble for callers that only
// need the reconstructed text.
func Reassemble(record string) string {
	result, err := New().Reassemble(record)
	if err != nil {
		// Unreachable: the default configuration has no limits to exceed.
		return record
	}
	return result.Text
}
