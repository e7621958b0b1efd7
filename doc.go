// Package fragtools provides tools for reconstructing lines of text from
// unordered, overlapping fragments.
//
// Given a record of fragments joined by a delimiter character, fragtools
// reassembles the original line by repeatedly merging the pair of fragments
// with the greatest character overlap until a single fragment remains.
//
// # Overview
//
// The library consists of one primary package:
//
//   - reassembler: Detect overlaps, merge fragments, and reassemble records
//
// # Quick Start
//
// Reassemble a delimited record:
//
//	import "github.com/jazza72/fragtools/reassembler"
//
//	text := reassembler.Reassemble("O draconia;conian devil! Oh la;h lame sa;saint!")
//	fmt.Println(text) // O draconian devil! Oh lame saint!
//
// For statistics and a per-merge trace, use a Reassembler instance:
//
//	r := reassembler.New()
//	r.TraceSteps = true
//	result, err := r.Reassemble(record)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s (%d merges)\n", result.Text, result.Stats.MergeCount)
//
// # Reconstruction Semantics
//
// Reassembly is a greedy heuristic, not a shortest-superstring solver. Each
// iteration merges the globally best overlapping pair; ties are broken in
// favour of longer fragments. When no overlaps remain among multiple
// fragments, the longest remaining fragment is returned as a best-effort
// result rather than an error.
//
// Degenerate inputs are defined outcomes: whitespace-only records pass
// through verbatim, single-fragment records are returned as-is, and empty
// tokens produced by consecutive or trailing delimiters are dropped before
// reassembly begins.
//
// # Command-Line Interface
//
// In addition to the library, fragtools provides a command-line interface:
//
//	# Reassemble one record per input line
//	fragtools reassemble fragments.txt
//
//	# Inspect the overlap between two fragments
//	fragtools overlap ABCDEF DEFG
//
//	# Show how a record splits into fragments
//	fragtools split "all is well;ell that en;hat end;t ends well"
//
//	# Run the MCP server over stdio
//	fragtools mcp
//
// Install the CLI:
//
//	go install github.com/jazza72/fragtools/cmd/fragtools@latest
//
// # Performance
//
// The reassembly loop is O(N²·L) per iteration for N fragments of average
// length L, and runs at most N−1 iterations. Reassembler instances are not
// goroutine-safe; create separate instances for concurrent use. Individual
// records are independent, so calls are safe to parallelize at record
// granularity.
package fragtools
