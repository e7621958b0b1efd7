package mcpserver

import (
	"context"
	"fmt"

	"github.com/jazza72/fragtools/internal/stringutil"
	"github.com/jazza72/fragtools/reassembler"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type reassembleInput struct {
	Record    string `json:"record,omitempty"    jsonschema:"A single delimited fragment record to reassemble"`
	File      string `json:"file,omitempty"      jsonschema:"Path to a file with one fragment record per line"`
	Delimiter string `json:"delimiter,omitempty" jsonschema:"Fragment delimiter character (default ';')"`
	Trace     bool   `json:"trace,omitempty"     jsonschema:"Include the individual merge steps for each record"`
}

type mergeStep struct {
	Iteration int    `json:"iteration"`
	Prefix    string `json:"prefix"`
	Suffix    string `json:"suffix"`
	Overlap   int    `json:"overlap"`
	Merged    string `json:"merged"`
}

type recordResult struct {
	Line       int         `json:"line"`
	Text       string      `json:"text"`
	Complete   bool        `json:"complete"`
	Fragments  int         `json:"fragments"`
	Merges     int         `json:"merges"`
	MaxOverlap int         `json:"max_overlap"`
	Leftover   []string    `json:"leftover,omitempty"`
	Steps      []mergeStep `json:"steps,omitempty"`
	// StepsTruncated is set when the merge trace was capped by
	// FRAGTOOLS_TRACE_LIMIT.
	StepsTruncated bool `json:"steps_truncated,omitempty"`
}

type reassembleOutput struct {
	Records    int            `json:"records"`
	Incomplete int            `json:"incomplete"`
	Results    []recordResult `json:"results"`
	Summary    string         `json:"summary"`
}

func handleReassemble(_ context.Context, _ *mcp.CallToolRequest, input reassembleInput) (*mcp.CallToolResult, reassembleOutput, error) {
	records, err := resolveRecords(input.Record, input.File)
	if err != nil {
		return errResult(err), reassembleOutput{}, nil
	}

	delim, ok := resolveDelimiter(input.Delimiter)
	if !ok {
		return errResult(fmt.Errorf("delimiter must be a single character, got %q", input.Delimiter)), reassembleOutput{}, nil
	}

	r := reassembler.New()
	r.Delimiter = delim
	r.TraceSteps = input.Trace
	r.MaxFragments = cfg.MaxFragments

	output := reassembleOutput{
		Records: len(records),
		Results: make([]recordResult, 0, len(records)),
	}
	for i, record := range records {
		result, err := r.Reassemble(record)
		if err != nil {
			return errResult(fmt.Errorf("record %d: %w", i+1, err)), reassembleOutput{}, nil
		}

		rr := recordResult{
			Line:       i + 1,
			Text:       result.Text,
			Complete:   result.Complete,
			Fragments:  result.Stats.FragmentCount,
			Merges:     result.Stats.MergeCount,
			MaxOverlap: result.Stats.MaxOverlap,
			Leftover:   result.Leftover,
		}
		if !result.Complete {
			output.Incomplete++
		}
		if input.Trace {
			steps := result.Steps
			if len(steps) > cfg.TraceLimit {
				steps = steps[:cfg.TraceLimit]
				rr.StepsTruncated = true
			}
			rr.Steps = make([]mergeStep, 0, len(steps))
			for _, s := range steps {
				rr.Steps = append(rr.Steps, mergeStep{
					Iteration: s.Iteration,
					Prefix:    s.Prefix,
					Suffix:    s.Suffix,
					Overlap:   s.Overlap,
					Merged:    s.Merged,
				})
			}
		}
		output.Results = append(output.Results, rr)
	}

	output.Summary = buildReassembleSummary(output)
	return nil, output, nil
}

func buildReassembleSummary(output reassembleOutput) string {
	summary := "Reassembled " + formatCount(output.Records, "record")
	if output.Incomplete > 0 {
		summary += " (" + formatCount(output.Incomplete, "incomplete reconstruction") + ")"
	}
	if output.Records == 1 {
		summary += fmt.Sprintf(": %q", stringutil.Truncate(output.Results[0].Text, 80))
	}
	summary += "."
	return summary
}
