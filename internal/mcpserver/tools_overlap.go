package mcpserver

import (
	"context"
	"strconv"

	"github.com/jazza72/fragtools/reassembler"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type overlapInput struct {
	A     string `json:"a"               jsonschema:"The fragment whose tail is checked"`
	B     string `json:"b"               jsonschema:"The fragment whose head is checked"`
	Merge bool   `json:"merge,omitempty" jsonschema:"Also return the merged string"`
}

type overlapOutput struct {
	Overlap int    `json:"overlap"`
	Merged  string `json:"merged,omitempty"`
	Summary string `json:"summary"`
}

func handleOverlap(_ context.Context, _ *mcp.CallToolRequest, input overlapInput) (*mcp.CallToolResult, overlapOutput, error) {
	output := overlapOutput{
		Overlap: reassembler.Overlap(input.A, input.B),
	}
	if input.Merge {
		output.Merged = reassembler.Merge(input.A, input.B, output.Overlap)
	}

	switch {
	case output.Overlap == 0:
		output.Summary = "The fragments do not overlap."
	default:
		output.Summary = "The fragments overlap by " + strconv.Itoa(output.Overlap) + " character"
		if output.Overlap != 1 {
			output.Summary += "s"
		}
		output.Summary += "."
	}
	return nil, output, nil
}
