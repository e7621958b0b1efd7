package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/jazza72/fragtools/reassembler"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type splitInput struct {
	Record    string `json:"record"              jsonschema:"The delimited fragment record to split"`
	Delimiter string `json:"delimiter,omitempty" jsonschema:"Fragment delimiter character (default ';')"`
}

type splitOutput struct {
	Fragments []string `json:"fragments"`
	Count     int      `json:"count"`
	Dropped   int      `json:"dropped"`
	Summary   string   `json:"summary"`
}

func handleSplit(_ context.Context, _ *mcp.CallToolRequest, input splitInput) (*mcp.CallToolResult, splitOutput, error) {
	delim, ok := resolveDelimiter(input.Delimiter)
	if !ok {
		return errResult(fmt.Errorf("delimiter must be a single character, got %q", input.Delimiter)), splitOutput{}, nil
	}

	fragments := reassembler.SplitRecord(input.Record, delim)
	tokens := strings.Count(input.Record, string(delim)) + 1

	output := splitOutput{
		Fragments: fragments,
		Count:     len(fragments),
		Dropped:   tokens - len(fragments),
	}
	output.Summary = "Split into " + formatCount(output.Count, "fragment")
	if output.Dropped > 0 {
		output.Summary += ", dropping " + formatCount(output.Dropped, "empty token")
	}
	output.Summary += "."
	return nil, output, nil
}
