package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReassembleTool_Record(t *testing.T) {
	input := reassembleInput{
		Record: "O draconia;conian devil! Oh la;h lame sa;saint!",
	}
	result, output, err := handleReassemble(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 1, output.Records)
	assert.Zero(t, output.Incomplete)
	require.Len(t, output.Results, 1)

	rr := output.Results[0]
	assert.Equal(t, 1, rr.Line)
	assert.Equal(t, "O draconian devil! Oh lame saint!", rr.Text)
	assert.True(t, rr.Complete)
	assert.Equal(t, 4, rr.Fragments)
	assert.Equal(t, 3, rr.Merges)
	assert.Empty(t, rr.Steps)
	assert.Contains(t, output.Summary, "1 record")
}

func TestReassembleTool_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	content := "ABCDEF;DEFG\nva technical;I really lo; tests!; love doing Jav;\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	input := reassembleInput{File: path}
	result, output, err := handleReassemble(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 2, output.Records)
	assert.Equal(t, 1, output.Incomplete)
	require.Len(t, output.Results, 2)
	assert.Equal(t, "ABCDEFG", output.Results[0].Text)
	assert.Equal(t, "I really love doing Java technical", output.Results[1].Text)
	assert.False(t, output.Results[1].Complete)
	assert.Equal(t, []string{" tests!"}, output.Results[1].Leftover)
	assert.Contains(t, output.Summary, "incomplete")
}

func TestReassembleTool_Trace(t *testing.T) {
	input := reassembleInput{
		Record: "ABCDEF;DEFG",
		Trace:  true,
	}
	_, output, err := handleReassemble(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Results, 1)
	require.Len(t, output.Results[0].Steps, 1)
	step := output.Results[0].Steps[0]
	assert.Equal(t, 1, step.Iteration)
	assert.Equal(t, 3, step.Overlap)
	assert.Equal(t, "ABCDEFG", step.Merged)
	assert.False(t, output.Results[0].StepsTruncated)
}

func TestReassembleTool_Delimiter(t *testing.T) {
	input := reassembleInput{
		Record:    "ABCDEF|DEFG",
		Delimiter: "|",
	}
	_, output, err := handleReassemble(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	assert.Equal(t, "ABCDEFG", output.Results[0].Text)
}

func TestReassembleTool_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input reassembleInput
	}{
		{"no input source", reassembleInput{}},
		{"both input sources", reassembleInput{Record: "a;b", File: "x.txt"}},
		{"multi-character delimiter", reassembleInput{Record: "a;b", Delimiter: "ab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleReassemble(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			assert.Empty(t, output.Results)
		})
	}
}
