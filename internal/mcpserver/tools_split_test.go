package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTool(t *testing.T) {
	input := splitInput{Record: "one;two;;three;"}
	result, output, err := handleSplit(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, []string{"one", "two", "three"}, output.Fragments)
	assert.Equal(t, 3, output.Count)
	assert.Equal(t, 2, output.Dropped)
	assert.Equal(t, "Split into 3 fragments, dropping 2 empty tokens.", output.Summary)
}

func TestSplitToolCustomDelimiter(t *testing.T) {
	input := splitInput{Record: "a|b|c", Delimiter: "|"}
	_, output, err := handleSplit(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, output.Fragments)
	assert.Zero(t, output.Dropped)
	assert.Equal(t, "Split into 3 fragments.", output.Summary)
}

func TestSplitToolInvalidDelimiter(t *testing.T) {
	input := splitInput{Record: "a;b", Delimiter: "ab"}
	result, _, err := handleSplit(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
