// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes fragtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"
	"strconv"

	fragtools "github.com/jazza72/fragtools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `fragtools MCP server — reassembles lines of text from unordered, overlapping fragments.

A record is a set of fragments joined by a delimiter character (';' by default). Reassembly greedily merges the pair of fragments with the greatest character overlap until one fragment remains; when fragments cannot all be connected, the longest remaining fragment is returned as a best-effort result.

Configuration: defaults are configurable via FRAGTOOLS_* environment variables set in your MCP client config.

Key settings:
- FRAGTOOLS_DELIMITER (default: ;) — default fragment delimiter
- FRAGTOOLS_TRACE_LIMIT (default: 50) — maximum merge steps returned per record with trace=true
- FRAGTOOLS_MAX_RECORD_SIZE (default: 4194304) — maximum record/file size in bytes
- FRAGTOOLS_MAX_FRAGMENTS (default: 10000) — maximum fragments per record`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "fragtools", Version: fragtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "reassemble",
		Description: "Reassemble original lines of text from delimited fragment records. Provide a single record inline, or a file path with one record per line. Each record's fragments are merged greedily by greatest overlap. Use trace=true to see the individual merge steps (capped by FRAGTOOLS_TRACE_LIMIT). Incomplete reconstructions report the unmerged leftover fragments.",
	}, handleReassemble)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "overlap",
		Description: "Compute the character overlap between two fragments: the longest run of trailing characters of a that lines up with the head of b. Returns 0 when the fragments do not connect. Use merge=true to also return the merged string.",
	}, handleOverlap)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "split",
		Description: "Split a delimited record into its fragments, showing which empty tokens were dropped. Useful for checking how a record will be interpreted before reassembling it.",
	}, handleSplit)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// formatCount renders "1 merge" / "3 merges" style phrases for summaries.
func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
