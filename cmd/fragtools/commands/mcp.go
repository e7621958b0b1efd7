package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jazza72/fragtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: fragtools mcp\n\n")
		Writef(output, "Run the fragtools MCP server over stdio. The server exposes the\n")
		Writef(output, "reassemble, overlap, and split tools to MCP clients.\n\n")
		Writef(output, "Configuration (environment variables):\n")
		Writef(output, "  FRAGTOOLS_DELIMITER        default fragment delimiter (default \";\")\n")
		Writef(output, "  FRAGTOOLS_TRACE_LIMIT      max merge steps returned per record (default 50)\n")
		Writef(output, "  FRAGTOOLS_MAX_RECORD_SIZE  max record/file size in bytes (default 4194304)\n")
		Writef(output, "  FRAGTOOLS_MAX_FRAGMENTS    max fragments per record (default 10000)\n")
		Writef(output, "\nExample client configuration:\n")
		Writef(output, "  {\"mcpServers\": {\"fragtools\": {\"command\": \"fragtools\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command, running the stdio server until the
// client disconnects or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
