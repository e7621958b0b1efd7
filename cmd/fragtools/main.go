package main

import (
	"fmt"
	"os"

	fragtools "github.com/jazza72/fragtools"
	"github.com/jazza72/fragtools/cmd/fragtools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("fragtools v%s\n", fragtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "reassemble":
		if err := commands.HandleReassemble(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "overlap":
		if err := commands.HandleOverlap(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "split":
		if err := commands.HandleSplit(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists the commands considered for typo suggestions.
var knownCommands = []string{"reassemble", "overlap", "split", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or the empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`fragtools - Text Fragment Reassembly Tools

Usage:
  fragtools <command> [options]

Commands:
  reassemble  Reconstruct original text from delimited fragment records
  overlap     Compute the directed overlap between two fragments
  split       Split a record into its fragments
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  fragtools reassemble fragments.txt
  fragtools reassemble --format json --trace fragments.txt
  cat fragments.txt | fragtools reassemble -q -
  fragtools overlap --merge 'ABCDEF' 'DEFG'
  fragtools split 'one;two;;three;'

Run 'fragtools <command> --help' for more information on a command.`)
}
