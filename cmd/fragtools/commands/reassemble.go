package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jazza72/fragtools/internal/textio"
	"github.com/jazza72/fragtools/reassembler"
)

// ReassembleFlags contains flags for the reassemble command
type ReassembleFlags struct {
	Delimiter    string
	Output       string
	Format       string
	Encoding     string
	Trace        bool
	MaxFragments int
	Quiet        bool
}

// SetupReassembleFlags creates and configures a FlagSet for the reassemble command.
// Returns the FlagSet and a ReassembleFlags struct with bound flag variables.
func SetupReassembleFlags() (*flag.FlagSet, *ReassembleFlags) {
	fs := flag.NewFlagSet("reassemble", flag.ContinueOnError)
	flags := &ReassembleFlags{}

	fs.StringVar(&flags.Delimiter, "d", "", "fragment delimiter character (default \";\")")
	fs.StringVar(&flags.Delimiter, "delimiter", "", "fragment delimiter character (default \";\")")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")
	fs.StringVar(&flags.Encoding, "encoding", "", "input character encoding ("+strings.Join(textio.Encodings(), ", ")+")")
	fs.BoolVar(&flags.Trace, "trace", false, "include per-merge trace in structured output")
	fs.IntVar(&flags.MaxFragments, "max-fragments", 0, "maximum fragments per record (0 = no limit)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output reconstructed text, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output reconstructed text, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: fragtools reassemble [flags] <file|->\n\n")
		Writef(output, "Reassemble original lines of text from delimited fragment records,\n")
		Writef(output, "one record per input line, one reconstructed line per output line.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  fragtools reassemble fragments.txt\n")
		Writef(output, "  fragtools reassemble --delimiter '|' fragments.txt\n")
		Writef(output, "  fragtools reassemble --format json --trace fragments.txt\n")
		Writef(output, "  fragtools reassemble --encoding latin-1 legacy.txt\n")
		Writef(output, "  cat fragments.txt | fragtools reassemble -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Reassembly successful\n")
		Writef(output, "  1    Invalid arguments or I/O failure\n")
	}

	return fs, flags
}

// recordOutput is the structured per-record result for json/yaml output.
type recordOutput struct {
	Line     int                     `json:"line" yaml:"line"`
	Text     string                  `json:"text" yaml:"text"`
	Complete bool                    `json:"complete" yaml:"complete"`
	Leftover []string                `json:"leftover,omitempty" yaml:"leftover,omitempty"`
	Stats    reassembler.Stats       `json:"stats" yaml:"stats"`
	Steps    []reassembler.MergeStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// HandleReassemble executes the reassemble command
func HandleReassemble(args []string) error {
	fs, flags := SetupReassembleFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("reassemble command requires exactly one file path or '-' for stdin")
	}
	inputPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	delim, err := ParseDelimiterFlag(flags.Delimiter, reassembler.DefaultDelimiter)
	if err != nil {
		return err
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{inputPath}); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(flags.Output); err != nil {
			return err
		}
	}

	in, closeIn, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	decoded, err := textio.DecodingReader(in, flags.Encoding)
	if err != nil {
		return err
	}

	r := reassembler.New()
	r.Delimiter = delim
	r.TraceSteps = flags.Trace
	r.MaxFragments = flags.MaxFragments

	startTime := time.Now()
	var (
		records    []recordOutput
		lines      []string
		incomplete int
		merges     int
	)
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		result, err := r.Reassemble(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if !result.Complete {
			incomplete++
		}
		merges += result.Stats.MergeCount
		lines = append(lines, result.Text)
		if flags.Format != FormatText {
			records = append(records, recordOutput{
				Line:     line,
				Text:     result.Text,
				Complete: result.Complete,
				Leftover: result.Leftover,
				Stats:    result.Stats,
				Steps:    result.Steps,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	totalTime := time.Since(startTime)

	// Build the payload before touching the output destination.
	var payload []byte
	if flags.Format == FormatText {
		if len(lines) > 0 {
			payload = []byte(strings.Join(lines, "\n") + "\n")
		}
	} else {
		payload, err = MarshalStructured(records, flags.Format)
		if err != nil {
			return err
		}
		payload = append(payload, '\n')
	}

	if flags.Output != "" {
		if err := os.WriteFile(flags.Output, payload, 0o600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	} else {
		if _, err := os.Stdout.Write(payload); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	// Diagnostics go to stderr to keep stdout clean for pipelining.
	if !flags.Quiet {
		OutputHeader("Text Fragment Reassembler", inputPath)
		Writef(os.Stderr, "Records: %d\n", line)
		Writef(os.Stderr, "Merges: %d\n", merges)
		if incomplete > 0 {
			Writef(os.Stderr, "Incomplete: %d\n", incomplete)
		}
		if flags.Output != "" {
			Writef(os.Stderr, "Output: %s\n", flags.Output)
		}
		Writef(os.Stderr, "Total Time: %v\n", totalTime)
	}

	return nil
}

// openInput opens the input source, mapping "-" to stdin.
func openInput(path string) (io.Reader, func(), error) {
	if path == StdinFilePath {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
