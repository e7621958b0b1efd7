package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jazza72/fragtools/reassembler"
)

// SplitFlags contains flags for the split command
type SplitFlags struct {
	Delimiter string
	Format    string
}

// SetupSplitFlags creates and configures a FlagSet for the split command.
func SetupSplitFlags() (*flag.FlagSet, *SplitFlags) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	flags := &SplitFlags{}

	fs.StringVar(&flags.Delimiter, "d", "", "fragment delimiter character (default \";\")")
	fs.StringVar(&flags.Delimiter, "delimiter", "", "fragment delimiter character (default \";\")")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: fragtools split [flags] <record>\n\n")
		Writef(output, "Split a record into its fragments on the delimiter, dropping\n")
		Writef(output, "empty tokens. One fragment per output line in text format.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  fragtools split 'one;two;;three;'\n")
		Writef(output, "  fragtools split --delimiter '|' 'a|b|c'\n")
		Writef(output, "  fragtools split --format json 'one;two'\n")
	}

	return fs, flags
}

// splitResult is the structured output for the split command.
type splitResult struct {
	Fragments []string `json:"fragments" yaml:"fragments"`
	Count     int      `json:"count" yaml:"count"`
	Dropped   int      `json:"dropped" yaml:"dropped"`
}

// HandleSplit executes the split command
func HandleSplit(args []string) error {
	fs, flags := SetupSplitFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("split command requires exactly one record argument")
	}
	record := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	delim, err := ParseDelimiterFlag(flags.Delimiter, reassembler.DefaultDelimiter)
	if err != nil {
		return err
	}

	fragments := reassembler.SplitRecord(record, delim)
	result := splitResult{
		Fragments: fragments,
		Count:     len(fragments),
		Dropped:   strings.Count(record, string(delim)) + 1 - len(fragments),
	}

	if flags.Format == FormatText {
		for _, f := range fragments {
			Writef(os.Stdout, "%s\n", f)
		}
		return nil
	}

	payload, err := MarshalStructured(result, flags.Format)
	if err != nil {
		return err
	}
	Writef(os.Stdout, "%s\n", payload)
	return nil
}
