package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jazza72/fragtools/reassembler"
)

// OverlapFlags contains flags for the overlap command
type OverlapFlags struct {
	Merge  bool
	Format string
}

// SetupOverlapFlags creates and configures a FlagSet for the overlap command.
func SetupOverlapFlags() (*flag.FlagSet, *OverlapFlags) {
	fs := flag.NewFlagSet("overlap", flag.ContinueOnError)
	flags := &OverlapFlags{}

	fs.BoolVar(&flags.Merge, "merge", false, "also print the merged fragment")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: fragtools overlap [flags] <fragment-a> <fragment-b>\n\n")
		Writef(output, "Compute the directed overlap between two fragments: the longest\n")
		Writef(output, "suffix of fragment-a that fragment-b starts with, or the whole of\n")
		Writef(output, "fragment-a when fragment-b contains it.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  fragtools overlap 'ABCDEF' 'DEFG'\n")
		Writef(output, "  fragtools overlap --merge 'ABCDEF' 'DEFG'\n")
		Writef(output, "  fragtools overlap --format json 'ABCDEF' 'DEFG'\n")
	}

	return fs, flags
}

// overlapResult is the structured output for the overlap command.
type overlapResult struct {
	A       string `json:"a" yaml:"a"`
	B       string `json:"b" yaml:"b"`
	Overlap int    `json:"overlap" yaml:"overlap"`
	Merged  string `json:"merged,omitempty" yaml:"merged,omitempty"`
}

// HandleOverlap executes the overlap command
func HandleOverlap(args []string) error {
	fs, flags := SetupOverlapFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("overlap command requires exactly two fragment arguments")
	}
	a, b := fs.Arg(0), fs.Arg(1)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	result := overlapResult{
		A:       a,
		B:       b,
		Overlap: reassembler.Overlap(a, b),
	}
	if flags.Merge {
		result.Merged = reassembler.Merge(a, b, result.Overlap)
	}

	if flags.Format == FormatText {
		Writef(os.Stdout, "%d\n", result.Overlap)
		if flags.Merge {
			Writef(os.Stdout, "%s\n", result.Merged)
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
