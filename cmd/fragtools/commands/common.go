// Package commands provides CLI command handlers for fragtools.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v4"

	fragtools "github.com/jazza72/fragtools"
	"github.com/jazza72/fragtools/internal/cliutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// MarshalStructured marshals data in the specified format (json or yaml).
func MarshalStructured(data any, format string) ([]byte, error) {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return bytes, nil
}

// ParseDelimiterFlag converts a delimiter flag value to a rune. The flag
// must hold exactly one character; an empty value falls back to def.
func ParseDelimiterFlag(value string, def rune) (rune, error) {
	if value == "" {
		return def, nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	// Get absolute path of output file
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Check if output file would overwrite any input files
	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	// Check if output file already exists and warn (but don't error)
	if _, err := os.Stat(outputPath); err == nil {
		Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet — safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatInputPath returns a display-friendly path for the input source.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// OutputHeader outputs the common diagnostic header to stderr.
func OutputHeader(title, inputPath string) {
	Writef(os.Stderr, "%s\n", title)
	Writef(os.Stderr, "%s\n\n", strings.Repeat("=", len(title)))
	Writef(os.Stderr, "fragtools version: %s\n", fragtools.Version())
	if inputPath != "" {
		Writef(os.Stderr, "Input: %s\n", FormatInputPath(inputPath))
	}
}
