package mcpserver

import (
	"bufio"
	"fmt"
	"os"
)

// resolveRecords returns the records to reassemble from a tool input.
// Exactly one of record or file must be set: an inline record yields a
// single-element slice, a file yields one record per line. Both are subject
// to the configured size limit.
func resolveRecords(record, file string) ([]string, error) {
	switch {
	case record != "" && file != "":
		return nil, fmt.Errorf("provide either record or file, not both")
	case record == "" && file == "":
		return nil, fmt.Errorf("either record or file is required")
	case record != "":
		if int64(len(record)) > cfg.MaxRecordBytes {
			return nil, fmt.Errorf("record is %d bytes, maximum is %d", len(record), cfg.MaxRecordBytes)
		}
		return []string{record}, nil
	}

	info, err := os.Stat(file)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	if info.Size() > cfg.MaxRecordBytes {
		return nil, fmt.Errorf("input file is %d bytes, maximum is %d", info.Size(), cfg.MaxRecordBytes)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var records []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), int(cfg.MaxRecordBytes))
	for scanner.Scan() {
		records = append(records, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return records, nil
}
