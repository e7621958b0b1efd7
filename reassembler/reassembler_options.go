package reassembler

import (
	"fmt"
	"log/slog"
)

// Option is a function that configures a reassembly operation
type Option func(*reassembleConfig) error

// reassembleConfig holds configuration for a reassembly operation
type reassembleConfig struct {
	record    *string
	delimiter rune

	traceSteps   bool
	maxFragments int
	logger       *slog.Logger
}

// WithRecord sets the delimited fragment record to reassemble. Exactly one
// record must be provided.
func WithRecord(record string) Option {
	return func(cfg *reassembleConfig) error {
		if cfg.record != nil {
			return fmt.Errorf("record already specified")
		}
		cfg.record = &record
		return nil
	}
}

// WithDelimiter sets the delimiter character separating fragments within the
// record. The default is ';'.
func WithDelimiter(delim rune) Option {
	return func(cfg *reassembleConfig) error {
		if delim == 0 {
			return fmt.Errorf("delimiter must be a non-zero rune")
		}
		cfg.delimiter = delim
		return nil
	}
}

// WithTraceSteps enables recording of every merge in Result.Steps.
func WithTraceSteps(trace bool) Option {
	return func(cfg *reassembleConfig) error {
		cfg.traceSteps = trace
		return nil
	}
}

// WithMaxFragments limits the number of fragments accepted per record.
// Zero means no limit.
func WithMaxFragments(limit int) Option {
	return func(cfg *reassembleConfig) error {
		if limit < 0 {
			return fmt.Errorf("max fragments must not be negative, got %d", limit)
		}
		cfg.maxFragments = limit
		return nil
	}
}

// WithLogger sets a logger for debug-level merge events.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *reassembleConfig) error {
		cfg.logger = logger
		return nil
	}
}

// ReassembleWithOptions reconstructs a record using functional options. This
// provides a flexible API that combines the record and configuration in a
// single call.
//
// Example:
//
//	result, err := reassembler.ReassembleWithOptions(
//	    reassembler.WithRecord("ABCDEF;DEFG"),
//	    reassembler.WithTraceSteps(true),
//	)
func ReassembleWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("reassembler: invalid options: %w", err)
	}

	r := &Reassembler{
		Delimiter:    cfg.delimiter,
		TraceSteps:   cfg.traceSteps,
		MaxFragments: cfg.maxFragments,
		Logger:       cfg.logger,
	}
	return r.Reassemble(*cfg.record)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*reassembleConfig, error) {
	cfg := &reassembleConfig{
		delimiter: DefaultDelimiter,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.record == nil {
		return nil, fmt.Errorf("no record specified: use WithRecord")
	}
	return cfg, nil
}
