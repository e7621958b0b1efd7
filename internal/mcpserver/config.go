package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/jazza72/fragtools/reassembler"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Delimiter is the default fragment delimiter for all tools.
	Delimiter rune

	// TraceLimit caps the number of merge steps returned per record when
	// tracing is requested.
	TraceLimit int

	// MaxRecordBytes caps the size of an inline record or input file.
	MaxRecordBytes int64

	// MaxFragments caps the number of fragments per record.
	MaxFragments int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from FRAGTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Delimiter:      envDelimiter("FRAGTOOLS_DELIMITER", reassembler.DefaultDelimiter),
		TraceLimit:     envInt("FRAGTOOLS_TRACE_LIMIT", 50),
		MaxRecordBytes: envInt64("FRAGTOOLS_MAX_RECORD_SIZE", 4<<20),
		MaxFragments:   envInt("FRAGTOOLS_MAX_FRAGMENTS", 10000),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDelimiter(key string, fallback rune) rune {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if utf8.RuneCountInString(v) != 1 {
		slog.Warn("delimiter env var must be a single character, using default",
			"key", key, "value", v, "default", string(fallback))
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r
}

// resolveDelimiter maps a tool-provided delimiter string to a rune, falling
// back to the configured default when empty. A multi-character delimiter is
// an input error.
func resolveDelimiter(s string) (rune, bool) {
	if s == "" {
		return cfg.Delimiter, true
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}
