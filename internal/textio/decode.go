// Package textio provides character-encoding aware input handling for the
// fragtools CLI.
package textio

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// encodings maps the supported encoding names to their decoders. UTF-8 is
// handled separately since it needs no transformation.
var encodings = map[string]encoding.Encoding{
	"latin-1":      charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// Encodings returns the supported encoding names for usage messages,
// UTF-8 first.
func Encodings() []string {
	return []string{"utf-8", "latin-1", "iso-8859-1", "windows-1252"}
}

// DecodingReader wraps r so its content is decoded from the named character
// encoding into UTF-8. An empty name or "utf-8" returns r unchanged.
func DecodingReader(r io.Reader, name string) (io.Reader, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return r, nil
	}
	enc, ok := encodings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("textio: unsupported encoding %q (supported: %s)",
			name, strings.Join(Encodings(), ", "))
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
