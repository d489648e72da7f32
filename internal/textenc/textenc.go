// Package textenc decodes process output and fixture files into text.
//
// Every byte stream the harness compares passes through Decode, so both sides
// of a diff share one decoding. No other normalization happens: line endings,
// whitespace and a leading BOM are kept as-is.
package textenc

import (
	"golang.org/x/text/encoding/unicode"
)

// Decode interprets b as UTF-8. Invalid sequences become U+FFFD.
func Decode(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		// The UTF-8 decoder replaces instead of failing.
		return string(b)
	}
	return string(out)
}
