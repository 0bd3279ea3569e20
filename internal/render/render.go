// Package render writes bet numbers for humans and for copy-paste.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lox/betnumbers/betnumber"
)

// Format selects how an identifier is printed.
type Format string

const (
	FormatDecimal Format = "decimal"
	FormatHex     Format = "hex"
)

// ParseFormat accepts "decimal", "dec", or "hex".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "decimal", "dec":
		return FormatDecimal, nil
	case "hex":
		return FormatHex, nil
	default:
		return "", fmt.Errorf("unknown format %q (want decimal or hex)", s)
	}
}

// Identifier renders id in format f.
func Identifier(id betnumber.Identifier, f Format) string {
	if f == FormatHex {
		return id.Hex()
	}
	return id.Dec()
}

// Lines writes one identifier per line, in order.
func Lines(w io.Writer, ids []betnumber.Identifier, f Format) error {
	bw := bufio.NewWriter(w)
	for _, id := range ids {
		if _, err := fmt.Fprintln(bw, Identifier(id, f)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
