// Package textenc normalizes raw document bytes to UTF-8 text.
//
// TOML documents are UTF-8, but files written by some editors carry a
// byte order mark or are saved as UTF-16. Decode strips a UTF-8 BOM and
// transcodes BOM-marked UTF-16 (either byte order) so the parser only ever
// sees plain UTF-8.
package textenc

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Encoding names the encoding detected by Sniff.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16LE
	UTF16BE
)

func (e Encoding) String() string {
	switch e {
	case UTF8BOM:
		return "utf-8 (bom)"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// Sniff inspects the leading bytes of data for a byte order mark.
func Sniff(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	default:
		return UTF8
	}
}

// Decode returns data as UTF-8 text with any byte order mark removed.
// Input without a BOM is returned unchanged.
func Decode(data []byte) (string, error) {
	enc := Sniff(data)
	if enc == UTF8 {
		return string(data), nil
	}
	if enc == UTF8BOM {
		return string(data[len(bomUTF8):]), nil
	}
	// BOMOverride consumes the mark and selects the matching UTF-16 decoder.
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return "", fmt.Errorf("textenc: decode %s: %w", enc, err)
	}
	return string(out), nil
}
