package diag

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// wideEncoding is the native text encoding of wide-character debug streams.
var wideEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeWide converts UTF-8 text to UTF-16 code units, the encoding expected
// by wide-character platform debug streams. The result carries no NUL
// terminator. Invalid UTF-8 sequences are replaced with U+FFFD.
func EncodeWide(s string) ([]uint16, error) {
	b, err := wideEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode utf-16: %w", err)
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return units, nil
}

// DecodeWide converts UTF-16 code units back to UTF-8. Trailing NUL
// terminators are dropped.
func DecodeWide(units []uint16) (string, error) {
	for len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	out, err := wideEncoding.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode utf-16: %w", err)
	}
	return string(out), nil
}

// Normalize returns s in Unicode Normalization Form C.
// Producers may hand us decomposed text; NFC keeps the console and the
// wide-character stream showing the same code points.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
