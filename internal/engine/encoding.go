// internal/engine/encoding.go
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Encoding identifies the text encoding a match was decoded from.
type Encoding uint8

const (
	ASCII Encoding = iota
	UTF8
	UTF16LE
	UTF16BE
	GBK
)

// ErrUnknownEncoding is returned by ParseEncoding for names outside the set.
var ErrUnknownEncoding = errors.New("unknown encoding")

// AllEncodings lists every supported encoding in display order.
var AllEncodings = []Encoding{ASCII, UTF8, UTF16LE, UTF16BE, GBK}

// DefaultEncodings is used when no encoding is requested. GBK is opt-in.
var DefaultEncodings = []Encoding{ASCII, UTF8, UTF16LE, UTF16BE}

// String returns the display name used in reports ("UTF-16LE", ...).
func (e Encoding) String() string {
	switch e {
	case ASCII:
		return "ASCII"
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case GBK:
		return "GBK"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// Name returns the command-line spelling ("utf16le", ...).
func (e Encoding) Name() string {
	switch e {
	case ASCII:
		return "ascii"
	case UTF8:
		return "utf8"
	case UTF16LE:
		return "utf16le"
	case UTF16BE:
		return "utf16be"
	case GBK:
		return "gbk"
	default:
		return ""
	}
}

// ParseEncoding accepts either the command-line or the display spelling,
// case-insensitively.
func ParseEncoding(s string) (Encoding, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for _, e := range AllEncodings {
		if n == e.Name() || n == strings.ToLower(e.String()) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want ascii, utf8, utf16le, utf16be or gbk)", ErrUnknownEncoding, s)
}

// encodingSet is a tiny bitset over the closed Encoding range.
type encodingSet uint8

func newEncodingSet(list []Encoding) encodingSet {
	var s encodingSet
	for _, e := range list {
		s |= 1 << e
	}
	return s
}

func (s encodingSet) has(e Encoding) bool { return s&(1<<e) != 0 }

func (s encodingSet) list() []Encoding {
	var out []Encoding
	for _, e := range AllEncodings {
		if s.has(e) {
			out = append(out, e)
		}
	}
	return out
}
