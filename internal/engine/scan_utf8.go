package engine

import "unicode/utf8"

// utf8Scanner finds printable ASCII runs that may embed multi-byte UTF-8
// sequences.
type utf8Scanner struct{}

func (utf8Scanner) scan(data []byte, minLen int, emit func(run)) {
	n := len(data)
	i := 0
	for i < n {
		if !isPrintable(data[i]) && data[i] != 0x09 {
			i++
			continue
		}
		start := i
		nonASCII := false
	extend:
		for i < n {
			b := data[i]
			switch {
			case isTerminator(b):
				break extend
			case b < 0x80:
				// 0x7F is neither printable nor a terminator; it ends the run.
				if b == 0x7F {
					break extend
				}
				i++
			default:
				w := utf8SeqLen(b)
				if w == 0 || i+w > n {
					break extend
				}
				nonASCII = true
				i += w
			}
		}
		if i-start >= minLen {
			span := data[start:i]
			r := run{start: start, end: i}
			switch {
			case !nonASCII:
				r.content, r.enc = asciiString(span), ASCII
			case utf8.Valid(span):
				r.content, r.enc = string(span), UTF8
			default:
				r.content, r.enc = asciiProjection(span), ASCII
			}
			emit(r)
		}
	}
}

// utf8SeqLen returns the sequence length announced by a leading byte, or 0
// for bytes that cannot start a sequence.
func utf8SeqLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// asciiString converts a span the scanner loop already restricted to
// bytes below 0x80. The invariant is re-checked; a violation degrades to
// the placeholder projection instead of producing an unchecked string.
func asciiString(span []byte) string {
	for _, b := range span {
		if b >= 0x80 {
			return asciiProjection(span)
		}
	}
	return string(span)
}

// asciiProjection keeps printable bytes, space and tab, and replaces every
// other byte with '?'.
func asciiProjection(span []byte) string {
	out := make([]byte, len(span))
	for i, b := range span {
		if isPrintable(b) || b == 0x09 {
			out[i] = b
		} else {
			out[i] = '?'
		}
	}
	return string(out)
}
