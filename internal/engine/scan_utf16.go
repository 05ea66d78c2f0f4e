package engine

import (
	"strings"
	"unicode/utf16"
)

// utf16Scanner finds UTF-16 text whose code units are mostly in the ASCII
// range. Only the ASCII fast path is followed; the first code unit outside
// it is kept and ends the run.
type utf16Scanner struct {
	bigEndian bool
}

func (s utf16Scanner) scan(data []byte, minLen int, emit func(run)) {
	enc := UTF16LE
	if s.bigEndian {
		enc = UTF16BE
	}
	var units []uint16
	i := 0
	for i+1 < len(data) {
		lo, hi := s.pair(data, i)
		if !isPrintable(lo) || hi != 0x00 {
			i++
			continue
		}
		start := i
		units = units[:0]
		for i+1 < len(data) {
			lo, hi = s.pair(data, i)
			if lo == 0x00 && hi == 0x00 {
				break
			}
			units = append(units, uint16(hi)<<8|uint16(lo))
			i += 2
			if hi != 0x00 || !isPrintable(lo) {
				break
			}
		}
		if len(units) < minLen {
			continue
		}
		content, ok := decodeUTF16(units)
		if !ok {
			continue
		}
		emit(run{start: start, end: i, content: content, enc: enc})
	}
}

// pair returns the low and high byte of the code unit at data[i:i+2].
func (s utf16Scanner) pair(data []byte, i int) (lo, hi byte) {
	if s.bigEndian {
		return data[i+1], data[i]
	}
	return data[i], data[i+1]
}

// decodeUTF16 rejects unpaired surrogates instead of substituting U+FFFD.
func decodeUTF16(units []uint16) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(units))
	for k := 0; k < len(units); k++ {
		u := units[k]
		switch {
		case u < 0xD800 || u > 0xDFFF:
			sb.WriteRune(rune(u))
		case u <= 0xDBFF && k+1 < len(units) && units[k+1] >= 0xDC00 && units[k+1] <= 0xDFFF:
			sb.WriteRune(utf16.DecodeRune(rune(u), rune(units[k+1])))
			k++
		default:
			return "", false
		}
	}
	return sb.String(), true
}
