// internal/engine/scan_gbk.go
package engine

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

const (
	gbkMaxRun     = 1024 // accumulated bytes per run
	gbkMaxInvalid = 3    // consecutive invalid bytes skipped before the run ends
)

// gbkScanner finds GBK double-byte text, mixed with ASCII, starting at a
// lead byte.
type gbkScanner struct{}

func isGBKLead(b byte) bool  { return b >= 0x81 && b <= 0xFE }
func isGBKTrail(b byte) bool { return (b >= 0x40 && b <= 0x7E) || (b >= 0x80 && b <= 0xFE) }

func (gbkScanner) scan(data []byte, minLen int, emit func(run)) {
	n := len(data)
	buf := make([]byte, 0, gbkMaxRun)
	i := 0
	for i < n {
		if !isGBKLead(data[i]) {
			i++
			continue
		}
		start := i
		end := i // one past the last accepted byte
		invalid := 0
		buf = buf[:0]
	extend:
		for i < n {
			b := data[i]
			switch {
			case isTerminator(b):
				break extend
			case isPrintable(b) || b == 0x09:
				if len(buf)+1 > gbkMaxRun {
					break extend
				}
				buf = append(buf, b)
				i++
				end, invalid = i, 0
			case isGBKLead(b) && i+1 < n && isGBKTrail(data[i+1]):
				if len(buf)+2 > gbkMaxRun {
					break extend
				}
				buf = append(buf, b, data[i+1])
				i += 2
				end, invalid = i, 0
			default:
				invalid++
				if invalid > gbkMaxInvalid {
					break extend
				}
				i++
			}
		}
		if len(buf) < minLen {
			continue
		}
		content, ok := decodeGBK(buf, minLen)
		if !ok {
			continue
		}
		emit(run{start: start, end: end, content: content, enc: GBK})
	}
}

// decodeGBK decodes lossily (unmapped pairs become U+FFFD) and applies the
// decoded-length tolerance of minLen/2 characters.
func decodeGBK(raw []byte, minLen int) (string, bool) {
	out, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	s := string(out)
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	if utf8.RuneCountInString(s) < minLen/2 {
		return "", false
	}
	return s, true
}
