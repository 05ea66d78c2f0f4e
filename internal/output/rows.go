// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"memstrap/internal/engine"
	"memstrap/pkg/api"
)

// CSVRecord returns the eight reference columns for one match.
func CSVRecord(source string, m engine.Match) []string {
	return []string{
		source,
		OffsetHex(m.Offset),
		strconv.FormatUint(m.Offset, 10),
		m.Encoding.String(),
		strconv.Itoa(m.ByteLength),
		m.Content,
		HexBytes(m.ContextBefore),
		HexBytes(m.ContextAfter),
	}
}

var tsvEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// FormatRowTSV returns one text-format line (no trailing newline). Tabs and
// line breaks inside content are escaped so every match stays on one line.
func FormatRowTSV(m engine.Match) string {
	var sb strings.Builder
	sb.WriteString(OffsetHex(m.Offset))
	sb.WriteByte('\t')
	sb.WriteString(strconv.FormatUint(m.Offset, 10))
	sb.WriteByte('\t')
	sb.WriteString(m.Encoding.String())
	sb.WriteByte('\t')
	sb.WriteString(strconv.Itoa(m.ByteLength))
	sb.WriteByte('\t')
	sb.WriteString(tsvEscaper.Replace(m.Content))
	return sb.String()
}

// ToAPIMatch converts a domain Match to the stable wire schema (v1).
func ToAPIMatch(source string, m engine.Match) api.MatchV1 {
	return api.MatchV1{
		Source:        source,
		Offset:        m.Offset,
		OffsetHex:     OffsetHex(m.Offset),
		Encoding:      m.Encoding.String(),
		Length:        m.ByteLength,
		Content:       m.Content,
		ContextBefore: HexBytes(m.ContextBefore),
		ContextAfter:  HexBytes(m.ContextAfter),
	}
}
