package output

import (
	"encoding/hex"
	"fmt"
)

// Output formats.
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatText  = "text"
	FormatCBOR  = "cbor"
)

// Formats lists every supported format, default first.
var Formats = []string{FormatCSV, FormatJSON, FormatJSONL, FormatText, FormatCBOR}

// CSVHeader is the canonical header row of the CSV report.
// Keep this as the single source of truth; all writers should use it.
var CSVHeader = []string{
	"FilePath", "Offset(Hex)", "Offset(Dec)", "Encoding",
	"Length", "Content", "ContextBefore", "ContextAfter",
}

// TSVHeader is the header line of the text format.
const TSVHeader = "offset_hex\toffset\tencoding\tlength\tcontent"

// OffsetHex renders an offset the way every format reports it ("0x1F").
func OffsetHex(off uint64) string { return fmt.Sprintf("0x%X", off) }

// HexBytes renders context bytes as lower-case hex; nil becomes "".
func HexBytes(b []byte) string { return hex.EncodeToString(b) }
