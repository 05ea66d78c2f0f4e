package engine

// Match is one reportable string found by a scanner.
//
// Offset is absolute in the original input, whatever chunk produced it.
// ByteLength is the source span consumed by the scanner (two bytes per
// code unit for UTF-16), not the decoded character count.
// ContextBefore/ContextAfter are nil when context capture is off or when
// no byte is available on that side.
type Match struct {
	Offset        uint64
	Content       string
	Encoding      Encoding
	ByteLength    int
	ContextBefore []byte
	ContextAfter  []byte
}

// End returns the absolute offset one past the last source byte.
func (m Match) End() uint64 { return m.Offset + uint64(m.ByteLength) }
