// pkg/api/matches_v1.go
package api

// MatchV1 is the stable JSON/JSONL/CBOR schema for one extracted string.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatchV1 struct {
	Source        string `json:"source,omitempty" cbor:"source,omitempty"`
	Offset        uint64 `json:"offset" cbor:"offset"`
	OffsetHex     string `json:"offset_hex" cbor:"offset_hex"`
	Encoding      string `json:"encoding" cbor:"encoding"` // "ASCII" | "UTF-8" | "UTF-16LE" | "UTF-16BE" | "GBK"
	Length        int    `json:"length" cbor:"length"`     // source bytes
	Content       string `json:"content" cbor:"content"`
	ContextBefore string `json:"context_before,omitempty" cbor:"context_before,omitempty"` // lower-case hex
	ContextAfter  string `json:"context_after,omitempty" cbor:"context_after,omitempty"`
}
