// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"memstrap/internal/engine"
	"memstrap/pkg/api"
)

func toAPIMatches(source string, list []engine.Match) []api.MatchV1 {
	out := make([]api.MatchV1, 0, len(list))
	for _, m := range list {
		out = append(out, ToAPIMatch(source, m))
	}
	return out
}

// NewJSONEncoder returns an encoder that leaves <, > and & in extracted
// content unescaped.
func NewJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// WriteJSON writes a single JSON array of v1 matches (pretty-indented).
func WriteJSON(w io.Writer, source string, list []engine.Match) error {
	enc := NewJSONEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIMatches(source, list))
}
