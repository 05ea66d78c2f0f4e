// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"memstrap/internal/engine"
)

// Options carries what every format may need besides the matches.
type Options struct {
	Source string // input identity written into CSV/JSON records
	Header bool   // header row for CSV/text
}

// StreamFunc consumes matches until in is closed.
type StreamFunc func(out io.Writer, o Options, in <-chan engine.Match) error

// Writer registry (format → handler). Formats register in init() blocks.
var registry = map[string]StreamFunc{}

// Register adds or replaces the handler for a format (last wins).
func Register(format string, fn StreamFunc) { registry[format] = fn }

// Lookup returns the handler for format.
func Lookup(format string) (StreamFunc, error) {
	fn, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown match format %q (no writer registered)", format)
	}
	return fn, nil
}

// Registered lists registered formats in sorted order.
func Registered() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
