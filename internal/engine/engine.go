// internal/engine/engine.go
package engine

// Config holds extraction parameters. It is read once by New.
type Config struct {
	MinLen       int        // bytes for byte-oriented encodings, code units for UTF-16
	Encodings    []Encoding // empty = DefaultEncodings; duplicates collapse
	Search       string     // optional filter pattern
	Regex        bool       // interpret Search as a regular expression
	ContextBytes int        // raw bytes captured on each side (0 = off)
}

// Engine runs the enabled scanners over a buffer. It is immutable after
// New and safe for concurrent use by any number of chunk workers.
type Engine struct {
	minLen   int
	encs     encodingSet
	filter   Filter
	context  int
	scanners []scanner
}

// run is a qualifying span reported by a scanner, before filtering.
type run struct {
	start, end int
	content    string
	enc        Encoding
}

// scanner is implemented by the fixed set of per-encoding state machines.
type scanner interface {
	scan(data []byte, minLen int, emit func(run))
}

// New validates the configuration and compiles the filter. No Engine is
// returned when the pattern does not compile.
func New(c Config) (*Engine, error) {
	f, err := NewFilter(c.Search, c.Regex)
	if err != nil {
		return nil, err
	}
	encs := c.Encodings
	if len(encs) == 0 {
		encs = DefaultEncodings
	}
	e := &Engine{
		minLen:  c.MinLen,
		encs:    newEncodingSet(encs),
		filter:  f,
		context: c.ContextBytes,
	}
	if e.minLen < 1 {
		e.minLen = 1
	}
	if e.context < 0 {
		e.context = 0
	}
	// ASCII and UTF-8 share one pass.
	if e.encs.has(ASCII) || e.encs.has(UTF8) {
		e.scanners = append(e.scanners, utf8Scanner{})
	}
	if e.encs.has(UTF16LE) {
		e.scanners = append(e.scanners, utf16Scanner{bigEndian: false})
	}
	if e.encs.has(UTF16BE) {
		e.scanners = append(e.scanners, utf16Scanner{bigEndian: true})
	}
	if e.encs.has(GBK) {
		e.scanners = append(e.scanners, gbkScanner{})
	}
	return e, nil
}

// MinLen returns the effective minimum run length.
func (e *Engine) MinLen() int { return e.minLen }

// Encodings returns the enabled encodings in display order.
func (e *Engine) Encodings() []Encoding { return e.encs.list() }

// ContextBytes returns the per-side context capture size.
func (e *Engine) ContextBytes() int { return e.context }

// FilterKind reports which predicate is applied.
func (e *Engine) FilterKind() FilterKind { return e.filter.Kind() }

// Extract scans data once per enabled scanner and returns the matches
// with offsets relative to base. Order between encodings is not
// significant; callers that need global order merge afterwards.
func (e *Engine) Extract(data []byte, base uint64) []Match {
	out := make([]Match, 0, 64)
	for _, s := range e.scanners {
		s.scan(data, e.minLen, func(r run) {
			if !e.filter.Match(r.content) {
				return
			}
			m := Match{
				Offset:     base + uint64(r.start),
				Content:    r.content,
				Encoding:   r.enc,
				ByteLength: r.end - r.start,
			}
			m.ContextBefore, m.ContextAfter = captureContext(data, r.start, r.end, e.context)
			out = append(out, m)
		})
	}
	return out
}

func isPrintable(b byte) bool { return b >= 0x20 && b <= 0x7E }

// isTerminator reports the bytes that end a run for every byte-oriented
// scanner: NUL and control bytes other than tab.
func isTerminator(b byte) bool { return b < 0x20 && b != 0x09 }
