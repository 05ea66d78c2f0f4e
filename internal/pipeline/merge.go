// internal/pipeline/merge.go
package pipeline

import (
	"fmt"
	"slices"
	"sort"

	"github.com/zeebo/xxh3"

	"memstrap/internal/engine"
)

// Key identifies matches that count as the same detection. Only matches
// sharing an offset are ever compared.
type Key struct {
	Offset   uint64
	Encoding engine.Encoding
	Length   int
	Sum      uint64
}

// KeyFunc derives the dedup key of a match.
type KeyFunc func(engine.Match) Key

// ByOffset treats every match at the same offset as a duplicate; the first
// one in chunk order wins whatever its encoding.
func ByOffset(m engine.Match) Key { return Key{Offset: m.Offset} }

// ByOffsetEncoding keeps one match per (offset, encoding).
func ByOffsetEncoding(m engine.Match) Key {
	return Key{Offset: m.Offset, Encoding: m.Encoding}
}

// ByOffsetContent only collapses matches that are identical in offset,
// encoding, span and content.
func ByOffsetContent(m engine.Match) Key {
	return Key{Offset: m.Offset, Encoding: m.Encoding, Length: m.ByteLength, Sum: xxh3.HashString(m.Content)}
}

// Dedup key names accepted by ParseKey.
const (
	KeyOffset         = "offset"
	KeyOffsetEncoding = "offset-encoding"
	KeyExact          = "exact"
)

// ParseKey maps a dedup key name to its KeyFunc.
func ParseKey(name string) (KeyFunc, error) {
	switch name {
	case "", KeyOffset:
		return ByOffset, nil
	case KeyOffsetEncoding:
		return ByOffsetEncoding, nil
	case KeyExact:
		return ByOffsetContent, nil
	default:
		return nil, fmt.Errorf("unknown dedup key %q (want %s, %s or %s)", name, KeyOffset, KeyOffsetEncoding, KeyExact)
	}
}

// Merge concatenates per-chunk results in chunk order, stable-sorts them
// by offset and drops later matches whose key was already seen at the same
// offset. Matches at different offsets are always kept, even when their
// spans overlap. It returns the merged list and the number dropped.
func Merge(results [][]engine.Match, key KeyFunc) ([]engine.Match, int) {
	if key == nil {
		key = ByOffset
	}
	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]engine.Match, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Offset < all[j].Offset })

	out := all[:0]
	var seen []Key
	for i := 0; i < len(all); {
		off, j := all[i].Offset, i
		seen = seen[:0]
		for ; j < len(all) && all[j].Offset == off; j++ {
			k := key(all[j])
			if slices.Contains(seen, k) {
				continue
			}
			seen = append(seen, k)
			out = append(out, all[j])
		}
		i = j
	}
	return out, total - len(out)
}
