// Package streamenc drains a channel of values into a record encoder
// (JSON lines, CBOR sequence) through a pooled buffered writer.
package streamenc

import (
	"bufio"
	"io"
	"sync"
)

// Encoder is satisfied by *json.Encoder and *cbor.Encoder.
type Encoder interface {
	Encode(v any) error
}

// Reuse a 64 KiB buffered writer across stream writers to avoid per-writer mallocs.
// Encoders are tiny and tied to an io.Writer, so we (re)create them per call.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Drain encodes every value received on in until it is closed.
//   - newEnc: builds the record encoder over the buffered writer
//   - conv:   converts a domain value to its wire type
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
//
// On an encode error the rest of in is discarded so producers never block.
func Drain[T any](out io.Writer, in <-chan T, newEnc func(io.Writer) Encoder, conv func(T) any, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	// Always put back to pool and drop references to 'out'.
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := newEnc(bw)
	for v := range in {
		if err := enc.Encode(conv(v)); err != nil {
			for range in {
			}
			return err
		}
	}
	if err := bw.Flush(); err != nil && !isBroken(err) {
		return err
	}
	return nil
}
