// internal/writers/match.go
package writers

import (
	"io"

	"memstrap/internal/engine"
)

// StartMatchWriter spins up a writer goroutine for the given format. The
// caller sends matches, closes the channel, then reads exactly one value
// from the error channel. Unknown formats report their error after the
// input is drained.
func StartMatchWriter(out io.Writer, format string, o Options, bufSize int) (chan<- engine.Match, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Match, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, err := Lookup(format)
		if err == nil {
			err = fn(out, o, in)
		}
		// Never leave a producer blocked on a failed writer.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
