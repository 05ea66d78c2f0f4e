package streamenc

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonEnc(w io.Writer) Encoder { return json.NewEncoder(w) }

func TestDrain_JSONLines(t *testing.T) {
	in := make(chan int, 3)
	in <- 1
	in <- 2
	in <- 3
	close(in)

	var buf bytes.Buffer
	err := Drain(&buf, in, jsonEnc, func(v int) any { return map[string]int{"v": v} }, func(error) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, "{\"v\":1}\n{\"v\":2}\n{\"v\":3}\n", buf.String())
}

type failing struct{}

func (failing) Encode(any) error { return errors.New("boom") }

func TestDrain_ErrorDrainsInput(t *testing.T) {
	in := make(chan int)
	done := make(chan error, 1)
	go func() {
		done <- Drain(io.Discard, in, func(io.Writer) Encoder { return failing{} }, func(v int) any { return v }, func(error) bool { return false })
	}()
	// Every send must complete even though the first encode fails.
	for i := 0; i < 5; i++ {
		in <- i
	}
	close(in)
	assert.EqualError(t, <-done, "boom")
}
