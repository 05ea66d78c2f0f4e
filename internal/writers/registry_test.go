package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memstrap/internal/engine"
	"memstrap/internal/output"
	"memstrap/pkg/api"
)

var sample = []engine.Match{
	{Offset: 3, Content: "a<b>&c", Encoding: engine.ASCII, ByteLength: 6},
	{Offset: 64, Content: "Hello", Encoding: engine.UTF16LE, ByteLength: 10, ContextAfter: []byte{0, 0}},
}

func run(t *testing.T, format string, o Options) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartMatchWriter(&buf, format, o, 1)
	for _, m := range sample {
		in <- m
	}
	close(in)
	err := <-done
	return buf.String(), err
}

func TestUnknownFormatError(t *testing.T) {
	_, err := run(t, "nope-format", Options{})
	if err == nil || !strings.Contains(err.Error(), "unknown match format") {
		t.Fatalf("want 'unknown match format' error, got: %v", err)
	}
}

func TestRegistered_AllOutputFormats(t *testing.T) {
	assert.ElementsMatch(t, output.Formats, Registered())
}

func TestCSVWriter(t *testing.T) {
	got, err := run(t, output.FormatCSV, Options{Source: "mem.raw", Header: true})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(output.CSVHeader, ","), lines[0])
	assert.Equal(t, "mem.raw,0x40,64,UTF-16LE,10,Hello,,0000", lines[2])
}

func TestTextWriter(t *testing.T) {
	got, err := run(t, output.FormatText, Options{})
	require.NoError(t, err)
	assert.Equal(t, "0x3\t3\tASCII\t6\ta<b>&c\n0x40\t64\tUTF-16LE\t10\tHello\n", got)
}

func TestJSONWriters(t *testing.T) {
	arr, err := run(t, output.FormatJSON, Options{Source: "s"})
	require.NoError(t, err)
	var list []api.MatchV1
	require.NoError(t, json.Unmarshal([]byte(arr), &list))
	require.Len(t, list, 2)
	assert.Contains(t, arr, "a<b>&c", "HTML characters are not escaped")

	lines, err := run(t, output.FormatJSONL, Options{Source: "s"})
	require.NoError(t, err)
	sc := bufio.NewScanner(strings.NewReader(lines))
	n := 0
	for sc.Scan() {
		var m api.MatchV1
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		assert.Equal(t, sample[n].Offset, m.Offset)
		n++
	}
	assert.Equal(t, 2, n)
}

func TestCBORWriter(t *testing.T) {
	got, err := run(t, output.FormatCBOR, Options{Source: "s"})
	require.NoError(t, err)

	dec := cbor.NewDecoder(strings.NewReader(got))
	var list []api.MatchV1
	for {
		var m api.MatchV1
		err := dec.Decode(&m)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		list = append(list, m)
	}
	require.Len(t, list, 2)
	assert.Equal(t, "UTF-16LE", list[1].Encoding)
	assert.Equal(t, "0000", list[1].ContextAfter)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(errors.New("disk full")))
}
