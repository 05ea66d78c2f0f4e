package writers

import (
	"io"

	"github.com/fxamacker/cbor/v2"

	"memstrap/internal/engine"
	"memstrap/internal/output"
	"memstrap/internal/streamenc"
)

func init() {
	Register(output.FormatCSV, func(out io.Writer, o Options, in <-chan engine.Match) error {
		return output.StreamCSV(out, o.Source, in, o.Header)
	})
	Register(output.FormatText, func(out io.Writer, o Options, in <-chan engine.Match) error {
		return output.StreamText(out, in, o.Header)
	})
	Register(output.FormatJSON, func(out io.Writer, o Options, in <-chan engine.Match) error {
		// A JSON array needs the full list before the first byte.
		var buf []engine.Match
		for m := range in {
			buf = append(buf, m)
		}
		return output.WriteJSON(out, o.Source, buf)
	})
	Register(output.FormatJSONL, func(out io.Writer, o Options, in <-chan engine.Match) error {
		return streamenc.Drain(out, in,
			func(w io.Writer) streamenc.Encoder { return output.NewJSONEncoder(w) },
			func(m engine.Match) any { return output.ToAPIMatch(o.Source, m) },
			IsBrokenPipe,
		)
	})
	Register(output.FormatCBOR, func(out io.Writer, o Options, in <-chan engine.Match) error {
		return streamenc.Drain(out, in,
			func(w io.Writer) streamenc.Encoder { return cbor.NewEncoder(w) },
			func(m engine.Match) any { return output.ToAPIMatch(o.Source, m) },
			IsBrokenPipe,
		)
	})
}
