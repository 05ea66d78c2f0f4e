package appcore

import (
	"io"

	"memstrap/internal/engine"
	"memstrap/internal/writers"
)

// WriterFactory starts the consumer for merged matches.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.Match, <-chan error)
}

// MatchWriterFactory selects a registered format.
type MatchWriterFactory struct {
	Format string
	Source string
	Header bool
}

func NewMatchWriterFactory(format, source string, header bool) MatchWriterFactory {
	return MatchWriterFactory{Format: format, Source: source, Header: header}
}

func (w MatchWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Match, <-chan error) {
	return writers.StartMatchWriter(out, w.Format, writers.Options{Source: w.Source, Header: w.Header}, bufSize)
}
