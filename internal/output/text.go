// internal/output/text.go
package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"memstrap/internal/engine"
)

// WriteText prints one tab-separated line per match.
func WriteText(w io.Writer, list []engine.Match, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, m := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(m)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText over a channel.
func StreamText(w io.Writer, in <-chan engine.Match, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for m := range in {
		if _, err := fmt.Fprintln(bw, FormatRowTSV(m)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCSV writes the reference CSV report.
func WriteCSV(w io.Writer, source string, list []engine.Match, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVHeader); err != nil {
			return err
		}
	}
	for _, m := range list {
		if err := cw.Write(CSVRecord(source, m)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// StreamCSV is WriteCSV over a channel.
func StreamCSV(w io.Writer, source string, in <-chan engine.Match, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVHeader); err != nil {
			return err
		}
	}
	for m := range in {
		if err := cw.Write(CSVRecord(source, m)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
