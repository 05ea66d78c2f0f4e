package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"memstrap/internal/output"
	"memstrap/internal/pipeline"
)

// Register binds every flag to o. Current values of o are the defaults.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, "write results to FILE instead of stdout")
	fs.IntVarP(&o.MinLen, "min-len", "n", o.MinLen, "minimum string length (bytes; code units for UTF-16)")
	fs.IntVarP(&o.Threads, "threads", "j", o.Threads, "worker threads (0 = min(CPUs, 8))")
	fs.StringVarP(&o.Search, "search", "s", o.Search, "keep only strings containing PATTERN")
	fs.BoolVarP(&o.Regex, "regex", "r", o.Regex, "interpret --search as a regular expression")
	fs.StringSliceVarP(&o.Encodings, "encoding", "e", o.Encodings,
		"encodings to scan: ascii, utf8, utf16le, utf16be, gbk (repeatable; default all but gbk)")
	fs.IntVarP(&o.Context, "context", "C", o.Context, "raw bytes of hex context on each side")

	fs.StringVar(&o.Format, "format", o.Format, "output format: "+strings.Join(output.Formats, " | "))
	fs.StringVar(&o.Dedup, "dedup", o.Dedup,
		"overlap dedup key: "+pipeline.KeyOffset+" | "+pipeline.KeyOffsetEncoding+" | "+pipeline.KeyExact)
	fs.BoolVar(&o.NoHeader, "no-header", o.NoHeader, "suppress the header row (csv, text)")
	fs.BoolVar(&o.Decompress, "decompress", o.Decompress, "inflate zstd, gzip or lz4 input before scanning")

	fs.BoolVar(&o.NoProgress, "no-progress", o.NoProgress, "disable the progress bar")
	fs.BoolVarP(&o.Quiet, "quiet", "q", o.Quiet, "log warnings and errors only")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level: debug | info | warn | error (overrides --quiet)")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", o.NoMatchExitCode, "exit code when nothing is found")

	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "YAML file with flag defaults")
	fs.BoolVar(&o.Version, "version", o.Version, "print version and exit")
	fs.SortFlags = false
}
