// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"memstrap/internal/engine"
	"memstrap/internal/input"
	"memstrap/internal/logging"
	"memstrap/internal/pipeline"
	"memstrap/internal/progress"
	"memstrap/internal/runutil"
	"memstrap/internal/writers"
)

// Exit codes shared by the command.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

type Options struct {
	Input      string
	Decompress bool

	Engine  engine.Config
	Threads int
	Dedup   string

	OutputPath string // "" = stdout
	Format     string
	Header     bool

	NoProgress      bool
	Quiet           bool
	LogLevel        string
	NoMatchExitCode int
}

func (o Options) logLevel() string {
	switch {
	case o.LogLevel != "":
		return o.LogLevel
	case o.Quiet:
		return "warn"
	default:
		return "info"
	}
}

// Run scans one input and writes the merged matches. It never exits the
// process; the returned value is the exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	log := logging.NewWithComponent(logging.Config{
		Level:  o.logLevel(),
		Pretty: true,
		Output: stderr,
	}, "memstrap")

	key, err := pipeline.ParseKey(o.Dedup)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return ExitUsage
	}
	eng, err := engine.New(o.Engine)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return ExitUsage
	}

	src, err := input.Open(o.Input, input.Options{Decompress: o.Decompress})
	if err != nil {
		log.Error().Err(err).Msg("cannot open input")
		return ExitRuntime
	}
	defer func() { _ = src.Close() }()

	var dst io.Writer = stdout
	var outFile *os.File
	if o.OutputPath != "" {
		outFile, err = os.Create(o.OutputPath)
		if err != nil {
			log.Error().Err(err).Msg("cannot create output")
			return ExitRuntime
		}
		defer func() { _ = outFile.Close() }()
		dst = outFile
	}

	thr := runutil.EffectiveThreads(o.Threads, len(src.Data))
	chunks := pipeline.Plan(len(src.Data), thr, pipeline.MinChunkSize, pipeline.ChunkOverlap)
	logStart(log, o, src, eng, thr, len(chunks))

	prog := pipeline.NewProgress(len(chunks))
	var bar *progress.Bar
	if f, ok := stderr.(*os.File); ok && progress.Enabled(o.NoProgress || o.Quiet, f) {
		bar = progress.Start(stderr, prog, progress.DefaultInterval)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	began := time.Now()
	res, perr := pipeline.Run(ctx, pipeline.Config{Threads: thr, Key: key}, src.Data, eng, prog)
	bar.Stop()
	if perr != nil {
		if errors.Is(perr, context.Canceled) || errors.Is(perr, context.DeadlineExceeded) {
			log.Warn().Msg("scan canceled")
			return ExitCanceled
		}
		log.Error().Err(perr).Msg("scan failed")
		return ExitRuntime
	}
	log.Info().
		Int("found", len(res.Matches)).
		Int("duplicates_removed", res.Duplicates).
		Dur("elapsed", time.Since(began)).
		Msg("scan complete")

	if code := write(dst, o, res.Matches, log); code != ExitOK {
		return code
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			log.Error().Err(err).Msg("write failed")
			return ExitRuntime
		}
		log.Info().Str("path", o.OutputPath).Msg("results written")
	}
	if len(res.Matches) == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

func write(dst io.Writer, o Options, list []engine.Match, log zerolog.Logger) int {
	outw := bufio.NewWriter(dst)
	wf := NewMatchWriterFactory(o.Format, o.Input, o.Header)
	inCh, writeErr := wf.Start(outw, 256)
	for _, m := range list {
		inCh <- m
	}
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		log.Error().Err(werr).Msg("write failed")
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error().Err(e).Msg("write failed")
		return ExitRuntime
	}
	return ExitOK
}

func logStart(log zerolog.Logger, o Options, src *input.Source, eng *engine.Engine, threads, chunks int) {
	names := make([]string, 0, 5)
	for _, e := range eng.Encodings() {
		names = append(names, e.String())
	}
	ev := log.Info().
		Str("file", src.Path).
		Str("size", humanize.IBytes(uint64(len(src.Data)))).
		Int("threads", threads).
		Int("chunks", chunks).
		Str("chunk_size", humanize.IBytes(uint64(pipeline.NominalChunkSize(len(src.Data), chunks)))).
		Int("min_len", eng.MinLen()).
		Str("encodings", strings.Join(names, ", "))
	if src.Compression != "" {
		ev = ev.Str("compression", src.Compression).Str("on_disk", humanize.IBytes(uint64(src.FileSize)))
	}
	if kind := eng.FilterKind(); kind != engine.FilterNone {
		ev = ev.Str("pattern", o.Engine.Search).Str("mode", string(kind))
	}
	if eng.ContextBytes() > 0 {
		ev = ev.Int("context", eng.ContextBytes())
	}
	ev.Msg("scan starting")
}
