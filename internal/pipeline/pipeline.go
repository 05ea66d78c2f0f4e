// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"memstrap/internal/engine"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads  int     // number of worker goroutines (>=1)
	MinChunk int     // smallest chunk worth a worker; 0 = MinChunkSize
	Overlap  int     // bytes each chunk reads past its end; 0 = ChunkOverlap
	Key      KeyFunc // dedup key; nil = ByOffset
}

// Result is the merged outcome of one scan.
type Result struct {
	Matches    []engine.Match // ordered by offset, duplicates removed
	Chunks     []ChunkSpec
	Raw        int // matches before dedup
	Duplicates int // matches dropped by Merge
}

// ScanChunks runs ext once per chunk on at most threads goroutines and
// returns the per-chunk results indexed like chunks. Tasks share only the
// read-only input; each writes its own result slot. The only error is
// cancellation of ctx, observed before a task starts.
func ScanChunks(
	ctx context.Context,
	data []byte,
	chunks []ChunkSpec,
	threads int,
	ext Extractor,
	prog *Progress,
) ([][]engine.Match, error) {
	if threads < 1 {
		threads = 1
	}
	results := make([][]engine.Match, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, c := range chunks {
		if gctx.Err() != nil {
			break
		}
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = ext.Extract(data[c.Start:c.End], c.Base)
			prog.Advance()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Run plans chunks over data, scans them in parallel and merges the
// results. prog may be nil; when set, its total is the planned chunk count.
func Run(ctx context.Context, cfg Config, data []byte, ext Extractor, prog *Progress) (Result, error) {
	minChunk := cfg.MinChunk
	if minChunk <= 0 {
		minChunk = MinChunkSize
	}
	overlap := cfg.Overlap
	if overlap <= 0 {
		overlap = ChunkOverlap
	}

	chunks := Plan(len(data), cfg.Threads, minChunk, overlap)
	prog.SetTotal(len(chunks))

	perChunk, err := ScanChunks(ctx, data, chunks, cfg.Threads, ext, prog)
	if err != nil {
		return Result{Chunks: chunks}, err
	}
	merged, dups := Merge(perChunk, cfg.Key)
	return Result{
		Matches:    merged,
		Chunks:     chunks,
		Raw:        len(merged) + dups,
		Duplicates: dups,
	}, nil
}
