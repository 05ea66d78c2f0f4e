// internal/pipeline/plan.go
package pipeline

const (
	// MinChunkSize is the smallest input split across workers (16 MiB).
	MinChunkSize = 16 << 20
	// ChunkOverlap widens every chunk but the last so a string crossing a
	// boundary is seen whole by at least one chunk.
	ChunkOverlap = 4096
)

// ChunkSpec is a half-open range [Start, End) of the input plus the
// absolute offset of Start. Base is the unwidened start, so offsets found
// in the overlap tail stay correct.
type ChunkSpec struct {
	Start, End int
	Base       uint64
}

// Len returns the number of bytes the chunk covers, overlap included.
func (c ChunkSpec) Len() int { return c.End - c.Start }

// Plan partitions total bytes into at most threads chunks of at least
// minChunk bytes each. Inputs smaller than minChunk get a single chunk.
// Every chunk except the last extends overlap bytes past its nominal end,
// clipped to total.
func Plan(total, threads, minChunk, overlap int) []ChunkSpec {
	if threads < 1 {
		threads = 1
	}
	if total < minChunk || minChunk <= 0 {
		return []ChunkSpec{{Start: 0, End: total, Base: 0}}
	}
	n := total / minChunk
	if threads < n {
		n = threads
	}
	size := total / n
	chunks := make([]ChunkSpec, n)
	for i := 0; i < n; i++ {
		start := i * size
		end := total
		if i < n-1 {
			end = min((i+1)*size+overlap, total)
		}
		chunks[i] = ChunkSpec{Start: start, End: end, Base: uint64(start)}
	}
	return chunks
}

// NominalChunkSize returns the chunk size Plan uses before overlap.
func NominalChunkSize(total, chunks int) int {
	if chunks <= 1 {
		return total
	}
	return total / chunks
}
