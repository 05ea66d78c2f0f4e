// internal/pipeline/sim.go
package pipeline

import "memstrap/internal/engine"

// Extractor is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Extractor interface {
	Extract(data []byte, base uint64) []engine.Match
}
