// internal/runutil/runutil.go
package runutil

import "runtime"

const (
	// MaxDefaultThreads caps the automatic worker count.
	MaxDefaultThreads = 8
	// LargeInput is the size above which the worker count is capped at
	// MaxDefaultThreads even when more were requested.
	LargeInput = 100 << 20
)

// EffectiveThreads returns the worker count for an input of size bytes.
// requested <= 0 means auto: min(NumCPU, MaxDefaultThreads). For inputs
// larger than LargeInput the result never exceeds MaxDefaultThreads; more
// workers only add scheduling and merge overhead there.
func EffectiveThreads(requested int, size int) int {
	thr := requested
	if thr <= 0 {
		thr = min(runtime.NumCPU(), MaxDefaultThreads)
	}
	if size > LargeInput && thr > MaxDefaultThreads {
		thr = MaxDefaultThreads
	}
	if thr < 1 {
		thr = 1
	}
	return thr
}
