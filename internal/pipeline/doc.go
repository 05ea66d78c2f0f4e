// Package pipeline splits one input buffer into overlapping chunks, runs an
// Extractor over every chunk on a bounded worker pool, and merges the
// per-chunk results into one offset-ordered list without the duplicates the
// overlap windows create.
//
// The only contract to implement is Extractor (Extract).
// This keeps the pipeline swappable and testable.
package pipeline
