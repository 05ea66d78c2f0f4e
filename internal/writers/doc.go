// Package writers turns extracted matches into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (CSV/TSV/JSON/JSONL/CBOR).
//   • Engine stays domain-only; Pipeline stays orchestration-only.
//   • JSON/JSONL/CBOR go through pkg/api (v1) for a stable wire format.
package writers
