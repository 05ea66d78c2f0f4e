// Package engine contains the string-scanning core: one scanner per text
// encoding, the match filter and Extract. It never imports app, writers,
// cli, input or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here — use pkg/api
// for stable wire types (JSON/JSONL/CBOR v1).
package engine
