// Package engine runs the full analysis of one input record: preprocessing,
// folding, prefix family and module projection. It never imports foldapp,
// writers, output or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
