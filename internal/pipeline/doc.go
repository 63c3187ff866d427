// Package pipeline streams input records through an Analyzer on a bounded
// worker pool and hands results back in input order.
//
// The only contract to implement is Analyzer (Analyze).
// This keeps the pipeline swappable and testable.
package pipeline
