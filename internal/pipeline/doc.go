// Package pipeline orchestrates the end-to-end caption runs: loading input,
// synthesizing timing, resolving speakers, serializing subtitle files into
// the per-episode output directory, and recording the run in the ledger.
// Concurrent runs against the same output tree are excluded with a file lock.
package pipeline
