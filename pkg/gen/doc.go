// Package gen generates random directed graphs with a controllable mix of
// single-connection and multi-connection nodes.
//
// # Overview
//
// A generated graph is a [Connections] map over the node set
// {0, ..., numRecords-1}. The node population is partitioned once per call:
// a fraction of the nodes (multiConnectionRatio) receives multiple outgoing
// targets, the remainder receives exactly one. Target lists never contain
// the node itself and never contain duplicates.
//
//	g := gen.New(gen.WithSeed(42))
//	conns, err := g.Generate(100, 0.8, 2, 3)
//
// # Randomness
//
// The random source is an explicit dependency of [Generator]. Package-level
// [Generate] seeds from the wall clock, so its output differs between runs;
// tests and callers that need reproducibility should construct a Generator
// with [WithSeed] or [WithRand].
//
// # Parameter tolerance
//
// Only the node count is validated (it must lie in [2, 200]). Everything
// else is tolerated: connection counts are clamped into [2, numRecords-1],
// an inverted min/max range collapses to min, and ratios outside (0, 1]
// produce degenerate but valid maps. Callers wanting strict validation must
// check parameters themselves before calling Generate.
package gen
