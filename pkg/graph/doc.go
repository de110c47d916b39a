// Package graph provides the directed graph model for generated connection
// maps and its JSON serialization.
//
// # Overview
//
// A [Digraph] is built from a gen.Connections map and exposes the adjacency
// data the rendering layer consumes: sorted node ids, directed edges, and
// per-node target lists. [Digraph.Validate] re-checks the generation
// invariants (no self-loops, no duplicate targets, all targets in range),
// which matters when a graph is re-imported from disk rather than freshly
// generated.
//
//	conns, _ := gen.New(gen.WithSeed(42)).Generate(100, 0.8, 2, 3)
//	g := graph.FromConnections(conns)
//	fmt.Println(g.AdjacencyList())
//
// # Serialization
//
// [Graph] is the on-disk JSON form, carrying a [Meta] header with a unique
// run id, the generation timestamp, and the generation parameters. Round
// trips are lossless: generate → WriteGraphFile → ReadGraphFile produces an
// identical Digraph.
package graph
