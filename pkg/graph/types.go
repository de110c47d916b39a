package graph

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/sprawl/pkg/gen"
)

// Graph is the canonical serialization format for generated graphs.
// Used for file artifacts, API responses, and cache keys.
//
// The format is human-readable and designed for round-trip fidelity:
// generate → export → re-import produces an identical Digraph.
type Graph struct {
	Meta  Meta   `json:"meta"`
	Nodes []int  `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Meta carries provenance for a generated graph.
type Meta struct {
	// ID uniquely identifies one generation run.
	ID string `json:"id,omitempty"`
	// GeneratedAt is the UTC time of generation.
	GeneratedAt time.Time `json:"generated_at,omitzero"`
	// Params records the generation parameters, when known.
	Params *Params `json:"params,omitempty"`
}

// Params are the shape parameters a graph was generated with.
type Params struct {
	NumRecords           int     `json:"num_records"`
	MultiConnectionRatio float64 `json:"multi_connection_ratio"`
	MinConnections       int     `json:"min_connections"`
	MaxConnections       int     `json:"max_connections"`
	// Seed is set only when the caller pinned the random source.
	Seed *int64 `json:"seed,omitempty"`
}

// NewMeta creates provenance metadata for a fresh generation run.
func NewMeta(params Params, seed *int64) Meta {
	params.Seed = seed
	return Meta{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Params:      &params,
	}
}

// FromDigraph converts a Digraph to its serialization format.
// Nodes are sorted by id and edges follow node order, so output is
// deterministic for a given graph.
func FromDigraph(g *Digraph, meta Meta) Graph {
	return Graph{
		Meta:  meta,
		Nodes: g.Nodes(),
		Edges: g.Edges(),
	}
}

// ToDigraph converts serialized form back to a Digraph.
// Returns a validation error if the data breaks the generation invariants
// (self-loops, duplicate targets, or edges touching undeclared nodes).
func ToDigraph(data Graph) (*Digraph, error) {
	c := make(gen.Connections, len(data.Nodes))
	for _, node := range data.Nodes {
		c[node] = nil
	}
	for _, e := range data.Edges {
		if _, ok := c[e.From]; !ok {
			return nil, fmt.Errorf("edge %d -> %d: %w", e.From, e.To, ErrUnknownSource)
		}
		c[e.From] = append(c[e.From], e.To)
	}
	g := FromConnections(c)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
