package graph

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/sprawl/pkg/gen"
)

var (
	// ErrSelfLoop is returned by [Digraph.Validate] when a node lists itself
	// as a target. Generated graphs are self-loop-free.
	ErrSelfLoop = errors.New("node connects to itself")

	// ErrDuplicateTarget is returned by [Digraph.Validate] when a node lists
	// the same target twice.
	ErrDuplicateTarget = errors.New("duplicate target")

	// ErrUnknownTarget is returned by [Digraph.Validate] when an edge points
	// at a node id outside the graph's node set.
	ErrUnknownTarget = errors.New("unknown target node")

	// ErrUnknownSource is returned by [ToDigraph] when an edge starts from a
	// node id that is not declared in the node list.
	ErrUnknownSource = errors.New("unknown source node")
)

// Edge represents a directed connection between two nodes.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Digraph is a directed graph over integer node ids. It is the in-memory
// form of a generated connections map, handed to the rendering layer.
//
// The zero value is not usable - use FromConnections or New.
// Digraph is not safe for concurrent mutation without external synchronization.
type Digraph struct {
	nodes    []int // sorted ascending
	edges    []Edge
	outgoing map[int][]int // node id -> target ids in assignment order
}

// New creates an empty Digraph.
func New() *Digraph {
	return &Digraph{outgoing: make(map[int][]int)}
}

// FromConnections builds a Digraph from a generated connections map.
// Nodes are indexed in ascending id order and each node's edges follow the
// target order of the map, so the conversion is deterministic for a given map.
func FromConnections(c gen.Connections) *Digraph {
	g := &Digraph{
		nodes:    make([]int, 0, len(c)),
		outgoing: make(map[int][]int, len(c)),
	}
	for node := range c {
		g.nodes = append(g.nodes, node)
	}
	slices.Sort(g.nodes)
	for _, node := range g.nodes {
		targets := slices.Clone(c[node])
		g.outgoing[node] = targets
		for _, target := range targets {
			g.edges = append(g.edges, Edge{From: node, To: target})
		}
	}
	return g
}

// Nodes returns all node ids in ascending order.
// The returned slice is a copy.
func (g *Digraph) Nodes() []int { return slices.Clone(g.nodes) }

// Edges returns a copy of all edges in insertion order.
func (g *Digraph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Digraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges in the graph.
func (g *Digraph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether the node id exists in the graph.
func (g *Digraph) HasNode(id int) bool {
	_, ok := g.outgoing[id]
	return ok
}

// Targets returns the target ids of the node's outgoing edges.
// Returns nil if the node has no targets or doesn't exist. The returned
// slice should not be modified - use it as a read-only view.
func (g *Digraph) Targets(id int) []int { return g.outgoing[id] }

// OutDegree returns the number of outgoing edges from the node.
// Returns 0 if the node doesn't exist.
func (g *Digraph) OutDegree(id int) int { return len(g.outgoing[id]) }

// Validate checks graph integrity and returns nil if valid.
// It verifies the generation invariants:
//
//  1. No node lists itself as a target (ErrSelfLoop)
//  2. No node lists the same target twice (ErrDuplicateTarget)
//  3. Every target is a node of the graph (ErrUnknownTarget)
func (g *Digraph) Validate() error {
	for _, node := range g.nodes {
		seen := make(map[int]bool, len(g.outgoing[node]))
		for _, target := range g.outgoing[node] {
			if target == node {
				return fmt.Errorf("node %d: %w", node, ErrSelfLoop)
			}
			if seen[target] {
				return fmt.Errorf("node %d -> %d: %w", node, target, ErrDuplicateTarget)
			}
			seen[target] = true
			if !g.HasNode(target) {
				return fmt.Errorf("node %d -> %d: %w", node, target, ErrUnknownTarget)
			}
		}
	}
	return nil
}

// AdjacencyList renders the textual adjacency listing shown alongside the
// drawn graph: one line per node sorted by id, targets sorted ascending.
//
//	• 0 -> [3, 7]
//	• 1 -> [2]
func (g *Digraph) AdjacencyList() string {
	var b strings.Builder
	for i, node := range g.nodes {
		if i > 0 {
			b.WriteByte('\n')
		}
		targets := slices.Clone(g.outgoing[node])
		slices.Sort(targets)
		parts := make([]string, len(targets))
		for j, target := range targets {
			parts[j] = fmt.Sprintf("%d", target)
		}
		fmt.Fprintf(&b, "• %d -> [%s]", node, strings.Join(parts, ", "))
	}
	return b.String()
}
