package gen

import (
	"math/rand"
	"time"

	"github.com/matzehuels/sprawl/pkg/errors"
)

// Bounds for the number of nodes accepted by Generate.
const (
	MinRecords = 2
	MaxRecords = 200
)

// Defaults matching the CLI flag defaults.
const (
	DefaultNumRecords           = 100
	DefaultMultiConnectionRatio = 0.8
	DefaultMinConnections       = 2
	DefaultMaxConnections       = 3
)

// Connections maps each node to its ordered list of outgoing targets.
// Keys are exactly the node set {0, ..., numRecords-1}. A target list never
// contains the node itself and never contains duplicates.
type Connections map[int][]int

// NodeCount returns the number of nodes in the map.
func (c Connections) NodeCount() int { return len(c) }

// EdgeCount returns the total number of outgoing targets across all nodes.
func (c Connections) EdgeCount() int {
	total := 0
	for _, targets := range c {
		total += len(targets)
	}
	return total
}

// MultiCount returns the number of nodes with more than one target.
func (c Connections) MultiCount() int {
	count := 0
	for _, targets := range c {
		if len(targets) > 1 {
			count++
		}
	}
	return count
}

// Generator produces random connection maps from an explicit random source.
// Injecting the source keeps generation deterministic under a fixed seed and
// avoids shared mutable state between concurrent callers.
//
// The zero value is not usable - use New.
type Generator struct {
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source used for all sampling and shuffling.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithSeed seeds a fresh random source with the given value.
// Two generators built with the same seed produce identical maps for
// identical parameters.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// New creates a Generator. Without options the source is seeded from the
// current time, so repeated runs produce different graphs.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Generate builds a random connections map for numRecords nodes.
//
// The node set is partitioned into single-connection nodes (exactly one
// target) and multi-connection nodes (between minConnections and
// maxConnections targets, clamped to [2, numRecords-1]). The proportion of
// multi-connection nodes is floor(numRecords * multiConnectionRatio).
//
// Returns an OUT_OF_RANGE error when numRecords is outside [2, 200]. All
// other parameter combinations are tolerated: an inverted min/max range is
// treated as min=max, and out-of-bounds connection counts are clamped rather
// than rejected. Degenerate ratios simply yield zero multi-connection nodes.
//
// numRecords == 2 short-circuits to the fixed mutual pair {0:[1], 1:[0]},
// ignoring the remaining parameters.
func (g *Generator) Generate(numRecords int, multiConnectionRatio float64, minConnections, maxConnections int) (Connections, error) {
	if numRecords < MinRecords || numRecords > MaxRecords {
		return nil, errors.New(errors.ErrCodeOutOfRange,
			"num_records must be between %d and %d, got %d", MinRecords, MaxRecords, numRecords)
	}
	if numRecords == 2 {
		return Connections{0: {1}, 1: {0}}, nil
	}

	// Shuffled node ids. The first singleCount entries form the
	// single-connection population, the rest the multi-connection one; the
	// shuffle makes that split a uniform sample without replacement.
	nodes := g.rng.Perm(numRecords)

	multiCount := int(float64(numRecords) * multiConnectionRatio)
	singleCount := numRecords - multiCount

	connections := make(Connections, numRecords)

	for i, node := range nodes {
		if i < singleCount {
			connections[node] = []int{g.pickTarget(node, numRecords)}
			continue
		}
		k := clampConnections(g.randRange(minConnections, maxConnections), numRecords)
		connections[node] = g.sampleTargets(node, numRecords, k)
	}

	return connections, nil
}

// pickTarget draws one uniform node id != self.
func (g *Generator) pickTarget(self, numRecords int) int {
	t := g.rng.Intn(numRecords - 1)
	if t >= self {
		t++
	}
	return t
}

// sampleTargets draws k distinct node ids != self, in sampled order.
func (g *Generator) sampleTargets(self, numRecords, k int) []int {
	candidates := make([]int, 0, numRecords-1)
	for n := 0; n < numRecords; n++ {
		if n != self {
			candidates = append(candidates, n)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:k:k]
}

// randRange draws an integer in [lo, hi]. An inverted range collapses to lo.
func (g *Generator) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// clampConnections forces a connection count into [2, numRecords-1].
func clampConnections(k, numRecords int) int {
	if k > numRecords-1 {
		k = numRecords - 1
	}
	if k < 2 {
		k = 2
	}
	return k
}

// Generate is a convenience wrapper using a time-seeded Generator.
// For reproducible output, build a Generator with WithSeed or WithRand.
func Generate(numRecords int, multiConnectionRatio float64, minConnections, maxConnections int) (Connections, error) {
	return New().Generate(numRecords, multiConnectionRatio, minConnections, maxConnections)
}
