// Package core - Graph, Edge, sentinel errors and construction options.
//
// This file declares the data types; accessors and mutators live in
// methods.go, the gonum interop constructor in gonum.go.
package core

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrNegativeNodeCount indicates NewGraph was called with a negative node count.
	ErrNegativeNodeCount = errors.New("core: node count must be non-negative")

	// ErrBadNodeWeights indicates the WithNodeWeights slice length does not
	// match the node count passed to NewGraph.
	ErrBadNodeWeights = errors.New("core: node weight slice length must equal node count")

	// ErrNodeOutOfRange indicates a node index outside 0..n-1.
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrNegativeWeight indicates a negative node or edge weight.
	ErrNegativeWeight = errors.New("core: weight must be non-negative")
)

// Edge is one directed weighted arc of the adjacency structure.
// Target is the head node ID; Weight is the non-negative arc weight.
type Edge struct {
	// Target is the node this arc points at.
	Target int

	// Weight is the arc weight.
	Weight int64
}

// Graph is a dense weighted graph with a fixed node set 0..n-1.
//
// adj[v] holds the outgoing arcs of v in insertion order. nodeWeight[v] is
// the vertex weight of v (1 unless overridden). partition[v] and
// partitionCount form the settable partition annotation written by the
// clustering stage.
type Graph struct {
	nodeWeight []int64  // vertex weights, len n
	adj        [][]Edge // outgoing arcs per node, len n
	numEdges   int      // total number of arcs added

	partition      []int // per-node partition index, len n
	partitionCount int   // number of partitions recorded on the graph
}

// GraphOption configures a Graph during NewGraph.
type GraphOption func(*graphConfig)

// graphConfig collects option values before validation in NewGraph.
type graphConfig struct {
	nodeWeights []int64
}

// WithNodeWeights sets explicit vertex weights. The slice length must equal
// the node count passed to NewGraph (ErrBadNodeWeights otherwise) and every
// weight must be non-negative (ErrNegativeWeight otherwise). The slice is
// copied; callers keep ownership of theirs.
func WithNodeWeights(weights []int64) GraphOption {
	return func(cfg *graphConfig) {
		cfg.nodeWeights = weights
	}
}

// NewGraph creates a Graph with n nodes and no arcs.
// By default every node has weight 1; use WithNodeWeights to override.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeNodeCount
	}

	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	weights := make([]int64, n)
	if cfg.nodeWeights != nil {
		if len(cfg.nodeWeights) != n {
			return nil, ErrBadNodeWeights
		}
		for _, w := range cfg.nodeWeights {
			if w < 0 {
				return nil, ErrNegativeWeight
			}
		}
		copy(weights, cfg.nodeWeights)
	} else {
		for v := range weights {
			weights[v] = 1
		}
	}

	return &Graph{
		nodeWeight: weights,
		adj:        make([][]Edge, n),
		partition:  make([]int, n),
	}, nil
}
