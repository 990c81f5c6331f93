package core

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
)

// FromGonum builds a dense *Graph from a gonum weighted graph.
//
// Gonum node IDs are arbitrary int64 values; they are remapped onto the dense
// range 0..n-1 in ascending ID order. The second return value is that mapping:
// ids[denseID] == original gonum ID. Every node gets vertex weight 1 (gonum
// graphs carry no node weights); adjust with SetNodeWeight afterwards if the
// coarsening run needs real vertex weights.
//
// Arcs are taken from src.From per node, so an undirected gonum graph yields
// the two-arcs-per-edge layout the propagation engine expects. Edge weights
// are rounded to the nearest integer; a negative weight yields
// ErrNegativeWeight.
//
// Complexity: O(V log V + E).
func FromGonum(src graph.Weighted) (*Graph, []int64, error) {
	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int64, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	dense := make(map[int64]int, len(ids))
	for i, id := range ids {
		dense[id] = i
	}

	g, err := NewGraph(len(ids))
	if err != nil {
		return nil, nil, err
	}

	for _, id := range ids {
		u := dense[id]
		for _, to := range graph.NodesOf(src.From(id)) {
			w, ok := src.Weight(id, to.ID())
			if !ok {
				return nil, nil, fmt.Errorf("core: missing weight for arc %d->%d", id, to.ID())
			}
			if err = g.AddEdge(u, dense[to.ID()], int64(math.Round(w))); err != nil {
				return nil, nil, fmt.Errorf("arc %d->%d: %w", id, to.ID(), err)
			}
		}
	}

	return g, ids, nil
}
