package clustering

import (
	"fmt"

	"github.com/GunterMueller/KaDraw/core"
)

// RemapClusterIDs compacts the labels in clusterID onto the dense range
// 0..k-1 and returns k, the number of distinct clusters.
//
// The bijection preserves first-encounter order during a single forward scan
// over nodes in ID order (not the propagation visiting order): the label seen
// first becomes 0, the next new label 1, and so on. clusterID is rewritten in
// place.
//
// With applyToGraph set, the compacted label of every node is additionally
// written to the graph's partition annotation and k is recorded as the
// graph's partition count — the standalone partition-finalization mode.
//
// An already-compact slice (k labels 0..k-1 first encountered in ID order)
// maps to itself.
//
// Complexity: O(V).
func RemapClusterIDs(g *core.Graph, clusterID []int, applyToGraph bool) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.NumberOfNodes()
	if len(clusterID) != n {
		return 0, fmt.Errorf("%w: got %d labels for %d nodes", ErrMappingSize, len(clusterID), n)
	}

	remap := make(map[int]int, n)
	next := 0
	for node := 0; node < n; node++ {
		compact, seen := remap[clusterID[node]]
		if !seen {
			compact = next
			remap[clusterID[node]] = compact
			next++
		}
		clusterID[node] = compact
	}

	if applyToGraph {
		for node := 0; node < n; node++ {
			if err := g.SetPartitionIndex(node, clusterID[node]); err != nil {
				return 0, err
			}
		}
		g.SetPartitionCount(next)
	}

	return next, nil
}
