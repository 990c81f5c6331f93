package clustering

import (
	"github.com/GunterMueller/KaDraw/core"
)

// Match is the top-level coarsening entry point: it runs size-constrained
// label propagation on g and materializes the result for the external
// contraction stage.
//
// The returned Matching holds the per-node coarse mapping (dense cluster
// labels 0..k-1, copied one-to-one by node ID) and the coarse vertex count
// k, which is also recorded on g as its partition count. The Permutation
// slice is sized to the node count but left unpopulated; see Matching.
//
// Complexity: O(T·(V+E)).
func Match(g *core.Graph, opts ...Option) (*Matching, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	clusterID, k, err := LabelPropagation(g, opts...)
	if err != nil {
		return nil, err
	}

	n := g.NumberOfNodes()
	m := &Matching{
		CoarseMapping:      make([]int, n),
		NoOfCoarseVertices: k,
		Permutation:        make([]int, n),
	}
	if err = materializeMapping(m.CoarseMapping, clusterID); err != nil {
		return nil, err
	}
	g.SetPartitionCount(k)

	return m, nil
}

// materializeMapping copies the final per-node cluster labels into the
// pre-sized output mapping, one-to-one by node ID. No transformation is
// applied; the destination must already have the node count as its length.
func materializeMapping(dst, clusterID []int) error {
	if len(dst) != len(clusterID) {
		return ErrMappingSize
	}
	copy(dst, clusterID)

	return nil
}
