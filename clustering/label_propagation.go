package clustering

import (
	"fmt"
	"math"

	"github.com/GunterMueller/KaDraw/core"
	"github.com/GunterMueller/KaDraw/ordering"
)

// LabelPropagation runs size-constrained label propagation on g and returns
// the remapped cluster label slice (one dense label 0..k-1 per node, indexed
// by node ID) together with the cluster count k.
//
// The cap, sweep count, visiting order, tie-break source and logger come
// from the functional options; see Options for defaults. The label slice is
// freshly allocated and owned by the caller; g itself is left untouched
// (use RemapClusterIDs with applyToGraph, or Match, to write results back).
//
// Complexity: O(T·(V+E)) time, O(V) extra space.
func LabelPropagation(g *core.Graph, opts ...Option) ([]int, int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if cfg.Iterations < 0 {
		return nil, 0, ErrBadIterations
	}
	if math.IsNaN(cfg.UpperBound) || cfg.UpperBound < 0 {
		return nil, 0, ErrBadUpperBound
	}

	r, err := newRunner(g, cfg)
	if err != nil {
		return nil, 0, err
	}
	r.propagate()

	k, err := RemapClusterIDs(g, r.clusterID, false)
	if err != nil {
		return nil, 0, err
	}

	return r.clusterID, k, nil
}

// runner holds the mutable state of a single propagation run. All three
// arrays are exclusively owned by the run; clusterID and clusterSize are
// updated together on every move so that clusterSize[c] always equals the
// total weight of the nodes currently labeled c.
type runner struct {
	g     *core.Graph
	bound int64 // effective cluster weight cap, ceil of the configured bound

	clusterID   []int   // current cluster label per node
	clusterSize []int64 // live total vertex weight per label
	hashMap     []int64 // scratch: accumulated edge weight per label, zero between vertices

	order []int      // fixed visiting order for all sweeps of this run
	coin  BoolSource // tie-break source

	iterations int
	cfg        Options
}

// newRunner allocates the per-run state: singleton labels, matching size
// buckets, a clean scratch accumulator and the fixed visiting order.
func newRunner(g *core.Graph, cfg Options) (*runner, error) {
	n := g.NumberOfNodes()

	r := &runner{
		g:           g,
		bound:       cfg.bound(),
		clusterID:   make([]int, n),
		clusterSize: make([]int64, n),
		hashMap:     make([]int64, n),
		coin:        cfg.TieBreaker,
		iterations:  cfg.Iterations,
		cfg:         cfg,
	}
	if r.coin == nil {
		r.coin = newCoin(cfg.Seed)
	}

	// Every node starts as its own singleton cluster of matching size.
	for v := 0; v < n; v++ {
		r.clusterID[v] = v
		r.clusterSize[v] = g.NodeWeight(v)
	}

	// The visiting order is generated once and held fixed across sweeps.
	order, err := ordering.Permutation(g,
		ordering.WithStrategy(cfg.Strategy),
		ordering.WithSeed(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("clustering: visiting order: %w", err)
	}
	r.order = order

	return r, nil
}

// propagate runs the configured number of sweeps. Sweeps always run in full:
// the change counter feeds diagnostics, it does not gate termination.
func (r *runner) propagate() {
	for sweep := 0; sweep < r.iterations; sweep++ {
		changed := 0
		for _, node := range r.order {
			if r.visit(node) {
				changed++
			}
		}
		r.cfg.Logger.Debug().
			Int("sweep", sweep+1).
			Int("moves", changed).
			Msg("label propagation sweep")
	}
}

// visit moves node to the admissible neighboring cluster with the highest
// accumulated incident edge weight and reports whether the label changed.
//
// Phase one accumulates edge weight per neighboring label into hashMap.
// Phase two re-scans the same edges to pick the best label, zeroing each
// slot immediately after reading it so the accumulator is clean for the
// next vertex. A candidate label wins if its accumulated weight strictly
// exceeds the running best, or ties it and the coin favors it — and in
// either case the cluster has room for the node's weight, or is the node's
// own current cluster (always admissible, regardless of capacity).
func (r *runner) visit(node int) bool {
	edges := r.g.Neighbors(node)
	for _, e := range edges {
		r.hashMap[r.clusterID[e.Target]] += e.Weight
	}

	myBlock := r.clusterID[node]
	maxBlock := myBlock
	weight := r.g.NodeWeight(node)

	var maxValue int64
	for _, e := range edges {
		curBlock := r.clusterID[e.Target]
		curValue := r.hashMap[curBlock]
		if (curValue > maxValue || (curValue == maxValue && r.coin.NextBool())) &&
			(r.clusterSize[curBlock]+weight <= r.bound || curBlock == myBlock) {
			maxValue = curValue
			maxBlock = curBlock
		}

		r.hashMap[curBlock] = 0
	}

	// Commit the move: size buckets and label update together.
	r.clusterSize[myBlock] -= weight
	r.clusterSize[maxBlock] += weight
	r.clusterID[node] = maxBlock

	return maxBlock != myBlock
}
