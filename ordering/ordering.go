package ordering

import (
	"sort"

	"github.com/GunterMueller/KaDraw/core"
)

// Permutation produces a visiting order over the nodes of g: a slice of
// length g.NumberOfNodes() in which every node ID appears exactly once.
//
// The strategy, seed and RNG come from the functional options; see Options
// for defaults. The returned slice is freshly allocated and owned by the
// caller.
//
// Complexity: O(V) for Identity/Random, O(V log V) for Degree.
func Permutation(g *core.Graph, opts ...Option) ([]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}

	// Every strategy starts from the identity permutation.
	perm := make([]int, g.NumberOfNodes())
	for i := range perm {
		perm[i] = i
	}

	switch cfg.Strategy {
	case Identity:
		// ID order as-is.
	case Random:
		rng := cfg.Rand
		if rng == nil {
			rng = rngFromSeed(cfg.Seed)
		}
		shuffleInPlace(perm, rng)
	case Degree:
		// Stable sort keeps equal degrees in ID order.
		sort.SliceStable(perm, func(i, j int) bool {
			return g.Degree(perm[i]) < g.Degree(perm[j])
		})
	default:
		return nil, ErrUnknownStrategy
	}

	return perm, nil
}
