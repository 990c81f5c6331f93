package ordering_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GunterMueller/KaDraw/core"
	"github.com/GunterMueller/KaDraw/ordering"
)

// buildStar constructs a star graph: node 0 is the hub connected to all
// other n-1 nodes, so degrees are n-1 for the hub and 1 for the leaves.
func buildStar(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for v := 1; v < n; v++ {
		require.NoError(t, g.AddUndirectedEdge(0, v, 1))
	}

	return g
}

// assertIsPermutation checks that perm contains every node ID 0..n-1 exactly once.
func assertIsPermutation(t *testing.T, perm []int, n int) {
	t.Helper()
	require.Len(t, perm, n)
	seen := make([]bool, n)
	for _, v := range perm {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "node %d appears twice", v)
		seen[v] = true
	}
}

// TestPermutation_NilGraph verifies the nil-graph sentinel.
func TestPermutation_NilGraph(t *testing.T) {
	_, err := ordering.Permutation(nil)
	assert.ErrorIs(t, err, ordering.ErrNilGraph)
}

// TestPermutation_UnknownStrategy verifies the strategy sentinel.
func TestPermutation_UnknownStrategy(t *testing.T) {
	g := buildStar(t, 3)
	_, err := ordering.Permutation(g, ordering.WithStrategy(ordering.Strategy(42)))
	assert.ErrorIs(t, err, ordering.ErrUnknownStrategy)
}

// TestPermutation_Identity verifies ID order output.
func TestPermutation_Identity(t *testing.T) {
	g := buildStar(t, 5)
	perm, err := ordering.Permutation(g, ordering.WithStrategy(ordering.Identity))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, perm)
}

// TestPermutation_Random checks the permutation property and seed determinism.
func TestPermutation_Random(t *testing.T) {
	const n = 64
	g := buildStar(t, n)

	p1, err := ordering.Permutation(g, ordering.WithStrategy(ordering.Random), ordering.WithSeed(7))
	require.NoError(t, err)
	assertIsPermutation(t, p1, n)

	// Same seed reproduces the same order.
	p2, err := ordering.Permutation(g, ordering.WithStrategy(ordering.Random), ordering.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	// A different seed should give a different order for n this large.
	p3, err := ordering.Permutation(g, ordering.WithStrategy(ordering.Random), ordering.WithSeed(8))
	require.NoError(t, err)
	assertIsPermutation(t, p3, n)
	assert.NotEqual(t, p1, p3)

	// Seed 0 is the fixed default stream, also deterministic.
	p4, err := ordering.Permutation(g, ordering.WithStrategy(ordering.Random))
	require.NoError(t, err)
	p5, err := ordering.Permutation(g, ordering.WithStrategy(ordering.Random), ordering.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, p4, p5)
}

// TestPermutation_WithRand verifies an explicit RNG takes precedence over Seed.
func TestPermutation_WithRand(t *testing.T) {
	const n = 32
	g := buildStar(t, n)

	p1, err := ordering.Permutation(g,
		ordering.WithStrategy(ordering.Random),
		ordering.WithRand(rand.New(rand.NewSource(99))),
		ordering.WithSeed(7))
	require.NoError(t, err)

	p2, err := ordering.Permutation(g,
		ordering.WithStrategy(ordering.Random),
		ordering.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)

	assertIsPermutation(t, p1, n)
	assert.Equal(t, p1, p2) // the seed option was ignored in favor of the RNG
}

// TestPermutation_Degree verifies ascending-degree order with stable ties.
func TestPermutation_Degree(t *testing.T) {
	g := buildStar(t, 4) // degrees: node 0 → 3, nodes 1..3 → 1

	perm, err := ordering.Permutation(g, ordering.WithStrategy(ordering.Degree))
	require.NoError(t, err)

	// Leaves first in ID order (stable), hub last.
	assert.Equal(t, []int{1, 2, 3, 0}, perm)
}

// TestPermutation_EmptyGraph verifies the degenerate zero-node case.
func TestPermutation_EmptyGraph(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)

	for _, s := range []ordering.Strategy{ordering.Identity, ordering.Random, ordering.Degree} {
		perm, err := ordering.Permutation(g, ordering.WithStrategy(s))
		require.NoError(t, err)
		assert.Empty(t, perm)
	}
}
