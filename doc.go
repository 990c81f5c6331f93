// Package kadraw is the clustering core of a graph coarsening pipeline:
// it partitions the vertices of a weighted graph into size-bounded clusters
// via label propagation, so that an external contraction stage can collapse
// each cluster into a single coarse vertex.
//
// What the module provides:
//
//	core/       — dense weighted graph: integer node IDs 0..n-1, per-node
//	              weights, directed weighted arcs, partition annotation
//	ordering/   — node visiting-order generators: identity, seeded random
//	              shuffle, degree-sorted
//	clustering/ — size-constrained label propagation, cluster ID remapping
//	              and the coarse-mapping entry points
//
// Why label propagation?
//
//   - Fast: O(T·(V+E)) for T sweeps — linear per sweep, no global objective
//   - Local: every decision reads only a vertex's direct neighborhood
//   - Size-aware: no cluster grows past a configured weight bound, so the
//     contracted graph keeps balanced coarse vertices
//
// Quick sketch:
//
//	g, _ := core.NewGraph(4)
//	g.AddUndirectedEdge(0, 1, 1)
//	g.AddUndirectedEdge(1, 2, 1)
//	g.AddUndirectedEdge(2, 3, 1)
//	m, _ := clustering.Match(g, clustering.WithUpperBound(2))
//	// m.CoarseMapping holds one dense cluster label per vertex,
//	// m.NoOfCoarseVertices the number of clusters.
//
// The heuristic is greedy and local; it approximates community structure and
// makes no optimality guarantee. See the clustering package documentation for
// the exact sweep and tie-breaking semantics.
//
//	go get github.com/GunterMueller/KaDraw
package kadraw
