// Package core defines the dense weighted Graph consumed by the coarsening
// pipeline, together with its sentinel errors and construction options.
//
// The Graph addresses nodes by dense integer IDs 0..n-1 and stores directed
// weighted arcs in per-node adjacency slices. Undirected graphs are stored as
// two opposing arcs per edge (AddUndirectedEdge does this for you), which is
// the layout the label propagation engine expects when it iterates outgoing
// edges of a vertex.
//
// Shape vs. annotation:
//
//   - The node set is fixed at construction; arcs are appended afterwards.
//   - Node weights and edge weights are non-negative int64 values.
//   - The partition annotation (per-node partition index plus a partition
//     count) is the one mutable output surface: clustering writes its final
//     compact cluster labels there when asked to finalize a partition.
//
// Complexity:
//
//   - AddEdge, NodeWeight, Degree, PartitionIndex: O(1)
//   - Neighbors(v): O(1) (returns the node's adjacency slice; callers must
//     treat it as read-only)
//   - TotalNodeWeight: O(V)
//
// Errors (sentinel):
//
//	ErrNegativeNodeCount — NewGraph called with n < 0.
//	ErrBadNodeWeights    — WithNodeWeights slice length differs from n.
//	ErrNodeOutOfRange    — a node index outside 0..n-1 was passed to a mutator.
//	ErrNegativeWeight    — a negative node or edge weight was supplied.
//
// The Graph is not safe for concurrent mutation; the clustering engine is
// single-threaded and owns the graph for the duration of a run.
package core
