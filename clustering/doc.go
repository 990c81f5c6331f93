// Package clustering implements size-constrained label propagation: the
// clustering step of a graph coarsening pipeline.
//
// Every vertex starts as its own singleton cluster. In each sweep the engine
// visits every vertex (in a fixed, per-run visiting order) and moves it into
// the neighboring cluster that accumulates the highest total incident edge
// weight — provided the move keeps that cluster's total vertex weight within
// the configured upper bound U. A vertex may always remain in its current
// cluster, even when that cluster is already at or over capacity; this keeps
// a vertex heavier than U from deadlocking the sweep. Equal-weight candidates
// are broken by a fair coin flip per occurrence, not by first-seen or lowest
// ID.
//
// Per-vertex selection is two-phase: one pass over the outgoing edges
// accumulates edge weight per neighboring cluster label into a scratch array
// indexed by label, then a second pass picks the best admissible label and
// zeroes each scratch slot right after reading it. The scratch array is
// thereby clean for the next vertex without a separate clearing pass, keeping
// per-vertex cost proportional to its degree.
//
// After the configured number of sweeps (always run in full; there is no
// early termination) the surviving labels are compacted onto the dense range
// 0..k-1 in first-encounter order over node IDs.
//
// Entry points:
//
//   - Match            — full coarsening step: runs the engine, materializes
//     the per-vertex coarse mapping and reports the coarse vertex count.
//   - LabelPropagation — labels only: returns the remapped cluster label
//     slice and the cluster count without touching any mapping structure.
//   - RemapClusterIDs  — standalone label compaction, optionally finalizing
//     the result as the graph's partition annotation.
//
// Complexity:
//
//   - Time:  O(T·(V + E)) for T sweeps — each sweep touches every vertex once
//     and every arc twice.
//   - Space: O(V) for the label array, the cluster size buckets and the
//     scratch accumulator.
//
// Determinism: with a fixed seed and a deterministic tie-break source
// (see BoolSource), identical inputs produce identical outputs.
//
// This is a fast, greedy, local heuristic: it approximates community
// structure under the size constraint and guarantees neither optimality nor
// convergence to a fixed point within the sweep budget.
//
// Errors (sentinel):
//
//	ErrNilGraph      — the graph pointer is nil.
//	ErrBadIterations — the sweep count is negative.
//	ErrBadUpperBound — the cluster upper bound is negative or NaN.
//	ErrMappingSize   — a label slice does not match the graph's node count.
package clustering
