// Package ordering generates node visiting orders for the label propagation
// engine.
//
// A visiting order is a permutation of the node IDs 0..n-1: the sequence in
// which the engine considers vertices during one propagation sweep. The order
// is produced once per run and held fixed across all sweeps of that run.
//
// Strategies:
//
//   - Identity — nodes in ID order; fully deterministic, useful in tests and
//     as a baseline.
//   - Random   — Fisher–Yates shuffle of the identity permutation with a
//     deterministic seeded RNG (same seed ⇒ identical order).
//   - Degree   — nodes sorted by ascending out-degree, stable so equal
//     degrees remain in ID order; visits low-degree fringe vertices first.
//
// Complexity: O(V) for Identity and Random, O(V log V) for Degree.
//
// Errors (sentinel):
//
//	ErrNilGraph        — the graph pointer is nil.
//	ErrUnknownStrategy — the Strategy value is not one of the declared constants.
package ordering
