package core

import "fmt"

// NumberOfNodes returns the node count n. Node IDs are 0..n-1.
// Complexity: O(1).
func (g *Graph) NumberOfNodes() int {
	return len(g.adj)
}

// NumberOfEdges returns the total number of directed arcs added so far.
// An undirected edge added via AddUndirectedEdge counts as two arcs.
// Complexity: O(1).
func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

// NodeWeight returns the vertex weight of v.
// v must be a valid node ID; out-of-range access panics.
func (g *Graph) NodeWeight(v int) int64 {
	return g.nodeWeight[v]
}

// SetNodeWeight overwrites the vertex weight of v.
// Returns ErrNodeOutOfRange or ErrNegativeWeight on invalid input.
func (g *Graph) SetNodeWeight(v int, w int64) error {
	if v < 0 || v >= len(g.nodeWeight) {
		return fmt.Errorf("%w: node %d of %d", ErrNodeOutOfRange, v, len(g.nodeWeight))
	}
	if w < 0 {
		return fmt.Errorf("%w: node weight %d", ErrNegativeWeight, w)
	}
	g.nodeWeight[v] = w

	return nil
}

// Degree returns the number of outgoing arcs of v.
// v must be a valid node ID; out-of-range access panics.
func (g *Graph) Degree(v int) int {
	return len(g.adj[v])
}

// Neighbors returns the outgoing arcs of v in insertion order.
// The returned slice aliases internal storage and must not be modified.
// v must be a valid node ID; out-of-range access panics.
func (g *Graph) Neighbors(v int) []Edge {
	return g.adj[v]
}

// AddEdge appends the directed arc u→v with weight w.
// Parallel arcs and self-loops are permitted; their weights accumulate
// naturally during neighborhood aggregation downstream.
// Returns ErrNodeOutOfRange or ErrNegativeWeight on invalid input.
func (g *Graph) AddEdge(u, v int, w int64) error {
	n := len(g.adj)
	if u < 0 || u >= n {
		return fmt.Errorf("%w: source %d of %d", ErrNodeOutOfRange, u, n)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("%w: target %d of %d", ErrNodeOutOfRange, v, n)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge weight %d", ErrNegativeWeight, w)
	}
	g.adj[u] = append(g.adj[u], Edge{Target: v, Weight: w})
	g.numEdges++

	return nil
}

// AddUndirectedEdge stores the undirected edge {u,v} as the two arcs u→v and
// v→u, the layout the propagation engine expects. A self-loop (u == v) is
// stored as a single arc.
func (g *Graph) AddUndirectedEdge(u, v int, w int64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return err
	}
	if u == v {
		return nil
	}

	return g.AddEdge(v, u, w)
}

// TotalNodeWeight returns the sum of all vertex weights.
// Complexity: O(V).
func (g *Graph) TotalNodeWeight() int64 {
	var total int64
	for _, w := range g.nodeWeight {
		total += w
	}

	return total
}

// PartitionIndex returns the partition annotation of v (0 until set).
// v must be a valid node ID; out-of-range access panics.
func (g *Graph) PartitionIndex(v int) int {
	return g.partition[v]
}

// SetPartitionIndex records partition p for node v.
// Returns ErrNodeOutOfRange if v is not a valid node ID.
func (g *Graph) SetPartitionIndex(v, p int) error {
	if v < 0 || v >= len(g.partition) {
		return fmt.Errorf("%w: node %d of %d", ErrNodeOutOfRange, v, len(g.partition))
	}
	g.partition[v] = p

	return nil
}

// PartitionCount returns the partition count recorded on the graph
// (0 until SetPartitionCount is called).
func (g *Graph) PartitionCount() int {
	return g.partitionCount
}

// SetPartitionCount records the number of partitions on the graph.
func (g *Graph) SetPartitionCount(k int) {
	g.partitionCount = k
}
