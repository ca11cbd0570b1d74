// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone keeps edge IDs, so future AddEdge calls on the clone continue the same sequence.

package core

// CloneEmpty returns a Graph with the same vertex count and no edges.
// Complexity: O(1).
func (g *Graph) CloneEmpty() *Graph {
	return NewGraph(g.n)
}

// Clone returns an independent copy of the Graph: vertex count and every edge with its ID.
// Complexity: O(E).
func (g *Graph) Clone() *Graph {
	return &Graph{n: g.n, edges: g.Edges()}
}

// FilterEdges returns a new Graph holding only the edges for which keep returns true.
// Surviving edges are renumbered in their original relative order.
// Complexity: O(E).
func (g *Graph) FilterEdges(keep func(Edge) bool) *Graph {
	out := NewGraph(g.n, WithEdgeCapacity(len(g.edges)))
	for _, e := range g.edges {
		if keep(e) {
			out.AddEdge(e.U, e.V, e.Weight)
		}
	}

	return out
}
