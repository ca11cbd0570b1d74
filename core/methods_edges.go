// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/EdgeCount and vertex queries.
// Determinism:
//   - Edges() returns edges in insertion order, which equals ascending Edge.ID.

package core

import "fmt"

// AddEdge appends the undirected edge {u, v} with weight w and returns the stored Edge.
//
// No deduplication is performed: adding the same pair twice yields two parallel
// edges with distinct IDs. Self-loops are stored; MST algorithms skip them.
// An endpoint outside [0, Vertices()) is a programmer error and panics with an
// error wrapping ErrVertexOutOfRange.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) Edge {
	g.mustVertex(u)
	g.mustVertex(v)
	e := Edge{ID: len(g.edges), U: u, V: v, Weight: w}
	g.edges = append(g.edges, e)

	return e
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id int) (Edge, bool) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, false
	}

	return g.edges[id], true
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges, parallel edges and loops included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns the vertex count n.
func (g *Graph) Vertices() int { return g.n }

// HasVertex reports whether x lies in [0, Vertices()).
func (g *Graph) HasVertex(x int) bool { return x >= 0 && x < g.n }

// Contains reports whether e is the edge stored under e.ID, compared field by field.
func (g *Graph) Contains(e Edge) bool {
	stored, ok := g.Edge(e.ID)

	return ok && stored == e
}

// Degree returns the number of edge endpoints incident to x; a loop counts twice.
// Complexity: O(E).
func (g *Graph) Degree(x int) int {
	g.mustVertex(x)
	deg := 0
	for _, e := range g.edges {
		if e.U == x {
			deg++
		}
		if e.V == x {
			deg++
		}
	}

	return deg
}

func (g *Graph) mustVertex(x int) {
	if !g.HasVertex(x) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, x, g.n))
	}
}
