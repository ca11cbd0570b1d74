// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() and AdjacencyList() order edges by Edge.ID asc.
//   - NeighborIDs() returns unique vertices sorted asc.

package core

import "sort"

// Neighbors returns the edges incident to x, ordered by Edge.ID ascending.
// A self-loop on x appears once. Parallel edges all appear.
//
// An out-of-range x panics with an error wrapping ErrVertexOutOfRange.
//
// Complexity: O(E).
func (g *Graph) Neighbors(x int) []Edge {
	g.mustVertex(x)
	var out []Edge
	for _, e := range g.edges {
		if e.U == x || e.V == x {
			out = append(out, e)
		}
	}

	return out
}

// NeighborIDs returns the distinct vertices adjacent to x, sorted ascending.
// x itself is included only when it carries a self-loop.
//
// Complexity: O(E + k log k), k = number of distinct neighbors.
func (g *Graph) NeighborIDs(x int) []int {
	edges := g.Neighbors(x)
	seen := make(map[int]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(x)] = struct{}{}
	}

	ids := make([]int, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// AdjacencyList returns, for every vertex, the IDs of its incident edges in
// ascending order. A self-loop is listed once under its vertex.
// The returned slices are freshly allocated and safe to retain.
//
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]int {
	adj := make([][]int, g.n)
	for _, e := range g.edges {
		adj[e.U] = append(adj[e.U], e.ID)
		if !e.IsLoop() {
			adj[e.V] = append(adj[e.V], e.ID)
		}
	}

	return adj
}
