// Package mst computes Minimum Spanning Trees over a *core.Graph and answers
// edge-swap queries on them.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V and minimizes the sum of its edge weights. On a disconnected
//     graph the analogous object is a minimum spanning forest, one tree per component.
//
//   - What is an edge swap?
//     Remove one edge e from the tree. The tree falls apart into exactly two components.
//     Any edge of G (other than e) whose endpoints lie in different components reconnects
//     them; the lightest such edge yields the minimum spanning tree of G − {e}.
//     If no such edge exists, e is a bridge of G.
//
// Algorithms Provided
//
//   - Kruskal(g) []core.Edge
//     Stable sort by weight, then union-find (package dsu). Equal weights resolve by
//     insertion order, so the result is fully determined by the input.
//     Time O(E log E + E·α(V)), memory O(V + E).
//
//   - Prim(g, root) ([]core.Edge, error)
//     Min-heap growth from root. An independent builder, used to cross-check
//     Kruskal's total weight. Time O(E log E).
//
//   - ComponentsAfterRemoval(g, tree, removed) *dsu.DisjointSet
//     Replays every tree edge except removed into a fresh DisjointSet.
//
//   - FindReplacementEdge(g, comps, removed) (core.Edge, bool)
//     Linear scan over all edges for the lightest cross-component edge; first
//     encountered wins ties. Time O(E·α(V)).
//
//   - SwapEdge / SwapAt
//     The two steps above plus the new tree and the before/after weights.
//
// Edge identity
//
//	The removed edge is recognised by its ID (its index in the graph) together with its
//	endpoints, never by endpoint set alone. Parallel edges between the same two vertices
//	therefore stay eligible as replacements.
//
// Error Conditions
//
//	Kruskal and the two swap primitives never return errors: a short tree signals a
//	disconnected graph, and a false second result signals a bridge. The convenience
//	layer (Compute, Prim, SwapEdge) turns these into ErrDisconnected and ErrBridge.
//	Reusing a DisjointSet built for a different vertex count panics with
//	ErrStaleComponents.
//
// For examples of usage, see the example_test.go file in this package.
package mst
