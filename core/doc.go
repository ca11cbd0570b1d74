// Package core provides the Graph container the MST algorithms operate on:
// a fixed vertex count n and an append-only list of undirected weighted edges.
//
// Vertices are the integers [0, n). Edges are plain value records
//
//	Edge{ID, U, V, Weight}
//
// where ID is the position of the edge in the Graph's edge list. Identity is the
// ID, not the endpoint set: two parallel edges between the same pair of vertices
// are distinct edges. Code that needs endpoint-set comparison calls
// SameEndpoints explicitly.
//
// Why this shape?
//
//   - Algorithms index straight into slices ([0, n) vertices, [0, m) edges), so
//     union-find and adjacency arrays need no maps or ID translation.
//   - Insertion order is preserved and fully deterministic, which is what
//     Kruskal's stable sort uses to break weight ties.
//   - Edges are never installed as keys of maps or ordered containers; sorting is
//     always by an explicit weight key.
//
// Operations:
//
//	NewGraph(n, opts...)   – O(1)
//	AddEdge(u, v, w)       – O(1) amortized, returns the stored Edge (with its ID)
//	Edge(id), Edges()      – O(1), O(E) copy
//	Vertices(), EdgeCount()
//	Clone(), CloneEmpty(), FilterEdges(keep)
//
// Errors:
//
//	Range violations are programmer errors. AddEdge and Degree panic with an
//	error wrapping ErrVertexOutOfRange; NewGraph panics with ErrNegativeVertexCount.
//
// A Graph has no internal locking. Distinct instances are independent and may be
// used from different goroutines freely.
package core
