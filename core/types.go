// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph declarations, GraphOption, sentinel errors, NewGraph.
// Policy:
//   - Vertices are the integers [0, n); the count is fixed at construction.
//   - Edges are plain records. Identity is the edge index (Edge.ID), never the
//     endpoint set; SameEndpoints is the explicit predicate for the latter.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an endpoint outside [0, Vertices()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeVertexCount indicates NewGraph was called with n < 0.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")
)

// Edge is an undirected, weighted connection between vertices U and V.
//
// ID is the position of the edge in its Graph's edge list, assigned by AddEdge.
// Two parallel edges with the same endpoints always carry distinct IDs.
type Edge struct {
	// ID is the insertion index of the edge in the owning Graph.
	ID int

	// U and V are the endpoints; their order carries no meaning.
	U, V int

	// Weight is the cost of the edge; any signed value is allowed.
	Weight int64
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Other returns the endpoint opposite to x.
// If x is not an endpoint of e the result is e.U.
func (e Edge) Other(x int) int {
	if x == e.U {
		return e.V
	}

	return e.U
}

// String renders the edge as "(u-v, weight: w)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d-%d, weight: %d)", e.U, e.V, e.Weight)
}

// SameEndpoints reports whether a and b join the same unordered pair of vertices,
// regardless of weight and ID.
func SameEndpoints(a, b Edge) bool {
	return (a.U == b.U && a.V == b.V) || (a.U == b.V && a.V == b.U)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacity preallocates room for m edges.
func WithEdgeCapacity(m int) GraphOption {
	return func(g *Graph) {
		if m > 0 {
			g.edges = make([]Edge, 0, m)
		}
	}
}

// Graph is a vertex count plus an append-only list of undirected weighted edges.
//
// Parallel edges and self-loops are stored as given. A Graph is never mutated by
// the algorithms that read it and carries no internal synchronization: callers
// that share one instance across goroutines must serialize AddEdge themselves.
type Graph struct {
	n     int    // vertex count
	edges []Edge // insertion order; edges[i].ID == i
}

// NewGraph creates a Graph over the vertices [0, n) with no edges.
// A negative n panics with ErrNegativeVertexCount.
// Complexity: O(1) plus any preallocation requested by options.
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeVertexCount, n))
	}
	g := &Graph{n: n}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
