// Package mst provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a slice of edges forming the MST.
package mst

import (
	"sort"

	"github.com/katalvlaran/mstswap/core"
	"github.com/katalvlaran/mstswap/dsu"
)

// Kruskal computes a Minimum Spanning Tree (or, on a disconnected graph, a minimum
// spanning forest) of graph.
//
// Steps:
//  1. Copy the edge list and drop self-loops.
//  2. Stable-sort by ascending weight, so equal weights keep insertion (ID) order.
//  3. Walk the sorted edges with a fresh DisjointSet; keep an edge iff Union succeeds.
//  4. Stop once |V|-1 edges are selected.
//
// The result lists edges in the order they were selected. A connected graph yields
// exactly |V|-1 edges; fewer means the graph is disconnected (see IsSpanning).
// The graph is not modified.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(graph *core.Graph) []core.Edge {
	n := graph.Vertices()
	if n <= 1 {
		return []core.Edge{}
	}

	all := graph.Edges()
	edges := all[:0] // filter in place; Edges() already returned a private copy
	for _, e := range all {
		if e.IsLoop() {
			continue
		}
		edges = append(edges, e)
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := dsu.New(n)
	mst := make([]core.Edge, 0, n-1)
	for _, e := range edges {
		if !ds.Union(e.U, e.V) {
			continue
		}
		mst = append(mst, e)
		if len(mst) == n-1 {
			break
		}
	}

	return mst
}

// IsSpanning reports whether tree has exactly |V|-1 edges, i.e. whether the forest
// Kruskal returned for graph is a single spanning tree. Graphs with zero or one
// vertex are spanned by the empty tree.
func IsSpanning(graph *core.Graph, tree []core.Edge) bool {
	n := graph.Vertices()
	if n <= 1 {
		return len(tree) == 0
	}

	return len(tree) == n-1
}

// TotalWeight sums the weights of edges in an int64 accumulator.
func TotalWeight(edges []core.Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
