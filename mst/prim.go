// Package mst provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root vertex using a min-heap.
package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mstswap/core"
)

// Prim computes the Minimum Spanning Tree of graph by growing outwards from root.
//
// Error Conditions:
//   - ErrNilGraph            : graph is nil.
//   - core.ErrVertexOutOfRange: root is not a vertex of graph.
//   - ErrDisconnected        : |V| == 0, or the tree grown from root does not reach every vertex.
//
// Steps:
//  1. Take per-vertex incidence lists from graph.AdjacencyList; loops never leave the tree.
//  2. Mark root visited and push its incident edges onto the min-heap.
//  3. Pop the lightest edge; skip it if its far end is already visited,
//     otherwise take it and push the far end's edges.
//  4. Stop when |V|-1 edges are taken or the heap is empty.
//
// Heap ties are broken by edge ID, so the result is deterministic.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	n := graph.Vertices()
	if n == 0 {
		return nil, ErrDisconnected
	}
	if !graph.HasVertex(root) {
		return nil, fmt.Errorf("mst: prim root %d: %w", root, core.ErrVertexOutOfRange)
	}
	if n == 1 {
		return []core.Edge{}, nil
	}

	edges := graph.Edges()
	incident := graph.AdjacencyList() // vertex → IDs of incident edges

	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	pq := &edgePQ{}
	heap.Init(pq)

	visit := func(x int) {
		visited[x] = true
		for _, id := range incident[x] {
			e := edges[id]
			if to := e.Other(x); !visited[to] {
				heap.Push(pq, frontierEdge{edge: e, to: to})
			}
		}
	}

	visit(root)
	for pq.Len() > 0 && len(mst) < n-1 {
		f := heap.Pop(pq).(frontierEdge)
		if visited[f.to] {
			continue
		}
		mst = append(mst, f.edge)
		visit(f.to)
	}

	if len(mst) < n-1 {
		return nil, ErrDisconnected
	}

	return mst, nil
}

// frontierEdge is a candidate edge leading out of the tree towards vertex to.
type frontierEdge struct {
	edge core.Edge
	to   int
}

// edgePQ implements heap.Interface for a min-heap of frontier edges ordered by
// weight, then by edge ID.
type edgePQ []frontierEdge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].edge.ID < pq[j].edge.ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a frontier edge; called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierEdge)) }

// Pop removes the last element; called by heap.Pop after moving the minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	f := old[n-1]
	*pq = old[:n-1]

	return f
}
