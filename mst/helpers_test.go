package mst_test

import (
	"math/rand"

	"github.com/katalvlaran/mstswap/core"
)

// buildReference constructs the 6-vertex, 9-edge demonstration graph:
//
//	(0,1,1) (0,3,5) (1,2,2) (1,3,4) (1,4,7) (2,4,6) (2,5,8) (3,4,9) (4,5,3)
//
// Its MST is (0,1,1) (1,2,2) (4,5,3) (1,3,4) (2,4,6) with total weight 16.
func buildReference() *core.Graph {
	g := core.NewGraph(6)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 3, 5)
	g.AddEdge(1, 2, 2)
	g.AddEdge(1, 3, 4)
	g.AddEdge(1, 4, 7)
	g.AddEdge(2, 4, 6)
	g.AddEdge(2, 5, 8)
	g.AddEdge(3, 4, 9)
	g.AddEdge(4, 5, 3)

	return g
}

// buildTriangle constructs 0—1 (1), 1—2 (2), 0—2 (3).
func buildTriangle() *core.Graph {
	g := core.NewGraph(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(0, 2, 3)

	return g
}

// buildRandomGraph creates a connected graph with n vertices: a random spanning
// chain guarantees connectivity, then extra random edges are added. Extra edges may
// be parallel to existing ones, and roughly one in twenty is a self-loop.
// Weights fall in [-20, 60]. The generator is seeded by the caller for reproducibility.
func buildRandomGraph(r *rand.Rand, n, extra int) *core.Graph {
	g := core.NewGraph(n)
	perm := r.Perm(n)
	for i := 1; i < n; i++ {
		g.AddEdge(perm[i-1], perm[i], int64(r.Intn(81)-20))
	}
	for i := 0; i < extra; i++ {
		u := r.Intn(n)
		v := r.Intn(n)
		if r.Intn(20) != 0 {
			for v == u && n > 1 {
				v = r.Intn(n)
			}
		}
		g.AddEdge(u, v, int64(r.Intn(81)-20))
	}

	return g
}

// reachable runs a BFS from src over every edge of g except the one with ID skip
// and reports which vertices were reached.
func reachable(g *core.Graph, src, skip int) []bool {
	adj := make([][]int, g.Vertices())
	for _, e := range g.Edges() {
		if e.ID == skip {
			continue
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	seen := make([]bool, g.Vertices())
	seen[src] = true
	queue := []int{src}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, y := range adj[x] {
			if !seen[y] {
				seen[y] = true
				queue = append(queue, y)
			}
		}
	}

	return seen
}

// isBridge reports whether removing e disconnects its endpoints in g.
func isBridge(g *core.Graph, e core.Edge) bool {
	return !reachable(g, e.U, e.ID)[e.V]
}

// isConnected reports whether every vertex of g is reachable from vertex 0.
func isConnected(g *core.Graph) bool {
	if g.Vertices() == 0 {
		return true
	}
	for _, ok := range reachable(g, 0, -1) {
		if !ok {
			return false
		}
	}

	return true
}

// isForest checks acyclicity without package dsu: it repeatedly relabels
// components in a plain slice and fails on the first edge inside one component.
func isForest(n int, edges []core.Edge) bool {
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	for _, e := range edges {
		lu, lv := label[e.U], label[e.V]
		if lu == lv {
			return false
		}
		for i := range label {
			if label[i] == lv {
				label[i] = lu
			}
		}
	}

	return true
}

// covers reports whether every vertex of [0, n) is an endpoint of some edge.
func covers(n int, edges []core.Edge) bool {
	seen := make([]bool, n)
	for _, e := range edges {
		seen[e.U] = true
		seen[e.V] = true
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}

	return true
}

// without returns a copy of g lacking the edge with the given ID.
func without(g *core.Graph, id int) *core.Graph {
	return g.FilterEdges(func(e core.Edge) bool { return e.ID != id })
}
