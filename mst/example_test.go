package mst_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstswap/core"
	"github.com/katalvlaran/mstswap/mst"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle.
// The MST is {0–1, 1–2} with total weight 3.
func ExampleKruskal() {
	g := core.NewGraph(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(0, 2, 4)

	tree := mst.Kruskal(g)
	fmt.Printf("Total: %d, Edges: %v\n", mst.TotalWeight(tree), tree)
	// Output: Total: 3, Edges: [(0-1, weight: 1) (1-2, weight: 2)]
}

// ExampleSwapEdge removes the middle MST edge of the six-vertex demonstration graph
// and reconnects the tree with the lightest crossing edge.
func ExampleSwapEdge() {
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

	tree := mst.Kruskal(g)
	s, err := mst.SwapAt(g, tree, mst.MiddleIndex(tree))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("removed:", s.Removed)
	fmt.Println("components:", s.Components)
	fmt.Println("replacement:", s.Replacement)
	fmt.Println("weight:", s.OldWeight, "->", s.NewWeight)
	// Output:
	// removed: (4-5, weight: 3)
	// components: {0 1 2 3 4} {5}
	// replacement: (2-5, weight: 8)
	// weight: 16 -> 21
}

// ExampleSwapEdge_bridge shows the outcome when the removed edge is a bridge.
func ExampleSwapEdge_bridge() {
	g := core.NewGraph(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)

	tree := mst.Kruskal(g)
	_, err := mst.SwapAt(g, tree, 1)
	fmt.Println(errors.Is(err, mst.ErrBridge))
	fmt.Println(err)
	// Output:
	// true
	// mst: no replacement edge, removed edge is a bridge: (1-2, weight: 1)
}

func ExampleCompute_disconnected() {
	g := core.NewGraph(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(2, 3, 1)

	forest, _, err := mst.Compute(g)
	fmt.Println(len(forest), err)
	// Output: 2 mst: graph is disconnected
}
