package graphfile

import "github.com/katalvlaran/mstswap/core"

// Reference returns the fixed six-vertex, nine-edge demonstration graph:
//
//	(0,1,1) (0,3,5) (1,2,2) (1,3,4) (1,4,7) (2,4,6) (2,5,8) (3,4,9) (4,5,3)
//
// Its MST weighs 16; removing the middle tree edge (4-5) forces (2-5) in, for 21.
func Reference() *core.Graph {
	g := core.NewGraph(6, core.WithEdgeCapacity(9))
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
