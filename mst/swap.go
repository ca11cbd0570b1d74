package mst

import (
	"fmt"

	"github.com/katalvlaran/mstswap/core"
	"github.com/katalvlaran/mstswap/dsu"
)

// Swap is the outcome of removing one tree edge and reconnecting the tree.
type Swap struct {
	// Removed is the tree edge taken out.
	Removed core.Edge

	// Replacement is the lightest edge reconnecting the two components.
	// Meaningful only when Found is true.
	Replacement core.Edge

	// Found reports whether a replacement exists.
	Found bool

	// Components labels the vertices of tree minus Removed.
	Components *dsu.DisjointSet

	// Tree is the new spanning tree: the old tree without Removed, in its
	// original order, followed by Replacement. Nil when Found is false.
	Tree []core.Edge

	// OldWeight and NewWeight are the total weights before and after the swap.
	// NewWeight is zero when Found is false.
	OldWeight, NewWeight int64
}

// sameEdge is the identity used to skip the removed edge: same index in the
// graph's edge list and same endpoints. Parallel edges never match each other.
func sameEdge(a, b core.Edge) bool {
	return a.ID == b.ID && core.SameEndpoints(a, b)
}

// ComponentsAfterRemoval returns a fresh DisjointSet over graph's vertices in which
// every tree edge except removed has been unioned.
//
// When removed belongs to a spanning tree the result has exactly two components,
// the two subtrees left behind. When it does not belong to tree the result is
// simply the connectivity of tree; this is not rejected.
//
// Complexity: O(V + |tree|·α(V)).
func ComponentsAfterRemoval(graph *core.Graph, tree []core.Edge, removed core.Edge) *dsu.DisjointSet {
	ds := dsu.New(graph.Vertices())
	for _, e := range tree {
		if sameEdge(e, removed) {
			continue
		}
		ds.Union(e.U, e.V)
	}

	return ds
}

// FindReplacementEdge scans every edge of graph in insertion order and returns the
// minimum-weight edge whose endpoints lie in different components of comps.
//
// The edge identical to removed (same ID and endpoints) is skipped; parallel edges
// between the same endpoints remain candidates. Ties keep the first edge
// encountered. The second result is false when no candidate exists, which means
// removed is a bridge of graph.
//
// comps must have been built over graph's vertex universe; a size mismatch is a
// programmer error and panics with ErrStaleComponents.
//
// Complexity: O(E·α(V)).
func FindReplacementEdge(graph *core.Graph, comps *dsu.DisjointSet, removed core.Edge) (core.Edge, bool) {
	if comps.Size() != graph.Vertices() {
		panic(fmt.Errorf("%w: %d elements, %d vertices", ErrStaleComponents, comps.Size(), graph.Vertices()))
	}

	var (
		best  core.Edge
		found bool
	)
	for _, e := range graph.Edges() {
		if sameEdge(e, removed) {
			continue
		}
		if comps.Connected(e.U, e.V) {
			continue
		}
		if !found || e.Weight < best.Weight {
			best, found = e, true
		}
	}

	return best, found
}

// SwapEdge removes removed from tree and reconnects it with the lightest
// replacement edge of graph.
//
// Error Conditions:
//   - ErrNilGraph  : graph is nil.
//   - ErrNotInTree : removed is not a member of tree.
//   - ErrBridge    : no replacement exists. The returned Swap still carries
//     Removed, Components and OldWeight.
//
// Complexity: O(V + E·α(V)).
func SwapEdge(graph *core.Graph, tree []core.Edge, removed core.Edge) (*Swap, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	pos := indexOf(tree, removed)
	if pos < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNotInTree, removed)
	}

	s := &Swap{
		Removed:    removed,
		Components: ComponentsAfterRemoval(graph, tree, removed),
		OldWeight:  TotalWeight(tree),
	}
	s.Replacement, s.Found = FindReplacementEdge(graph, s.Components, removed)
	if !s.Found {
		return s, fmt.Errorf("%w: %v", ErrBridge, removed)
	}

	s.Tree = make([]core.Edge, 0, len(tree))
	s.Tree = append(s.Tree, tree[:pos]...)
	s.Tree = append(s.Tree, tree[pos+1:]...)
	s.Tree = append(s.Tree, s.Replacement)
	s.NewWeight = s.OldWeight - removed.Weight + s.Replacement.Weight

	return s, nil
}

// SwapAt is SwapEdge for the tree edge at index i.
func SwapAt(graph *core.Graph, tree []core.Edge, i int) (*Swap, error) {
	if i < 0 || i >= len(tree) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(tree))
	}

	return SwapEdge(graph, tree, tree[i])
}

// MiddleIndex returns ⌊len(tree)/2⌋, the tree position the demonstration removes.
func MiddleIndex(tree []core.Edge) int {
	return len(tree) / 2
}

func indexOf(tree []core.Edge, e core.Edge) int {
	for i, t := range tree {
		if sameEdge(t, e) {
			return i
		}
	}

	return -1
}
