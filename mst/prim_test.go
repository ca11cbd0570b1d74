package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstswap/core"
	"github.com/katalvlaran/mstswap/mst"
)

// TestPrim_Reference verifies Prim reaches the same weight as Kruskal on the demonstration graph.
func TestPrim_Reference(t *testing.T) {
	g := buildReference()
	for root := 0; root < g.Vertices(); root++ {
		tree, err := mst.Prim(g, root)
		require.NoError(t, err)
		assert.Len(t, tree, 5)
		assert.Equal(t, int64(16), mst.TotalWeight(tree), "root %d", root)
	}
}

// TestPrim_Order verifies discovery order from root 0 with ID tie-breaking.
func TestPrim_Order(t *testing.T) {
	tree, err := mst.Prim(buildReference(), 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		e(0, 0, 1, 1),
		e(2, 1, 2, 2),
		e(3, 1, 3, 4),
		e(5, 2, 4, 6),
		e(8, 4, 5, 3),
	}, tree)
}

// TestPrim_Validation covers nil graph, empty graph, bad root and disconnection.
func TestPrim_Validation(t *testing.T) {
	_, err := mst.Prim(nil, 0)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	_, err = mst.Prim(core.NewGraph(0), 0)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	_, err = mst.Prim(buildTriangle(), 3)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	g := core.NewGraph(2)
	_, err = mst.Prim(g, 0)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	single, err := mst.Prim(core.NewGraph(1), 0)
	assert.NoError(t, err)
	assert.Empty(t, single)
}

// TestCompute_Dispatch verifies method selection and error mapping.
func TestCompute_Dispatch(t *testing.T) {
	g := buildReference()

	tree, total, err := mst.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, mst.Kruskal(g), tree)
	assert.Equal(t, int64(16), total)

	tree, total, err = mst.Compute(g, mst.WithMethod(mst.MethodPrim), mst.WithRoot(3))
	require.NoError(t, err)
	assert.Len(t, tree, 5)
	assert.Equal(t, int64(16), total)

	_, _, err = mst.Compute(g, mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)

	_, _, err = mst.Compute(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
}

// TestCompute_Disconnected verifies Kruskal still returns the forest alongside ErrDisconnected,
// while Prim returns nothing.
func TestCompute_Disconnected(t *testing.T) {
	g := core.NewGraph(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(2, 3, 1)

	forest, total, err := mst.Compute(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Len(t, forest, 2)
	assert.Equal(t, int64(2), total)

	tree, _, err := mst.Compute(g, mst.WithMethod(mst.MethodPrim))
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Nil(t, tree)
}

// TestDefaultOptions pins the defaults.
func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, mst.Options{Method: mst.MethodKruskal, Root: 0}, mst.DefaultOptions())
}
