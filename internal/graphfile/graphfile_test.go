package graphfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstswap/core"
	"github.com/katalvlaran/mstswap/internal/graphfile"
)

func TestDecode(t *testing.T) {
	src := `
vertices: 3
edges:
  - {u: 0, v: 1, weight: 4}
  - {u: 1, v: 2, weight: -2}
  - {u: 0, v: 1, weight: 1}
`
	g, err := graphfile.Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Vertices())
	assert.Equal(t, []core.Edge{
		{ID: 0, U: 0, V: 1, Weight: 4},
		{ID: 1, U: 1, V: 2, Weight: -2},
		{ID: 2, U: 0, V: 1, Weight: 1},
	}, g.Edges())
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", graphfile.ErrEmpty},
		{"negative-vertices", "vertices: -1\n", graphfile.ErrVertexCount},
		{"endpoint", "vertices: 2\nedges:\n  - {u: 0, v: 2, weight: 1}\n", graphfile.ErrEdgeEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphfile.Decode(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := graphfile.Decode(strings.NewReader("vertices: 2\ncolour: red\n"))
	assert.Error(t, err, "unknown keys must be rejected")

	_, err = graphfile.Decode(strings.NewReader("vertices: [1, 2]\n"))
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	ref := graphfile.Reference()

	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, ref))
	assert.Contains(t, buf.String(), "vertices: 6")

	back, err := graphfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, ref.Vertices(), back.Vertices())
	assert.Equal(t, ref.Edges(), back.Edges())
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, graphfile.Save(path, graphfile.Reference()))

	g, err := graphfile.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, g.EdgeCount())

	_, err = graphfile.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReference(t *testing.T) {
	g := graphfile.Reference()
	assert.Equal(t, 6, g.Vertices())
	assert.Equal(t, 9, g.EdgeCount())
	last, ok := g.Edge(8)
	require.True(t, ok)
	assert.Equal(t, core.Edge{ID: 8, U: 4, V: 5, Weight: 3}, last)
}
