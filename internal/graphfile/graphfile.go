// Package graphfile reads and writes graph descriptions as YAML:
//
//	vertices: 6
//	edges:
//	  - {u: 0, v: 1, weight: 1}
//	  - {u: 4, v: 5, weight: 3}
//
// Edge order in the file is the insertion order of the resulting core.Graph.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstswap/core"
)

var (
	// ErrEmpty indicates the input held no YAML document.
	ErrEmpty = errors.New("graphfile: empty document")

	// ErrVertexCount indicates a negative vertex count.
	ErrVertexCount = errors.New("graphfile: vertex count must be non-negative")

	// ErrEdgeEndpoint indicates an edge endpoint outside [0, vertices).
	ErrEdgeEndpoint = errors.New("graphfile: edge endpoint out of range")
)

// File is the on-disk shape of a graph.
type File struct {
	Vertices int        `yaml:"vertices"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one undirected weighted edge.
type EdgeSpec struct {
	U      int   `yaml:"u"`
	V      int   `yaml:"v"`
	Weight int64 `yaml:"weight"`
}

// Graph validates f and builds the corresponding core.Graph.
// Unlike core.Graph.AddEdge, bad input is reported as an error, not a panic.
func (f File) Graph() (*core.Graph, error) {
	if f.Vertices < 0 {
		return nil, fmt.Errorf("%w: %d", ErrVertexCount, f.Vertices)
	}
	g := core.NewGraph(f.Vertices, core.WithEdgeCapacity(len(f.Edges)))
	for i, e := range f.Edges {
		if !g.HasVertex(e.U) || !g.HasVertex(e.V) {
			return nil, fmt.Errorf("%w: edge %d (%d-%d) with %d vertices", ErrEdgeEndpoint, i, e.U, e.V, f.Vertices)
		}
		g.AddEdge(e.U, e.V, e.Weight)
	}

	return g, nil
}

// FromGraph captures g in its file shape.
func FromGraph(g *core.Graph) File {
	f := File{Vertices: g.Vertices(), Edges: make([]EdgeSpec, 0, g.EdgeCount())}
	for _, e := range g.Edges() {
		f.Edges = append(f.Edges, EdgeSpec{U: e.U, V: e.V, Weight: e.Weight})
	}

	return f
}

// Decode reads one YAML document from r and builds the graph it describes.
// Unknown keys are rejected.
func Decode(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}

		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	return f.Graph()
}

// Encode writes g to w as YAML.
func Encode(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// Load reads the graph stored at path. A nil logger discards log output.
func Load(path string, logger *slog.Logger) (*core.Graph, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer fh.Close()

	g, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("graph loaded", "path", path, "vertices", g.Vertices(), "edges", g.EdgeCount())

	return g, nil
}

// Save writes g to path, creating or truncating the file.
func Save(path string, g *core.Graph) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphfile: %w", err)
	}
	if err := Encode(fh, g); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
