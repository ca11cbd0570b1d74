// Package mst defines configuration options and sentinel errors for MST computation
// and edge-swap queries.
package mst

import (
	"errors"

	"github.com/katalvlaran/mstswap/core"
)

var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDisconnected indicates the graph has no spanning tree: the builder
	// produced fewer than |V|-1 edges.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates Options.Method names no known algorithm.
	ErrUnknownMethod = errors.New("mst: unknown method")

	// ErrNotInTree indicates the edge chosen for removal is not a member of the tree.
	ErrNotInTree = errors.New("mst: edge is not in the spanning tree")

	// ErrBridge indicates no replacement edge exists: the removed edge is a bridge
	// of the underlying graph and the graph disconnects without it.
	ErrBridge = errors.New("mst: no replacement edge, removed edge is a bridge")

	// ErrStaleComponents indicates a DisjointSet built over a different vertex
	// universe than the graph being scanned.
	ErrStaleComponents = errors.New("mst: components do not match graph vertex count")

	// ErrIndexOutOfRange indicates a tree index outside [0, len(tree)).
	ErrIndexOutOfRange = errors.New("mst: tree index out of range")
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures which MST algorithm to run, and for Prim, which starting vertex to use.
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — start vertex for Prim; ignored when Method == MethodKruskal.
type Options struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// DefaultOptions returns Options initialized for Kruskal rooted at vertex 0.
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute runs the configured MST algorithm and returns the tree with its total weight.
//
//   - MethodKruskal: Kruskal(graph). When the graph is disconnected the spanning
//     forest is still returned, together with ErrDisconnected.
//   - MethodPrim:    Prim(graph, opts.Root).
//   - Otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		tree := Kruskal(graph)
		total := TotalWeight(tree)
		if !IsSpanning(graph, tree) {
			return tree, total, ErrDisconnected
		}

		return tree, total, nil
	case MethodPrim:
		tree, err := Prim(graph, o.Root)
		if err != nil {
			return nil, 0, err
		}

		return tree, TotalWeight(tree), nil
	default:
		return nil, 0, ErrUnknownMethod
	}
}
