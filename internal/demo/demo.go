// Package demo runs the MST edge-swap walkthrough: build the tree, remove one edge,
// show the components left behind, reconnect them, and compare weights.
package demo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/mstswap/core"
	"github.com/katalvlaran/mstswap/internal/report"
	"github.com/katalvlaran/mstswap/mst"
)

// MiddleEdge selects the tree edge at index ⌊|MST|/2⌋.
const MiddleEdge = -1

// Config selects the algorithm and the tree edge to remove.
type Config struct {
	// Method is mst.MethodKruskal or mst.MethodPrim.
	Method string

	// Root is Prim's start vertex.
	Root int

	// Remove is the index into the MST of the edge to remove, or MiddleEdge.
	Remove int
}

// DefaultConfig returns Kruskal with the middle edge removed.
func DefaultConfig() Config {
	return Config{Method: mst.MethodKruskal, Root: 0, Remove: MiddleEdge}
}

// Run executes the walkthrough on g and writes it to p.
//
// A disconnected graph is reported and returned as mst.ErrDisconnected. A bridge
// (no replacement edge) is reported but is not an error.
func Run(g *core.Graph, cfg Config, p *report.Printer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p.Banner("MST Edge Removal and Replacement")
	p.GraphInfo(g)

	p.Section(fmt.Sprintf("STEP 1: Minimum Spanning Tree (%s)", cfg.Method))
	tree, total, err := mst.Compute(g, mst.WithMethod(cfg.Method), mst.WithRoot(cfg.Root))
	if err != nil {
		if errors.Is(err, mst.ErrDisconnected) {
			p.Bad("Could not build an MST: the graph is disconnected (%d of %d edges).", len(tree), g.Vertices()-1)
		}
		logger.Error("mst build failed", "method", cfg.Method, "error", err)

		return err
	}
	logger.Info("mst built", "method", cfg.Method, "edges", len(tree), "weight", total)
	p.Edges("MST edges:", tree, total)
	if len(tree) == 0 {
		p.Linef("The tree has no edges; nothing to remove.")
		return nil
	}

	idx := cfg.Remove
	if idx == MiddleEdge {
		idx = mst.MiddleIndex(tree)
	}
	if idx < 0 || idx >= len(tree) {
		return fmt.Errorf("demo: remove index %d: %w", idx, mst.ErrIndexOutOfRange)
	}

	p.Section("STEP 2: Removing an Edge from the MST")
	p.Linef("Removing edge #%d: %v", idx, tree[idx])

	swap, err := mst.SwapAt(g, tree, idx)
	if err != nil && !errors.Is(err, mst.ErrBridge) {
		return err
	}

	p.Section("STEP 3: Components After Removal")
	p.Components(swap.Components)

	p.Section("STEP 4: Finding a Replacement Edge")
	if !swap.Found {
		logger.Warn("no replacement edge", "removed", swap.Removed.String())
		p.Bad("No replacement edge found: the graph disconnects without %v.", swap.Removed)
		finish(p)

		return nil
	}
	logger.Info("replacement found", "removed", swap.Removed.String(), "added", swap.Replacement.String())
	p.Good("Replacement edge found: %v", swap.Replacement)

	p.Section("STEP 5: New MST After Replacement")
	p.Edges("MST edges:", swap.Tree, swap.NewWeight)

	p.Section("COMPARISON")
	p.Linef("Original MST weight: %d", swap.OldWeight)
	p.Linef("New MST weight:      %d", swap.NewWeight)
	p.Linef("Edge removed:        %v", swap.Removed)
	p.Linef("Edge added:          %v", swap.Replacement)
	finish(p)

	return nil
}

func finish(p *report.Printer) {
	p.Linef("")
	p.Banner("Demonstration Complete")
}
