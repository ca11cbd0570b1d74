// Package mstswap is a small toolkit for Minimum Spanning Tree maintenance:
// build an MST, drop one of its edges and reconnect the two halves with the
// cheapest edge that crosses between them.
//
// Packages:
//
//	dsu/          disjoint-set forest (union by rank, path compression)
//	core/         undirected weighted multigraph over dense integer vertices
//	mst/          Kruskal, Prim, components after removal, replacement edge
//	internal/     YAML graph files, terminal report, step-by-step demonstration
//	cmd/mstswap/  command-line front end
//
// Quick example:
//
//	0───1
//	│   │
//	3───2
//
// Weights 1, 2, 3 on 0-1, 1-2, 2-3 and 4 on 3-0: Kruskal keeps the first three.
// Removing 1-2 leaves components {0,1} and {2,3}, and 3-0 is the replacement.
//
//	go install github.com/katalvlaran/mstswap/cmd/mstswap@latest
package mstswap
