// Package dsu provides an array-backed disjoint-set (union-find) structure over
// the integer universe [0, n), the building block behind Kruskal's algorithm and
// the component labeling used by the edge-swap queries in package mst.
//
// What & Why
//
//   - A DisjointSet maintains a partition of [0, n) under two operations:
//     Find(x) returns the representative (root) of x's set, Union(x, y) merges two sets.
//   - Find uses full path compression: after the call every node on the path from x
//     points directly at the root. The walk is iterative (find the root, then rewrite
//     parents), so pathological chains of hundreds of thousands of elements never grow
//     the goroutine stack.
//   - Union attaches the lower-ranked root under the higher-ranked one. On equal ranks
//     the root of y goes under the root of x and rank[root(x)] is incremented.
//
// Complexity
//
//   - New:             O(n) time, O(n) memory.
//   - Find/Union:      amortized O(α(n)) (inverse Ackermann, effectively constant).
//   - Count:           O(1).
//   - Groups:          O(n·α(n)).
//
// Error Conditions
//
//	Out-of-range elements are programmer errors and panic with an error wrapping
//	ErrOutOfRange. A negative size passed to New panics with ErrNegativeSize.
//
// A DisjointSet has no internal synchronization; distinct instances are independent.
package dsu
