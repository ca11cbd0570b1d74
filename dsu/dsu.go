package dsu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange indicates an element outside [0, Size()).
	ErrOutOfRange = errors.New("dsu: element out of range")

	// ErrNegativeSize indicates New was called with a negative size.
	ErrNegativeSize = errors.New("dsu: negative size")
)

// DisjointSet is a union-find structure with path compression and union by rank.
//
// parent[i] == i marks a root; rank[r] is an upper bound on the height of the tree
// rooted at r and is meaningful only while r is a root.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int // number of disjoint sets remaining
}

// New allocates a DisjointSet of size elements, each in its own singleton set.
// Complexity: O(size).
func New(size int) *DisjointSet {
	if size < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeSize, size))
	}
	d := &DisjointSet{
		parent: make([]int, size),
		rank:   make([]int, size),
		count:  size,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Size returns the number of elements in the universe.
func (d *DisjointSet) Size() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of x's set.
//
// Two passes: walk up to the root, then point every node on the walked path
// directly at it.
func (d *DisjointSet) Find(x int) int {
	d.check(x)
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}

	return root
}

// Union merges the sets containing x and y.
// It returns false, and changes nothing, when x and y are already connected.
func (d *DisjointSet) Union(x, y int) bool {
	rootX := d.Find(x)
	rootY := d.Find(y)
	if rootX == rootY {
		return false
	}
	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
	default:
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}
	d.count--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Groups returns every set as an ascending list of its members.
// Sets are ordered by their smallest member, so the result is deterministic.
func (d *DisjointSet) Groups() [][]int {
	byRoot := make(map[int]int, d.count) // root → index in out
	out := make([][]int, 0, d.count)
	// Iterating elements in ascending order yields sorted members and
	// orders groups by first appearance, i.e. by smallest member.
	for i := range d.parent {
		root := d.Find(i)
		idx, ok := byRoot[root]
		if !ok {
			idx = len(out)
			byRoot[root] = idx
			out = append(out, nil)
		}
		out[idx] = append(out[idx], i)
	}

	return out
}

// Roots returns the distinct set representatives in ascending order.
func (d *DisjointSet) Roots() []int {
	roots := make([]int, 0, d.count)
	for i := range d.parent {
		if d.Find(i) == i {
			roots = append(roots, i)
		}
	}

	return roots
}

// String formats the partition as "{0 1 2} {3}".
func (d *DisjointSet) String() string {
	var sb strings.Builder
	for i, g := range d.Groups() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('{')
		for j, x := range g {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", x)
		}
		sb.WriteByte('}')
	}

	return sb.String()
}

func (d *DisjointSet) check(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(d.parent)))
	}
}
