// SPDX-License-Identifier: MIT

package mst

// disjointSet is a fixed-size union-find over vertex ids 0..n-1 with
// path halving and union by rank.
type disjointSet struct {
	parent []int
	rank   []uint8
}

// newDisjointSet puts every element in its own set.
func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: make([]int, n),
		rank:   make([]uint8, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of x's set, halving the path on the way up.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets of x and y and reports whether they were disjoint.
func (d *disjointSet) union(x, y int) bool {
	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}

	return true
}
