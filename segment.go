package graphseg

import "sort"

// sortEdgesByWeight sorts edges ascending by weight, in place. The sort is
// stable so equal-weight edges keep their insertion order, which makes the
// merge passes fully deterministic.
func sortEdgesByWeight(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})
}

// Segment produces an oversegmentation of pixelCount pixels from the given
// edge list. It sorts edges in place (stable, ascending by weight) and then
// runs a single Kruskal-style pass: for each edge whose endpoints lie in
// different segments, the two segments are merged iff policy accepts. No
// edge is revisited.
//
// The returned DisjointSet holds per-pixel segment ownership along with
// segment sizes and internal differences. Given the same edges and policy,
// the result is bit-identical across runs.
func Segment(edges []Edge, policy MergePolicy, pixelCount int) *DisjointSet {
	ds := NewDisjointSet(pixelCount)
	sortEdgesByWeight(edges)

	for i := range edges {
		e := &edges[i]
		rootA := ds.Find(e.A)
		rootB := ds.Find(e.B)
		if rootA == rootB {
			continue
		}
		if policy.ShouldMerge(ds.stats(rootA), ds.stats(rootB), e.Weight) {
			ds.union(rootA, rootB, e.Weight)
		}
	}
	return ds
}

// EnforceMinSize merges undersized segments into their neighbors: one pass
// over the same sorted edge order used by Segment, unconditionally merging
// whenever either endpoint's segment is smaller than minSize. The distance
// test does not apply here.
//
// Afterwards every segment has at least minSize pixels, except that when
// the total pixel count is itself below minSize a single undersized segment
// remains. That is a boundary case, not an error.
func EnforceMinSize(ds *DisjointSet, edges []Edge, minSize int) {
	if minSize <= 1 {
		return
	}
	for i := range edges {
		e := &edges[i]
		rootA := ds.Find(e.A)
		rootB := ds.Find(e.B)
		if rootA == rootB {
			continue
		}
		if ds.size[rootA] < minSize || ds.size[rootB] < minSize {
			ds.union(rootA, rootB, e.Weight)
		}
	}
}
