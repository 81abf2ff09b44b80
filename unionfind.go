package graphseg

// DisjointSet tracks segment membership for every pixel using a union-find
// structure with path compression and union by size. Segments are
// identified by their root pixel index into flat arrays; no pointer graph
// is needed. Each root additionally carries the segment's internal
// difference Int(C): the maximum edge weight inside a minimum spanning tree
// of the segment.
type DisjointSet struct {
	parent  []int
	size    []int
	intDiff []float64
	// count is the current number of segments; it only decreases.
	count int
}

// NewDisjointSet creates a DisjointSet with n singleton segments, one per
// pixel. Every pixel starts as its own root with size 1 and Int = 0.
func NewDisjointSet(n int) *DisjointSet {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
		size[i] = 1
	}
	return &DisjointSet{
		parent:  parent,
		size:    size,
		intDiff: make([]float64, n),
		count:   n,
	}
}

// Find returns the root of the segment containing x, with path compression.
func (ds *DisjointSet) Find(x int) int {
	// Walk to the root.
	root := x
	for ds.parent[root] != -1 {
		root = ds.parent[root]
	}
	// Path compression: point all nodes along the path directly to root.
	for ds.parent[x] != -1 {
		x, ds.parent[x] = ds.parent[x], root
	}
	return root
}

// Union merges the segments containing x and y through an edge of weight w
// and returns the new root. If x and y are already in the same segment it
// is a no-op.
func (ds *DisjointSet) Union(x, y int, w float64) int {
	rootX := ds.Find(x)
	rootY := ds.Find(y)
	if rootX == rootY {
		return rootX
	}
	return ds.union(rootX, rootY, w)
}

// union merges two distinct roots by attaching the smaller tree under the
// larger. The merged segment's size is the sum of sizes and its internal
// difference is max(Int(X), Int(Y), w).
func (ds *DisjointSet) union(rootX, rootY int, w float64) int {
	if ds.size[rootX] < ds.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	ds.parent[rootY] = rootX
	ds.size[rootX] += ds.size[rootY]

	d := ds.intDiff[rootX]
	if ds.intDiff[rootY] > d {
		d = ds.intDiff[rootY]
	}
	if w > d {
		d = w
	}
	ds.intDiff[rootX] = d

	ds.count--
	return rootX
}

// Count returns the current number of segments.
func (ds *DisjointSet) Count() int { return ds.count }

// Len returns the number of pixels the structure was created with.
func (ds *DisjointSet) Len() int { return len(ds.parent) }

// Size returns the pixel count of the segment rooted at root.
func (ds *DisjointSet) Size(root int) int { return ds.size[root] }

// InternalDiff returns Int(C) for the segment rooted at root.
func (ds *DisjointSet) InternalDiff(root int) float64 { return ds.intDiff[root] }

// stats returns the policy-facing view of the segment rooted at root.
func (ds *DisjointSet) stats(root int) SegmentStats {
	return SegmentStats{Size: ds.size[root], Int: ds.intDiff[root]}
}
