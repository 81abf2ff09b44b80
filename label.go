package graphseg

// ExtractLabels resolves every pixel's segment root and assigns compact
// labels in [0, numSegments). Roots are discovered in pixel-index order:
// the first pixel of a segment (by row-major index) determines when that
// segment's label is allocated, so labels are deterministic given a
// deterministic DisjointSet.
//
// Returns the per-pixel label slice and the number of distinct segments.
func ExtractLabels(ds *DisjointSet, pixelCount int) ([]int, int) {
	labels := make([]int, pixelCount)

	// rootLabel maps a root pixel index to its compact label; -1 means
	// the root has not been seen yet.
	rootLabel := make([]int, pixelCount)
	for i := range rootLabel {
		rootLabel[i] = -1
	}

	next := 0
	for i := 0; i < pixelCount; i++ {
		root := ds.Find(i)
		if rootLabel[root] == -1 {
			rootLabel[root] = next
			next++
		}
		labels[i] = rootLabel[root]
	}
	return labels, next
}
