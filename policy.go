package graphseg

// SegmentStats is the per-segment view a merge policy decides on.
type SegmentStats struct {
	// Size is the number of pixels in the segment.
	Size int
	// Int is the internal difference: the maximum edge weight in a
	// minimum spanning tree of the segment.
	Int float64
}

// MergePolicy decides whether two segments joined by an edge of the given
// weight should be merged during the oversegmentation pass.
type MergePolicy interface {
	ShouldMerge(a, b SegmentStats, weight float64) bool
}

// MergePolicyFunc adapts a plain function into a MergePolicy.
type MergePolicyFunc func(a, b SegmentStats, weight float64) bool

func (f MergePolicyFunc) ShouldMerge(a, b SegmentStats, weight float64) bool {
	return f(a, b, weight)
}

// MagicThreshold is the merge criterion from the Felzenszwalb-Huttenlocher
// paper: two segments merge iff the connecting edge weight is below
//
//	min(Int(A) + K/|A|, Int(B) + K/|B|)
//
// Larger K biases toward larger segments. K must be scaled to the range of
// the distance metric in use (e.g. around 300 for the unnormalized
// EuclideanRGB metric, but well below 1 for the normalized metrics).
type MagicThreshold struct {
	K float64
}

func (p MagicThreshold) ShouldMerge(a, b SegmentStats, weight float64) bool {
	thresholdA := a.Int + p.K/float64(a.Size)
	thresholdB := b.Int + p.K/float64(b.Size)

	// The edge weight must be below both thresholds.
	threshold := thresholdA
	if thresholdB < threshold {
		threshold = thresholdB
	}
	return weight < threshold
}
