// Package graphseg implements efficient graph-based image segmentation as
// described by Felzenszwalb and Huttenlocher, focused on generating
// oversegmentations, also referred to as superpixels.
//
// The image is treated as a weighted undirected graph with one node per
// pixel and edges between neighboring pixels, weighted by a pluggable color
// distance. Edges are processed in ascending weight order and segments are
// merged greedily through a union-find structure whenever the merge policy
// accepts; a final pass merges away segments below a minimum size.
//
// Basic usage:
//
//	cfg := graphseg.DefaultConfig()
//	cfg.K = 300
//	cfg.MinSegmentSize = 20
//	result, err := graphseg.SegmentImage(graphseg.FromImage(img), cfg)
//	// result.Labels[i] is the segment label for pixel i (row-major)
//	// result.NumSegments is the number of segments
//
// The individual pipeline stages (BuildGraph, Segment, EnforceMinSize,
// ExtractLabels) are exported for callers that want to time or compose them
// separately. Images should be lightly blurred before segmenting; see
// cmd/segment for a complete example.
package graphseg
