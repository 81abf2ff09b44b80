package graphseg

import (
	"fmt"
	"runtime"
)

// Config controls the segmentation pipeline.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric is the color distance used to weight graph edges.
	// Built-in: EuclideanRGB, SquaredEuclideanRGB, ManhattanRGB, LabRGB,
	// CIEDE2000RGB. Use DistanceFunc to wrap a custom function.
	// Default: EuclideanRGB.
	Metric Distance

	// Policy decides whether two segments merge. When nil, a
	// MagicThreshold with constant K is used. Set Policy explicitly to
	// use a custom criterion, or to force MagicThreshold{K: 0}.
	Policy MergePolicy

	// K is the magic threshold constant used when Policy is nil. Larger
	// values produce larger segments. Must be scaled to the metric's
	// range. 0 means default. Default: 300 (tuned for EuclideanRGB).
	K float64

	// MinSegmentSize is the minimum number of pixels per segment,
	// enforced by an unconditional merge pass after oversegmentation.
	// Must be >= 1; 1 disables the pass. 0 means default. Default: 10.
	MinSegmentSize int

	// Connectivity selects the pixel neighborhood (Connect4 or Connect8).
	// Default: Connect4.
	Connectivity Connectivity

	// Workers controls the number of goroutines used for graph
	// construction, the only parallelizable stage. 0 means
	// runtime.NumCPU(); 1 forces the sequential builder. The output is
	// identical either way.
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric:         EuclideanRGB{},
		K:              300,
		MinSegmentSize: 10,
		Connectivity:   Connect4,
	}
}

// Result contains the output of image segmentation.
type Result struct {
	// Labels assigns each pixel (row-major index) a segment label in
	// [0, NumSegments). Labels are compact and deterministic: the first
	// pixel of each segment, in index order, claims the next label.
	Labels []int

	// NumSegments is the number of distinct segments.
	NumSegments int

	// SegmentSizes holds the pixel count of each segment, indexed by label.
	SegmentSizes []int

	// Width and Height echo the segmented image's dimensions.
	Width, Height int
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanRGB{}
	}
	if cfg.K == 0 {
		cfg.K = 300
	}
	if cfg.Policy == nil {
		cfg.Policy = MagicThreshold{K: cfg.K}
	}
	if cfg.MinSegmentSize == 0 {
		cfg.MinSegmentSize = 10
	}
	if cfg.Connectivity == 0 {
		cfg.Connectivity = Connect4
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.K < 0 {
		return fmt.Errorf("graphseg: K must be >= 0, got %g", cfg.K)
	}
	if cfg.MinSegmentSize < 1 {
		return fmt.Errorf("graphseg: MinSegmentSize must be >= 1, got %d", cfg.MinSegmentSize)
	}
	if cfg.Connectivity != Connect4 && cfg.Connectivity != Connect8 {
		return fmt.Errorf("graphseg: invalid Connectivity %d (must be 4 or 8)", cfg.Connectivity)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("graphseg: Workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

// SegmentImage runs the full pipeline on img: graph construction,
// oversegmentation, minimum segment size enforcement, and label extraction.
// Each invocation is independent; no state is shared between runs. Returns
// ErrInvalidImage if img has zero area.
func SegmentImage(img *Image, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	edges, err := BuildGraphParallel(img, cfg.Metric, cfg.Connectivity, cfg.Workers)
	if err != nil {
		return nil, err
	}

	pixelCount := img.PixelCount()
	ds := Segment(edges, cfg.Policy, pixelCount)
	EnforceMinSize(ds, edges, cfg.MinSegmentSize)
	labels, numSegments := ExtractLabels(ds, pixelCount)

	sizes := make([]int, numSegments)
	for _, l := range labels {
		sizes[l]++
	}

	return &Result{
		Labels:       labels,
		NumSegments:  numSegments,
		SegmentSizes: sizes,
		Width:        img.Width,
		Height:       img.Height,
	}, nil
}
