package graphseg

import (
	"errors"
	"testing"
)

// gradientImage fills a width x height image with deterministic pseudo-color
// values for graph construction tests.
func gradientImage(width, height int) *Image {
	im := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			im.Set(x, y, RGB{
				R: uint8(x * 17),
				G: uint8(y * 29),
				B: uint8((x + y) * 13),
			})
		}
	}
	return im
}

func TestBuildGraph_EdgeCount4(t *testing.T) {
	cases := []struct {
		w, h int
	}{
		{1, 1}, {2, 1}, {1, 2}, {2, 2}, {4, 3}, {7, 5},
	}
	for _, tc := range cases {
		img := gradientImage(tc.w, tc.h)
		edges, err := BuildGraph(img, EuclideanRGB{}, Connect4)
		if err != nil {
			t.Fatalf("%dx%d: unexpected error: %v", tc.w, tc.h, err)
		}
		want := tc.h*(tc.w-1) + tc.w*(tc.h-1)
		if len(edges) != want {
			t.Errorf("%dx%d: got %d edges, want %d", tc.w, tc.h, len(edges), want)
		}
	}
}

func TestBuildGraph_EdgeCount8(t *testing.T) {
	img := gradientImage(4, 3)
	edges, err := BuildGraph(img, EuclideanRGB{}, Connect8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4-connectivity edges plus two diagonals per interior cell pair.
	want := 3*3 + 4*2 + 2*3*2
	if len(edges) != want {
		t.Errorf("got %d edges, want %d", len(edges), want)
	}
}

func TestBuildGraph_InvalidImage(t *testing.T) {
	for _, img := range []*Image{nil, NewImage(0, 5), NewImage(5, 0)} {
		if _, err := BuildGraph(img, EuclideanRGB{}, Connect4); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("expected ErrInvalidImage, got %v", err)
		}
	}
}

func TestBuildGraph_InvalidConnectivity(t *testing.T) {
	img := gradientImage(2, 2)
	if _, err := BuildGraph(img, EuclideanRGB{}, Connectivity(6)); err == nil {
		t.Error("expected error for connectivity 6, got nil")
	}
}

func TestBuildGraph_WeightsMatchMetric(t *testing.T) {
	img := gradientImage(3, 3)
	metric := ManhattanRGB{}
	edges, err := BuildGraph(img, metric, Connect4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range edges {
		want := metric.Distance(img.atIndex(e.A), img.atIndex(e.B))
		if e.Weight != want {
			t.Errorf("edge (%d,%d): weight %v, want %v", e.A, e.B, e.Weight, want)
		}
		if e.A >= e.B {
			t.Errorf("edge (%d,%d): endpoints not in index order", e.A, e.B)
		}
	}
}

func TestBuildGraph_CanonicalOrder(t *testing.T) {
	img := gradientImage(3, 2)
	edges, err := BuildGraph(img, EuclideanRGB{}, Connect4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Row-major pixel order, right neighbor before bottom neighbor.
	wantPairs := [][2]int{
		{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5},
		{3, 4}, {4, 5},
	}
	if len(edges) != len(wantPairs) {
		t.Fatalf("got %d edges, want %d", len(edges), len(wantPairs))
	}
	for i, want := range wantPairs {
		if edges[i].A != want[0] || edges[i].B != want[1] {
			t.Errorf("edge %d = (%d,%d), want (%d,%d)", i, edges[i].A, edges[i].B, want[0], want[1])
		}
	}
}

func TestBuildGraph_8ConnIncludes4Conn(t *testing.T) {
	img := gradientImage(5, 4)

	edges4, err := BuildGraph(img, EuclideanRGB{}, Connect4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	edges8, err := BuildGraph(img, EuclideanRGB{}, Connect8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pairs := make(map[[2]int]bool, len(edges8))
	for _, e := range edges8 {
		pairs[[2]int{e.A, e.B}] = true
	}
	for _, e := range edges4 {
		if !pairs[[2]int{e.A, e.B}] {
			t.Errorf("4-conn edge (%d,%d) missing from 8-conn graph", e.A, e.B)
		}
	}
}
