package graphseg

import "fmt"

// Connectivity selects the pixel neighborhood used to build the graph.
type Connectivity int

const (
	// Connect4 links each pixel to its right and bottom neighbors.
	Connect4 Connectivity = 4
	// Connect8 additionally links each pixel to its two diagonal
	// neighbors below.
	Connect8 Connectivity = 8
)

// Edge connects two pixel nodes identified by their row-major indices.
// Weight is the color distance between the two pixels, computed once when
// the graph is built. Edges are immutable after construction.
type Edge struct {
	A, B   int
	Weight float64
}

// BuildGraph constructs the full edge list over img for the chosen
// connectivity, weighting each edge with metric. Edges are emitted in
// row-major pixel order and, per pixel, in fixed neighbor order (right,
// down, down-right, down-left), so the output is deterministic.
// Returns ErrInvalidImage if the image has zero area.
func BuildGraph(img *Image, metric Distance, conn Connectivity) ([]Edge, error) {
	if err := checkGraphInput(img, conn); err != nil {
		return nil, err
	}

	edges := make([]Edge, totalEdges(img.Width, img.Height, conn))
	offset := 0
	for y := 0; y < img.Height; y++ {
		offset += buildRowEdges(img, metric, conn, y, edges[offset:])
	}
	return edges, nil
}

func checkGraphInput(img *Image, conn Connectivity) error {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return ErrInvalidImage
	}
	if conn != Connect4 && conn != Connect8 {
		return fmt.Errorf("graphseg: invalid connectivity %d (must be 4 or 8)", conn)
	}
	return nil
}

// rowEdges returns the number of edges whose lower-indexed endpoint lies in
// row y.
func rowEdges(width, height int, conn Connectivity, y int) int {
	n := width - 1 // right neighbors
	if y < height-1 {
		n += width // bottom neighbors
		if conn == Connect8 {
			n += 2 * (width - 1) // down-right and down-left
		}
	}
	return n
}

func totalEdges(width, height int, conn Connectivity) int {
	n := height*(width-1) + width*(height-1)
	if conn == Connect8 {
		n += 2 * (width - 1) * (height - 1)
	}
	return n
}

// buildRowEdges writes the edges for row y into dst and returns how many
// were written. dst must have room for rowEdges(...) entries. The per-pixel
// neighbor order here defines the canonical insertion order that tie-breaks
// equal-weight edges during sorting.
func buildRowEdges(img *Image, metric Distance, conn Connectivity, y int, dst []Edge) int {
	width := img.Width
	base := y * width
	bottom := y == img.Height-1

	k := 0
	for x := 0; x < width; x++ {
		n := base + x
		c := img.atIndex(n)

		if x < width-1 {
			m := n + 1
			dst[k] = Edge{A: n, B: m, Weight: metric.Distance(c, img.atIndex(m))}
			k++
		}
		if !bottom {
			m := n + width
			dst[k] = Edge{A: n, B: m, Weight: metric.Distance(c, img.atIndex(m))}
			k++

			if conn == Connect8 {
				if x < width-1 {
					m = n + width + 1
					dst[k] = Edge{A: n, B: m, Weight: metric.Distance(c, img.atIndex(m))}
					k++
				}
				if x > 0 {
					m = n + width - 1
					dst[k] = Edge{A: n, B: m, Weight: metric.Distance(c, img.atIndex(m))}
					k++
				}
			}
		}
	}
	return k
}
