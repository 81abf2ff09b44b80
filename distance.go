package graphseg

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Distance computes the dissimilarity between two pixel colors. It defines
// the edge weights of the image graph.
type Distance interface {
	Distance(a, b RGB) float64
}

// DistanceFunc adapts a plain function into a Distance.
type DistanceFunc func(a, b RGB) float64

func (f DistanceFunc) Distance(a, b RGB) float64 { return f(a, b) }

// EuclideanRGB computes the Euclidean (L2) distance in RGB space,
// unnormalized. Weights range from 0 to sqrt(3*255²) ≈ 441.67.
type EuclideanRGB struct{}

func (EuclideanRGB) Distance(a, b RGB) float64 {
	return math.Sqrt(rgbSumOfSquares(a, b))
}

// SquaredEuclideanRGB computes the squared Euclidean distance in RGB space,
// normalized to [0, 1]. Skipping the square root makes it the cheapest
// metric; note that the magic threshold K must be scaled accordingly.
type SquaredEuclideanRGB struct{}

// 1 / (255² * 3)
const squaredEuclideanNorm = 1.0 / 195075.0

func (SquaredEuclideanRGB) Distance(a, b RGB) float64 {
	return rgbSumOfSquares(a, b) * squaredEuclideanNorm
}

// ManhattanRGB computes the Manhattan (L1) distance in RGB space,
// normalized to [0, 1].
type ManhattanRGB struct{}

// 255 * 3
const manhattanNorm = 765.0

func (ManhattanRGB) Distance(a, b RGB) float64 {
	dr := math.Abs(float64(a.R) - float64(b.R))
	dg := math.Abs(float64(a.G) - float64(b.G))
	db := math.Abs(float64(a.B) - float64(b.B))
	return (dr + dg + db) / manhattanNorm
}

// LabRGB computes the Euclidean distance in CIE L*a*b* space (under D65),
// a perceptually more uniform color difference than plain RGB distance.
// Weights are roughly in [0, 1] for typical colors.
type LabRGB struct{}

func (LabRGB) Distance(a, b RGB) float64 {
	return toColorful(a).DistanceLab(toColorful(b))
}

// CIEDE2000RGB computes the CIEDE2000 color difference, the most accurate
// perceptual metric offered here and by far the most expensive.
type CIEDE2000RGB struct{}

func (CIEDE2000RGB) Distance(a, b RGB) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func rgbSumOfSquares(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return dr*dr + dg*dg + db*db
}
