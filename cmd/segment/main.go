// Command segment runs graph-based image segmentation on a single image and
// writes visualizations of the result: a grayscale label map, a colorized
// segment map, and a contour overlay.
//
// Example:
//
//	segment -input tree.jpg -contours contours.png -colors segments.webp -k 300 -min-size 20
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/arrowbyte/graphseg"
)

func main() {
	input := flag.String("input", "", "Path to the input image (png, jpg, gif, bmp, tiff, webp)")
	labelsOut := flag.String("labels", "", "Output path for the grayscale label map")
	colorsOut := flag.String("colors", "", "Output path for the colorized segment map")
	contoursOut := flag.String("contours", "", "Output path for the contour overlay")
	k := flag.Float64("k", 300, "Magic threshold constant (scaled to the metric's range)")
	minSize := flag.Int("min-size", 10, "Minimum segment size in pixels")
	connectivity := flag.Int("connectivity", 4, "Pixel connectivity (4 or 8)")
	metricName := flag.String("metric", "euclidean", "Distance metric: euclidean, squared, manhattan, lab, ciede2000")
	sigma := flag.Float64("sigma", 0.8, "Gaussian pre-blur radius, 0 disables")
	maxDim := flag.Int("max-dim", 0, "Downscale so the longest side is at most this many pixels, 0 disables")
	workers := flag.Int("workers", 0, "Goroutines for graph construction (default: NumCPU)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	if *input == "" {
		flag.Usage()
		logger.Fatal().Msg("missing -input")
	}
	if *labelsOut == "" && *colorsOut == "" && *contoursOut == "" {
		logger.Fatal().Msg("no output requested; pass at least one of -labels, -colors, -contours")
	}

	metric, err := metricByName(*metricName)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -metric")
	}

	src, err := loadImage(*input)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *input).Msg("failed to load image")
	}
	bounds := src.Bounds()
	logger.Debug().
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Msg("loaded image")

	if *maxDim > 0 {
		src = downscale(src, *maxDim)
	}
	if *sigma > 0 {
		src = blur.Gaussian(src, *sigma)
	}

	img := graphseg.FromImage(src)

	// Run the stages individually so each can be timed.
	startBuild := time.Now()
	edges, err := graphseg.BuildGraphParallel(img, metric, graphseg.Connectivity(*connectivity), *workers)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build graph")
	}
	buildTook := time.Since(startBuild)

	startSegment := time.Now()
	ds := graphseg.Segment(edges, graphseg.MagicThreshold{K: *k}, img.PixelCount())
	segmentTook := time.Since(startSegment)

	startEnforce := time.Now()
	graphseg.EnforceMinSize(ds, edges, *minSize)
	enforceTook := time.Since(startEnforce)

	startLabels := time.Now()
	labels, numSegments := graphseg.ExtractLabels(ds, img.PixelCount())
	labelsTook := time.Since(startLabels)

	logger.Info().Dur("took", buildTook).Int("edges", len(edges)).Msg("built graph")
	logger.Info().Dur("took", segmentTook).Msg("oversegmented graph")
	logger.Info().Dur("took", enforceTook).Msg("enforced minimum segment size")
	logger.Info().Dur("took", labelsTook).Int("segments", numSegments).Msg("extracted labels")
	logger.Info().
		Dur("took", buildTook+segmentTook+enforceTook+labelsTook).
		Msg("segmentation complete")

	if *labelsOut != "" {
		gray, err := graphseg.ScaleLabels(labels, numSegments, img.Width, img.Height)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to render label map")
		}
		writeImage(logger, *labelsOut, gray)
	}
	if *colorsOut != "" {
		colors, err := graphseg.ColorizeLabels(labels, numSegments, img.Width, img.Height)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to render colorized segments")
		}
		writeImage(logger, *colorsOut, colors)
	}
	if *contoursOut != "" {
		contours, err := graphseg.DrawContours(img, labels)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to render contours")
		}
		writeImage(logger, *contoursOut, contours)
	}
}

func metricByName(name string) (graphseg.Distance, error) {
	switch strings.ToLower(name) {
	case "euclidean":
		return graphseg.EuclideanRGB{}, nil
	case "squared":
		return graphseg.SquaredEuclideanRGB{}, nil
	case "manhattan":
		return graphseg.ManhattanRGB{}, nil
	case "lab":
		return graphseg.LabRGB{}, nil
	case "ciede2000":
		return graphseg.CIEDE2000RGB{}, nil
	default:
		return nil, fmt.Errorf("unknown metric %q", name)
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// downscale resizes src so its longest side is at most maxDim, preserving
// the aspect ratio. Images already within bounds are returned unchanged.
func downscale(src image.Image, maxDim int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}
	if w >= h {
		return imaging.Resize(src, maxDim, 0, imaging.Lanczos)
	}
	return imaging.Resize(src, 0, maxDim, imaging.Lanczos)
}

// writeImage encodes img to path, picking the encoder from the file
// extension: .webp, .jpg/.jpeg, or PNG for everything else.
func writeImage(logger zerolog.Logger, path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("failed to create output file")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("failed to encode output image")
	}
	logger.Info().Str("path", path).Msg("wrote output")
}
