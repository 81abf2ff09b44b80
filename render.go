package graphseg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorizeLabels renders a label image with one distinct color per segment,
// drawn from a deterministic palette. Useful for inspecting segmentation
// results.
func ColorizeLabels(labels []int, numSegments, width, height int) (*image.RGBA, error) {
	if err := checkLabelDims(labels, width, height); err != nil {
		return nil, err
	}

	palette := colorful.FastHappyPalette(numSegments)
	out := image.NewRGBA(image.Rect(0, 0, width, height))

	for i, l := range labels {
		r, g, b := palette[l].RGB255()
		o := i * 4
		out.Pix[o] = r
		out.Pix[o+1] = g
		out.Pix[o+2] = b
		out.Pix[o+3] = 0xff
	}
	return out, nil
}

// ScaleLabels renders labels as a grayscale image, linearly spreading the
// label range over [0, 255]. With a single segment the image is black.
func ScaleLabels(labels []int, numSegments, width, height int) (*image.Gray, error) {
	if err := checkLabelDims(labels, width, height); err != nil {
		return nil, err
	}

	out := image.NewGray(image.Rect(0, 0, width, height))
	if numSegments <= 1 {
		return out, nil
	}

	scale := 255.0 / float64(numSegments-1)
	for i, l := range labels {
		out.Pix[i] = uint8(float64(l) * scale)
	}
	return out, nil
}

// DrawContours copies img and blacks out every pixel whose segment differs
// from a 4-connected neighbor's, tracing the segment boundaries over the
// original image.
func DrawContours(img *Image, labels []int) (*image.RGBA, error) {
	if img == nil {
		return nil, ErrInvalidImage
	}
	if err := checkLabelDims(labels, img.Width, img.Height); err != nil {
		return nil, err
	}

	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if isBoundaryPixel(labels, img.Width, img.Height, x, y) {
				out.Set(x, y, color.RGBA{A: 0xff})
			} else {
				c := img.At(x, y)
				out.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
			}
		}
	}
	return out, nil
}

// isBoundaryPixel reports whether (x, y) has a 4-connected neighbor with a
// different label.
func isBoundaryPixel(labels []int, width, height, x, y int) bool {
	l := labels[y*width+x]
	if y > 0 && labels[(y-1)*width+x] != l {
		return true
	}
	if y < height-1 && labels[(y+1)*width+x] != l {
		return true
	}
	if x > 0 && labels[y*width+x-1] != l {
		return true
	}
	if x < width-1 && labels[y*width+x+1] != l {
		return true
	}
	return false
}

func checkLabelDims(labels []int, width, height int) error {
	if len(labels) != width*height {
		return fmt.Errorf("graphseg: labels length %d does not match %dx%d image", len(labels), width, height)
	}
	return nil
}
