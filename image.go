package graphseg

import (
	"errors"
	"image"
)

// ErrInvalidImage is returned when the input image has zero area.
var ErrInvalidImage = errors.New("graphseg: image has zero area")

// RGB is an 8-bit color sample for a single pixel.
type RGB struct {
	R, G, B uint8
}

// Image is a decoded image in packed RGB form, the input to the segmentation
// pipeline. Pixels are addressed by row-major linear index: pixel (x, y) has
// index y*Width + x.
type Image struct {
	Width  int
	Height int
	// Pix holds 3 bytes per pixel (R, G, B), row-major.
	Pix []uint8
}

// NewImage allocates a zeroed (black) image of the given dimensions.
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// FromImage converts a stdlib image into the packed RGB form used by the
// segmentation pipeline. Alpha is discarded.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	im := NewImage(bounds.Dx(), bounds.Dy())

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			im.Pix[i] = uint8(r >> 8)
			im.Pix[i+1] = uint8(g >> 8)
			im.Pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return im
}

// At returns the color sample at pixel coordinates (x, y).
func (im *Image) At(x, y int) RGB {
	return im.atIndex(y*im.Width + x)
}

// Set stores the color sample at pixel coordinates (x, y).
func (im *Image) Set(x, y int, c RGB) {
	o := (y*im.Width + x) * 3
	im.Pix[o] = c.R
	im.Pix[o+1] = c.G
	im.Pix[o+2] = c.B
}

// PixelCount returns the total number of pixels.
func (im *Image) PixelCount() int {
	return im.Width * im.Height
}

// atIndex returns the color sample for row-major pixel index n.
func (im *Image) atIndex(n int) RGB {
	o := n * 3
	return RGB{R: im.Pix[o], G: im.Pix[o+1], B: im.Pix[o+2]}
}
