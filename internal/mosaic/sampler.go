package mosaic

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/hexify/internal/hexgrid"
)

// ErrInvalidParameter reports image dimensions or a hex size the pipeline
// cannot sample: a non-positive height or width, a non-positive hexagon
// size, or a size so small the sampling stride truncates to zero.
var ErrInvalidParameter = errors.New("invalid mosaic parameter")

// HexSize derives the hexagon circumradius from the image height as
// height / (10·√3), giving roughly ten hex rows per image. Heights of
// zero or below return ErrInvalidParameter.
func HexSize(height int) (float64, error) {
	if height <= 0 {
		return 0, fmt.Errorf("%w: image height %d", ErrInvalidParameter, height)
	}
	return float64(height) / (10 * math.Sqrt(3)), nil
}

// Sample sweeps a sparse sub-grid of img with a stride of size/2 pixels in
// both axes, starting at 0 and stopping short of the image edges, and
// buckets one color sample per sub-grid point into the hex cell containing
// it. The sweep visits all y positions for a given x before advancing x,
// which fixes the accumulator's first-touch cell order.
//
// The stride truncates to int(size/2); sizes below 2 would make it zero
// and are rejected with ErrInvalidParameter instead of looping forever.
func Sample(img image.Image, size float64) (*Accumulator, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d", ErrInvalidParameter, width, height)
	}

	stride := int(size / 2)
	if stride < 1 {
		return nil, fmt.Errorf("%w: hex size %.4f truncates the sampling stride to zero (need size >= 2)",
			ErrInvalidParameter, size)
	}

	acc := NewAccumulator()
	for x := 0; x < width; x += stride {
		for y := 0; y < height; y += stride {
			cell, err := hexgrid.PixelToPointyHex(float64(x), float64(y), size)
			if err != nil {
				// Unreachable: the stride guard implies size >= 2.
				return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
			}
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			acc.Add(cell, RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return acc, nil
}
