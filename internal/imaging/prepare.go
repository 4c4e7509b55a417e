package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// PrepareOptions controls the optional preprocessing applied to an image
// before it is sampled. The zero value disables all preprocessing.
type PrepareOptions struct {
	// MaxWidth, when positive, downscales images wider than this many
	// pixels to exactly this width, preserving aspect ratio.
	MaxWidth int

	// SmoothSigma, when positive, applies a Gaussian blur with this radius
	// to soften high-frequency detail before sampling.
	SmoothSigma float64
}

// Prepare applies the requested preprocessing steps in order: downscaling
// first, then smoothing. With zero options the input image is returned
// unchanged.
func Prepare(img image.Image, opts PrepareOptions) image.Image {
	if opts.MaxWidth > 0 && img.Bounds().Dx() > opts.MaxWidth {
		img = imaging.Resize(img, opts.MaxWidth, 0, imaging.Lanczos)
	}
	if opts.SmoothSigma > 0 {
		img = blur.Gaussian(img, opts.SmoothSigma)
	}
	return img
}
