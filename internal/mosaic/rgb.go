package mosaic

import "github.com/lucasb-eyer/go-colorful"

// RGB is one 8-bit color sample taken from the source image.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex formats the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// averageRGB returns the channel-wise mean of samples with each channel
// truncated, not rounded: sum/n in integer floor division. samples must
// be non-empty.
func averageRGB(samples []RGB) RGB {
	var r, g, b uint64
	for _, s := range samples {
		r += uint64(s.R)
		g += uint64(s.G)
		b += uint64(s.B)
	}
	n := uint64(len(samples))
	return RGB{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(b / n),
	}
}
