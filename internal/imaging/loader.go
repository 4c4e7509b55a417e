package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrDecode reports an input that could not be opened or decoded as an
// image. Use errors.Is to distinguish decode failures from parameter
// validation errors further down the pipeline.
var ErrDecode = errors.New("cannot decode input image")

// Load reads and decodes the image at path.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF, and WebP. The file
// handle is released as soon as decoding completes, whether or not it
// succeeds.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the
//     image format and color model (e.g., *image.RGBA, *image.YCbCr).
//   - error: Wraps ErrDecode if the file cannot be opened or is not a
//     valid image in a supported format.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrDecode, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrDecode, path, err)
	}

	return img, nil
}
