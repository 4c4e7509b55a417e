// Package imaging provides image loading and preprocessing for the
// hexagon mosaic converter.
//
// Load decodes a raster image from disk, with PNG, JPEG, GIF, BMP, TIFF,
// and WebP decoders registered. Prepare applies optional preprocessing
// (Lanczos downscaling, Gaussian smoothing) before the image is sampled.
//
// All operations work with standard Go image.Image values and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Error Handling
//
// Load wraps every failure (missing file, unreadable file, unsupported or
// corrupt format) with ErrDecode so callers can classify it without
// inspecting message text. Prepare never fails; invalid options are
// treated as disabled.
package imaging
