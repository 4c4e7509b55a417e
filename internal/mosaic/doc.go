// Package mosaic turns a raster image into an SVG document of flat-colored
// hexagonal tiles.
//
// The pipeline is a single synchronous pass: derive the hexagon size from
// the image height (or take an explicit override), sweep a sparse sub-grid
// of pixels bucketing one color sample per point into the hex cell that
// contains it, average each cell's samples, and emit one polygon per
// populated cell.
//
// # Determinism
//
// Output order matters: polygons are emitted in the order their cells were
// first touched by the sampling sweep, which runs all y positions for a
// given x before advancing x. The Accumulator preserves that first-touch
// order explicitly so identical inputs always serialize identically.
//
// # Error Handling
//
// Parameter problems (non-positive dimensions, a hex size too small to
// produce a one-pixel sampling stride) wrap ErrInvalidParameter. Decode
// failures surface the imaging package's ErrDecode. An image whose sweep
// populates zero cells is not an error; it yields a valid SVG document
// with no polygons.
package mosaic
