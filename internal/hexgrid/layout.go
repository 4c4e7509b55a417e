package hexgrid

import (
	"errors"
	"fmt"
	"math"
)

// Point is a position in pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ErrInvalidSize reports a non-positive hexagon circumradius.
var ErrInvalidSize = errors.New("hex size must be positive")

// PixelToPointyHex maps a pixel position to the axial coordinates of the
// pointy-topped hex cell containing it.
//
// Parameters:
//   - x, y: Pixel position.
//   - size: Hexagon circumradius (center-to-corner distance). Must be
//     positive; size <= 0 returns ErrInvalidSize.
//
// The position is normalized by size, projected onto the axial basis
// (q = (2/3)·x, r = (√3/3)·y − (1/3)·x) and rounded with AxialRound.
func PixelToPointyHex(x, y, size float64) (Axial, error) {
	if size <= 0 {
		return Axial{}, fmt.Errorf("pixel (%g,%g): %w", x, y, ErrInvalidSize)
	}
	x /= size
	y /= size
	q := (2.0 / 3.0) * x
	r := (math.Sqrt(3)/3.0)*y - (1.0/3.0)*x
	return AxialRound(q, r), nil
}

// HexToPixel returns the pixel position of the center of the hex at a,
// for a pointy-topped layout with the given circumradius.
func HexToPixel(a Axial, size float64) Point {
	q := float64(a.Q)
	r := float64(a.R)
	return Point{
		X: size * 1.5 * q,
		Y: size * math.Sqrt(3) * (q/2 + r),
	}
}

// HexCorner returns the i-th corner of a pointy-topped hexagon centered at
// (cx, cy). Corners sit at angle 60°·i from the positive x-axis at distance
// size from the center. i is periodic; only 0..5 yield distinct corners.
func HexCorner(cx, cy, size float64, i int) Point {
	angle := math.Pi / 180 * float64(60*i)
	return Point{
		X: cx + size*math.Cos(angle),
		Y: cy + size*math.Sin(angle),
	}
}

// HexagonPoints returns the six corners of the hex at a, in corner order
// 0..5, with each coordinate rounded to two decimal places for
// serialization.
func HexagonPoints(a Axial, size float64) [6]Point {
	c := HexToPixel(a, size)
	var pts [6]Point
	for i := range pts {
		p := HexCorner(c.X, c.Y, size, i)
		pts[i] = Point{X: round2(p.X), Y: round2(p.Y)}
	}
	return pts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
