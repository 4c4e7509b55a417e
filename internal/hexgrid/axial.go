package hexgrid

import "math"

// Axial identifies a cell in a pointy-topped hexagonal grid.
//
// The pair (Q, R) corresponds to the cube coordinates x=Q, z=R, y=-x-z.
// Coordinates produced by AxialRound always satisfy x+y+z == 0.
type Axial struct {
	Q int `json:"q"` // Column-like axis
	R int `json:"r"` // Row-like axis
}

// Cube returns the cube-coordinate form (x, y, z) of the cell.
func (a Axial) Cube() (x, y, z int) {
	return a.Q, -a.Q - a.R, a.R
}

// AxialRound rounds fractional axial coordinates to the nearest hex cell.
//
// The input is converted to cube coordinates (x=q, y=-q-r, z=r) and each
// component is rounded to the nearest integer independently. Independent
// rounding can break the x+y+z == 0 invariant, so the component with the
// largest absolute rounding error is recomputed as the negation of the sum
// of the other two. When deviations tie, the correction priority is fixed:
// x first, then y, then z.
//
// The result is well defined for all finite inputs; NaN or infinite inputs
// produce unspecified results.
func AxialRound(q, r float64) Axial {
	x, z := q, r
	y := -x - z

	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}

	return Axial{Q: int(rx), R: int(rz)}
}
