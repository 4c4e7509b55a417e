package mosaic

import "github.com/ironsheep/hexify/internal/hexgrid"

// Shape is one rendered hexagon: six corner points in corner order and a
// flat fill color as lowercase "#rrggbb".
type Shape struct {
	Points [6]hexgrid.Point `json:"points"`
	Fill   string           `json:"fill"`
}

// Render converts the accumulator into polygon shapes, one per populated
// cell, in first-touch order. Each fill is the integer-truncated mean of
// the cell's samples per channel. An empty accumulator yields an empty
// slice, not an error.
func Render(acc *Accumulator, size float64) []Shape {
	shapes := make([]Shape, 0, acc.Len())
	acc.Each(func(cell hexgrid.Axial, samples []RGB) {
		shapes = append(shapes, Shape{
			Points: hexgrid.HexagonPoints(cell, size),
			Fill:   averageRGB(samples).Hex(),
		})
	})
	return shapes
}
