// Package hexgrid implements coordinate math for pointy-topped hexagonal
// grids: rounding fractional axial coordinates to cells, converting between
// pixel and hex space, and computing hexagon corner geometry.
//
// # Coordinate System
//
// Cells are addressed with axial coordinates (q, r). The cube-coordinate
// equivalent is x=q, z=r, y=-x-z, so every cell satisfies x+y+z == 0.
// Pixel space follows the standard image convention: (0,0) at the top-left,
// X increasing rightward, Y increasing downward.
//
// # Hexagon Layout
//
// All functions assume pointy-topped orientation with a fixed circumradius
// ("size", the center-to-corner distance). Corner i of a hexagon sits at
// angle 60°·i from the positive x-axis at distance size from the center.
//
// # Error Handling
//
// The conversions are pure and total for finite inputs, with one exception:
// PixelToPointyHex divides by size and returns ErrInvalidSize for a
// non-positive size. NaN or infinite inputs are not guarded.
package hexgrid
