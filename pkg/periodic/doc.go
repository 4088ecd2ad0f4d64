// Package periodic reconstructs grids that follow a periodic or diagonal
// colour pattern from partially observed cells.
//
// # Overview
//
// The caller supplies an [EquivalenceFunc] that maps each coordinate to a
// class id; all coordinates with the same id must share one colour. [Infer]
// scans the grid in row-major order and records each non-background colour as
// the resolved colour of its class. The output paints every cell with its
// class colour, so two cells of the same class always agree.
//
// Built-in equivalences cover the common patterns:
//
//   - [DiagonalBands]: (row+col) mod k, stripes running down-left
//   - [AntiDiagonalBands]: (row-col) mod k, stripes running down-right
//   - [Tiling]: (row mod h, col mod w), a repeated rectangular tile
//
// # Conflicts
//
// When a class is observed with two different colours, the last observation
// in row-major order wins. [Strict] rejects the grid instead, failing with an
// AMBIGUOUS_CLASS error.
//
// # Unresolved classes
//
// Classes with no observation become background, unless a fallback installed
// with [WithFallback] supplies a colour per cell. Fallback cells are outside
// the class guarantee: the fallback decides their colour.
//
// # Example
//
//	out, err := periodic.Infer(g, periodic.DiagonalBands(3))
package periodic
