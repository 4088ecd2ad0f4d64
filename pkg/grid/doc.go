// Package grid provides the fixed-size colour grid that every arcgrid
// transformation reads and writes.
//
// # Overview
//
// A [Grid] is an H×W array of [Color] symbols drawn from a closed palette of
// [NumColors] entries, where [Background] (0) is the distinguished empty
// colour. Dimensions are fixed at construction and never change.
//
// Grids are value-like. Transformations read a source grid and produce a new
// one with [Grid.Clone] rather than mutating the caller's grid in place.
//
// # Basic Usage
//
//	g, err := grid.New(3, 3, grid.Background)
//	if err != nil {
//	    return err
//	}
//	if err := g.Set(grid.Coord{Row: 1, Col: 1}, 5); err != nil {
//	    return err
//	}
//	fmt.Print(g)
//	// 000
//	// 050
//	// 000
//
// [Grid.At] and [Grid.Set] are bounds-checked and fail with an
// OUT_OF_BOUNDS error from [github.com/matzehuels/arcgrid/pkg/errors].
// [Grid.Get] is the unchecked form for algorithms that already test
// [Grid.InBounds].
//
// # Serialization
//
// Grids marshal to JSON as nested integer arrays, the layout used by ARC task
// files. [Parse] reads the digit-per-cell text produced by [Grid.String],
// which keeps test fixtures readable.
//
// # Coordinates
//
// [Coord] is a (row, col) pair. [CoordSet] is an unordered set of coordinates;
// [CoordSet.Sorted] returns them in row-major order for deterministic output.
//
// # Concurrency
//
// Grid instances are not safe for concurrent mutation. Distinct grids can be
// processed in parallel freely.
package grid
