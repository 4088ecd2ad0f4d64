// Package objects extracts the connected objects of a grid.
//
// # Overview
//
// An [Object] is a maximal set of non-background cells that are connected
// through edge-adjacent (4-neighbour) steps. [Extract] partitions every
// non-background cell of a grid into objects: the returned objects are
// disjoint, their union is exactly the non-background cells, and each is
// internally connected and cannot be grown.
//
// Colour is ignored by [Extract]: two touching cells of different colours
// belong to the same object. [ExtractByColor] additionally requires equal
// colours for adjacency.
//
// # Ordering
//
// Objects are returned in the order their row-major-first cell is met by a
// row-major scan. Within an object, [Object.Coords] lists cells in traversal
// order, which is deterministic but carries no meaning; use
// [grid.CoordSet.Sorted] on [Object.Set] for row-major output.
//
// # Largest object
//
// [Largest] picks the object with the most cells. Ties go to the object
// discovered first. A grid without objects yields a NO_OBJECTS_FOUND error.
//
// # Traversal
//
// Traversal uses an explicit stack, so grid size is never limited by
// recursion depth.
package objects
