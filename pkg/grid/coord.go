package grid

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Coord is a (row, col) position. Rows grow downward, columns to the right.
type Coord struct {
	Row int
	Col int
}

// String formats the coordinate as "(r,c)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c translated by dr rows and dc columns.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// offsets4 lists the edge-adjacent offsets in row-major order.
var offsets4 = [4]Coord{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Neighbors4 returns the four edge-adjacent coordinates of c.
// Results may lie outside any particular grid; callers filter with [Grid.InBounds].
func (c Coord) Neighbors4() [4]Coord {
	var n [4]Coord
	for i, o := range offsets4 {
		n[i] = c.Add(o.Row, o.Col)
	}
	return n
}

// Compare orders coordinates row-major: by row, then by column.
func Compare(a, b Coord) int {
	if r := cmp.Compare(a.Row, b.Row); r != 0 {
		return r
	}
	return cmp.Compare(a.Col, b.Col)
}

// CoordSet is an unordered set of coordinates.
// The zero value is not usable; create sets with [NewCoordSet].
type CoordSet map[Coord]struct{}

// NewCoordSet creates a set holding the given coordinates.
func NewCoordSet(cs ...Coord) CoordSet {
	s := make(CoordSet, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c and reports whether it was not already present.
func (s CoordSet) Add(c Coord) bool {
	if _, ok := s[c]; ok {
		return false
	}
	s[c] = struct{}{}
	return true
}

// Contains reports whether c is in the set.
func (s CoordSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of coordinates in the set.
func (s CoordSet) Len() int { return len(s) }

// Sorted returns the coordinates in row-major order.
func (s CoordSet) Sorted() []Coord {
	return slices.SortedFunc(maps.Keys(s), Compare)
}

// Equal reports whether both sets hold exactly the same coordinates.
func (s CoordSet) Equal(other CoordSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}
