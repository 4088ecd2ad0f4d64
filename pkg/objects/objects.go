package objects

import (
	"slices"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
)

// Bounds is an inclusive bounding box.
type Bounds struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// Height returns the number of rows covered by the box.
func (b Bounds) Height() int { return b.MaxRow - b.MinRow + 1 }

// Width returns the number of columns covered by the box.
func (b Bounds) Width() int { return b.MaxCol - b.MinCol + 1 }

// Contains reports whether c lies inside the box.
func (b Bounds) Contains(c grid.Coord) bool {
	return c.Row >= b.MinRow && c.Row <= b.MaxRow && c.Col >= b.MinCol && c.Col <= b.MaxCol
}

// Object is a maximal 4-connected set of non-background cells together with
// their colours in the source grid.
//
// Objects are produced fresh by each extraction and hold no reference to the
// grid they came from.
type Object struct {
	coords []grid.Coord
	colors map[grid.Coord]grid.Color
}

// Coords returns the object's cells in traversal order.
// The returned slice must not be modified.
func (o Object) Coords() []grid.Coord { return o.coords }

// Set returns the object's cells as a set.
func (o Object) Set() grid.CoordSet { return grid.NewCoordSet(o.coords...) }

// Size returns the number of cells.
func (o Object) Size() int { return len(o.coords) }

// ColorAt returns the colour the cell at c had in the source grid, and
// whether c belongs to the object.
func (o Object) ColorAt(c grid.Coord) (grid.Color, bool) {
	v, ok := o.colors[c]
	return v, ok
}

// Colors returns the distinct colours present, ascending.
func (o Object) Colors() []grid.Color {
	seen := make(map[grid.Color]bool)
	var out []grid.Color
	for _, v := range o.colors {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// Bounds returns the object's bounding box. An empty object has zero Bounds.
func (o Object) Bounds() Bounds {
	if len(o.coords) == 0 {
		return Bounds{}
	}
	b := Bounds{MinRow: o.coords[0].Row, MaxRow: o.coords[0].Row, MinCol: o.coords[0].Col, MaxCol: o.coords[0].Col}
	for _, c := range o.coords[1:] {
		b.MinRow = min(b.MinRow, c.Row)
		b.MaxRow = max(b.MaxRow, c.Row)
		b.MinCol = min(b.MinCol, c.Col)
		b.MaxCol = max(b.MaxCol, c.Col)
	}
	return b
}

// Extract partitions the non-background cells of g into 4-connected objects,
// ignoring colour. A grid without non-background cells yields nil.
func Extract(g *grid.Grid) []Object {
	return extract(g, func(a, b grid.Color) bool { return true })
}

// ExtractByColor is like [Extract] but only joins adjacent cells of the same
// colour, so differently coloured shapes that touch stay separate.
func ExtractByColor(g *grid.Grid) []Object {
	return extract(g, func(a, b grid.Color) bool { return a == b })
}

// extract runs the row-major scan. joins decides whether two adjacent
// non-background colours belong to the same object.
func extract(g *grid.Grid, joins func(a, b grid.Color) bool) []Object {
	visited := grid.NewCoordSet()
	var objects []Object

	for start, v := range g.Cells() {
		if v == grid.Background || visited.Contains(start) {
			continue
		}

		obj := Object{colors: make(map[grid.Coord]grid.Color)}
		visited.Add(start)
		stack := []grid.Coord{start}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cv, _ := g.Get(cur)
			obj.coords = append(obj.coords, cur)
			obj.colors[cur] = cv

			for _, n := range cur.Neighbors4() {
				nv, ok := g.Get(n)
				if !ok || nv == grid.Background || visited.Contains(n) || !joins(cv, nv) {
					continue
				}
				visited.Add(n)
				stack = append(stack, n)
			}
		}
		objects = append(objects, obj)
	}
	return objects
}

// Largest returns the object with the most cells in g.
// Ties are broken in favour of the object discovered first.
// Returns a NO_OBJECTS_FOUND error if g has no non-background cells.
func Largest(g *grid.Grid) (Object, error) {
	return LargestOf(Extract(g))
}

// LargestOf returns the largest of objs, preferring the earliest on ties.
func LargestOf(objs []Object) (Object, error) {
	if len(objs) == 0 {
		return Object{}, arcerrors.New(arcerrors.ErrCodeNoObjectsFound, "grid has no objects")
	}
	best := objs[0]
	for _, o := range objs[1:] {
		if o.Size() > best.Size() {
			best = o
		}
	}
	return best, nil
}

// Translate returns o's cells shifted by (dr, dc). Cells may fall outside any
// grid.
func (o Object) Translate(dr, dc int) []grid.Coord {
	out := make([]grid.Coord, len(o.coords))
	for i, c := range o.coords {
		out[i] = c.Add(dr, dc)
	}
	return out
}
