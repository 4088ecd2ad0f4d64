// Package replicate extrapolates translated copies ("echoes") of an object in
// the eight compass directions.
//
// For an object whose bounding box is w wide and h tall, the n-th echo in
// direction (di, dj) is the object shifted by di·n·(h+1) rows and
// dj·n·(w+1) columns, leaving exactly one blank row or column between
// neighbouring copies. Each direction adopts a single colour from the first
// echo: the first non-background source cell found under it. Every echo in
// that direction is painted with that colour, or with background when the
// first echo found nothing. Echoes continue until one lies completely
// outside the grid.
package replicate

import (
	"slices"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/objects"
)

// Directions lists the eight compass offsets in row-major order of (di, dj).
var Directions = [8]grid.Coord{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// Echo is one translated copy of an object.
type Echo struct {
	Direction grid.Coord   // compass offset
	N         int          // 1 for the nearest copy
	Color     grid.Color   // adopted colour of the direction
	Cells     []grid.Coord // in-bounds cells only, never empty
}

// Plan computes the echoes of obj in g without painting them.
// Echoes are grouped by direction in [Directions] order, nearest first.
// An empty object has no echoes.
func Plan(g *grid.Grid, obj objects.Object) []Echo {
	if obj.Size() == 0 {
		return nil
	}
	b := obj.Bounds()
	h, w := b.Height(), b.Width()

	// Scan cells row-major so the adopted colour does not depend on
	// traversal order.
	cells := slices.Clone(obj.Coords())
	slices.SortFunc(cells, grid.Compare)
	shifted := func(dr, dc int) []grid.Coord {
		out := make([]grid.Coord, len(cells))
		for i, c := range cells {
			out[i] = c.Add(dr, dc)
		}
		return out
	}

	var echoes []Echo
	for _, d := range Directions {
		color := grid.Background
		for n := 1; ; n++ {
			translated := shifted(d.Row*n*(h+1), d.Col*n*(w+1))
			if n == 1 {
				color = seedColor(g, translated)
			}
			var inBounds []grid.Coord
			for _, c := range translated {
				if g.InBounds(c) {
					inBounds = append(inBounds, c)
				}
			}
			if len(inBounds) == 0 {
				break
			}
			echoes = append(echoes, Echo{Direction: d, N: n, Color: color, Cells: inBounds})
		}
	}
	return echoes
}

// seedColor returns the first non-background colour of g under cells.
func seedColor(g *grid.Grid, cells []grid.Coord) grid.Color {
	for _, c := range cells {
		if v, ok := g.Get(c); ok && v != grid.Background {
			return v
		}
	}
	return grid.Background
}

// Replicate returns a copy of g with every echo of obj painted in its
// direction's adopted colour. The object's own cells are never touched and g
// is not modified. Fails with NO_OBJECTS_FOUND when obj has no cells.
func Replicate(g *grid.Grid, obj objects.Object) (*grid.Grid, error) {
	if obj.Size() == 0 {
		return nil, arcerrors.New(arcerrors.ErrCodeNoObjectsFound, "object has no cells")
	}
	out := g.Clone()
	for _, e := range Plan(g, obj) {
		for _, c := range e.Cells {
			if err := out.Set(c, e.Color); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// ReplicateLargest replicates the largest object of g (first discovered on
// ties). Fails with NO_OBJECTS_FOUND on a grid without objects.
func ReplicateLargest(g *grid.Grid) (*grid.Grid, error) {
	obj, err := objects.Largest(g)
	if err != nil {
		return nil, err
	}
	return Replicate(g, obj)
}
