// Package reach classifies background cells as open or enclosed.
//
// A background cell is open when a path of edge-adjacent background cells
// connects it to the border of the grid. Every other background cell is
// enclosed. [Classify] computes the open set with a multi-source flood fill
// seeded from every background cell on the border; [Enclosed] returns the
// complement within the background, and [FillEnclosed] paints it, the usual
// "fill the holes" transformation.
//
// Results are computed fresh on every call and never cached, so they always
// reflect the grid as passed.
package reach

import (
	"github.com/matzehuels/arcgrid/pkg/grid"
)

// Classify returns the set of open background cells of g.
//
// The frontier starts with every background border cell and expands through
// 4-adjacent background cells not yet marked. Each cell is visited at most
// once, so the fill finishes in at most H×W steps.
func Classify(g *grid.Grid) grid.CoordSet {
	open := grid.NewCoordSet()
	var queue []grid.Coord
	for _, c := range g.Border() {
		if v, _ := g.Get(c); v == grid.Background && open.Add(c) {
			queue = append(queue, c)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors4() {
			if v, ok := g.Get(n); ok && v == grid.Background && open.Add(n) {
				queue = append(queue, n)
			}
		}
	}
	return open
}

// Enclosed returns the background cells of g that are not reachable from the
// border, in row-major order.
func Enclosed(g *grid.Grid) []grid.Coord {
	open := Classify(g)
	var out []grid.Coord
	for c, v := range g.Cells() {
		if v == grid.Background && !open.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// FillEnclosed returns a copy of g with every enclosed background cell set
// to fill. g itself is not modified.
func FillEnclosed(g *grid.Grid, fill grid.Color) (*grid.Grid, error) {
	out := g.Clone()
	for _, c := range Enclosed(g) {
		if err := out.Set(c, fill); err != nil {
			return nil, err
		}
	}
	return out, nil
}
