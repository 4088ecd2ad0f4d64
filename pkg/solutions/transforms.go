package solutions

import (
	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/periodic"
	"github.com/matzehuels/arcgrid/pkg/reach"
	"github.com/matzehuels/arcgrid/pkg/replicate"
)

const (
	holeColor    grid.Color = 4 // yellow
	overlapColor grid.Color = 2 // red
	bandPeriod              = 3
)

// SelfTile builds an (H·H)×(W·W) grid of H×W blocks. Block (i, j) is a copy of
// the input when input cell (i, j) is coloured, and background otherwise.
func SelfTile(in *grid.Grid) (*grid.Grid, error) {
	h, w := in.Height(), in.Width()
	out, err := grid.New(h*h, w*w, grid.Background)
	if err != nil {
		return nil, err
	}
	for block, v := range in.Cells() {
		if v == grid.Background {
			continue
		}
		for c, cv := range in.Cells() {
			dst := grid.Coord{Row: block.Row*h + c.Row, Col: block.Col*w + c.Col}
			if err := out.Set(dst, cv); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// FillHoles paints every enclosed background cell yellow.
func FillHoles(in *grid.Grid) (*grid.Grid, error) {
	return reach.FillEnclosed(in, holeColor)
}

// ShiftRight moves every cell one column to the right, except cells anchored
// to a bottom-right corner: the corner itself, the cell above it, and the run
// of same-coloured cells to its left stay where they are. A corner is a
// coloured cell whose upper and left neighbours share its colour.
func ShiftRight(in *grid.Grid) (*grid.Grid, error) {
	same := func(c grid.Coord, v grid.Color) bool {
		n, ok := in.Get(c)
		return ok && n == v
	}

	fixed := grid.NewCoordSet()
	for c, v := range in.Cells() {
		if v == grid.Background || !same(c.Add(-1, 0), v) || !same(c.Add(0, -1), v) {
			continue
		}
		fixed.Add(c)
		fixed.Add(c.Add(-1, 0))
		for left := c.Add(0, -1); same(left, v); left = left.Add(0, -1) {
			fixed.Add(left)
		}
	}

	out, err := grid.New(in.Height(), in.Width(), grid.Background)
	if err != nil {
		return nil, err
	}
	for c, v := range in.Cells() {
		if !fixed.Contains(c) {
			v, _ = in.Get(c.Add(0, -1))
		}
		if err := out.Set(c, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EchoLargest replicates the largest object in all eight directions, each
// direction taking the colour found next to the object.
func EchoLargest(in *grid.Grid) (*grid.Grid, error) {
	return replicate.ReplicateLargest(in)
}

// OverlayHalves splits an H×(2K+1) grid at its middle separator column and
// returns an H×K grid marking cells coloured in both halves.
func OverlayHalves(in *grid.Grid) (*grid.Grid, error) {
	if in.Width()%2 == 0 || in.Width() < 3 {
		return nil, arcerrors.New(arcerrors.ErrCodeInvalidGrid,
			"want an odd width of at least 3 for a separator column, got %d", in.Width())
	}
	half := in.Width() / 2
	out, err := grid.New(in.Height(), half, grid.Background)
	if err != nil {
		return nil, err
	}
	for c := range out.Coords() {
		left, _ := in.Get(c)
		right, _ := in.Get(c.Add(0, half+1))
		if left != grid.Background && right != grid.Background {
			if err := out.Set(c, overlapColor); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// DiagonalBanding completes a (row+col) mod 3 colour banding from the
// observed cells.
func DiagonalBanding(in *grid.Grid) (*grid.Grid, error) {
	return periodic.Infer(in, periodic.DiagonalBands(bandPeriod))
}
