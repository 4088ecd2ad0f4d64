// Package png rasterises grids.
//
// A grid is first drawn at one pixel per cell into a paletted image whose
// palette is [render.ColorPalette], so pixel indices equal grid colours. It
// is then scaled up with nearest-neighbour sampling, which keeps cell edges
// hard. An optional grid line separates cells.
package png

import (
	"image"
	"image/color"
	stdpng "image/png"
	"io"

	"golang.org/x/image/draw"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/render"
)

// MaxCellSize bounds the per-cell pixel size.
const MaxCellSize = 128

// gridLine is the separator colour between cells.
var gridLine = color.RGBA{0x55, 0x55, 0x55, 0xff}

// Image returns g as a paletted image with cell×cell pixels per grid cell.
// When cell is at least 4, a one-pixel grid line is drawn along the top and
// left edge of every cell.
func Image(g *grid.Grid, cell int) (*image.Paletted, error) {
	if cell < 1 || cell > MaxCellSize {
		return nil, arcerrors.New(arcerrors.ErrCodeInvalidInput, "cell size must be in 1..%d, got %d", MaxCellSize, cell)
	}

	pal := render.ColorPalette()
	small := image.NewPaletted(image.Rect(0, 0, g.Width(), g.Height()), pal)
	for c, v := range g.Cells() {
		small.SetColorIndex(c.Col, c.Row, uint8(v))
	}
	if cell == 1 {
		return small, nil
	}

	pal = append(pal, gridLine)
	dst := image.NewPaletted(image.Rect(0, 0, g.Width()*cell, g.Height()*cell), pal)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)

	if cell >= 4 {
		line := uint8(len(pal) - 1)
		b := dst.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if x%cell == 0 || y%cell == 0 {
					dst.SetColorIndex(x, y, line)
				}
			}
		}
	}
	return dst, nil
}

// Encode writes g as a PNG with cell×cell pixels per grid cell.
func Encode(w io.Writer, g *grid.Grid, cell int) error {
	img, err := Image(g, cell)
	if err != nil {
		return err
	}
	enc := stdpng.Encoder{CompressionLevel: stdpng.BestCompression}
	return enc.Encode(w, img)
}
