package png

import (
	"image"
	"image/color"
	stdpng "image/png"
	"io"

	"golang.org/x/image/draw"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
)

// sheetBackground fills the space between grids on a sheet.
var sheetBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}

// Sheet lays out rows of grids on one image, top-aligned, with one cell of
// padding around and between grids. Nil grids leave an empty slot the size
// of a 1×1 grid.
func Sheet(rows [][]*grid.Grid, cell int) (*image.RGBA, error) {
	if len(rows) == 0 {
		return nil, arcerrors.New(arcerrors.ErrCodeInvalidInput, "sheet needs at least one row")
	}

	type placed struct {
		img  *image.Paletted
		x, y int
	}
	var (
		items []placed
		width int
		y     = cell
	)
	for _, row := range rows {
		x, rowHeight := cell, cell
		for _, g := range row {
			if g == nil {
				x += 2 * cell
				continue
			}
			img, err := Image(g, cell)
			if err != nil {
				return nil, err
			}
			items = append(items, placed{img: img, x: x, y: y})
			x += img.Bounds().Dx() + cell
			rowHeight = max(rowHeight, img.Bounds().Dy())
		}
		width = max(width, x)
		y += rowHeight + cell
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, y))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)
	for _, it := range items {
		r := it.img.Bounds().Add(image.Pt(it.x, it.y))
		draw.Draw(dst, r, it.img, image.Point{}, draw.Src)
	}
	return dst, nil
}

// EncodeSheet writes [Sheet] output as a PNG.
func EncodeSheet(w io.Writer, rows [][]*grid.Grid, cell int) error {
	img, err := Sheet(rows, cell)
	if err != nil {
		return err
	}
	return stdpng.Encode(w, img)
}
