package render

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/arcgrid/pkg/grid"
)

// Palette maps every grid colour to its display colour as "#RRGGBB".
var Palette = [grid.NumColors]string{
	"#000000", // 0 black (background)
	"#0074D9", // 1 blue
	"#FF4136", // 2 red
	"#2ECC40", // 3 green
	"#FFDC00", // 4 yellow
	"#AAAAAA", // 5 grey
	"#F012BE", // 6 magenta
	"#FF851B", // 7 orange
	"#7FDBFF", // 8 light blue
	"#870C25", // 9 maroon
}

// Names are human-readable colour names, indexed like [Palette].
var Names = [grid.NumColors]string{
	"black", "blue", "red", "green", "yellow",
	"grey", "magenta", "orange", "azure", "maroon",
}

// Hex returns the display colour of c. Colours outside the palette render
// as white so invalid data stays visible.
func Hex(c grid.Color) string {
	if !c.Valid() {
		return "#FFFFFF"
	}
	return Palette[c]
}

// RGBA returns the display colour of c as an opaque [color.RGBA].
func RGBA(c grid.Color) color.RGBA {
	var r, g, b uint8
	// Hex always yields a well-formed "#RRGGBB".
	_, _ = fmt.Sscanf(Hex(c), "#%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ColorPalette returns the palette as an [color.Palette] for paletted images.
// Index i holds the display colour of grid colour i.
func ColorPalette() color.Palette {
	p := make(color.Palette, grid.NumColors)
	for i := range p {
		p[i] = RGBA(grid.Color(i))
	}
	return p
}
