package render

import (
	"image/color"
	"testing"

	"github.com/matzehuels/arcgrid/pkg/grid"
)

func TestRGBA(t *testing.T) {
	tests := []struct {
		c    grid.Color
		want color.RGBA
	}{
		{0, color.RGBA{0, 0, 0, 255}},
		{1, color.RGBA{0x00, 0x74, 0xD9, 255}},
		{4, color.RGBA{0xFF, 0xDC, 0x00, 255}},
		{9, color.RGBA{0x87, 0x0C, 0x25, 255}},
		{12, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := RGBA(tt.c); got != tt.want {
			t.Errorf("RGBA(%d) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestColorPalette(t *testing.T) {
	p := ColorPalette()
	if len(p) != grid.NumColors {
		t.Fatalf("len(ColorPalette()) = %d, want %d", len(p), grid.NumColors)
	}
	for i := range p {
		if p.Index(RGBA(grid.Color(i))) != i {
			t.Errorf("palette index of colour %d = %d", i, p.Index(RGBA(grid.Color(i))))
		}
	}
}
