package png

import (
	"bytes"
	stdpng "image/png"
	"testing"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/render"
)

func TestImageOnePixelPerCell(t *testing.T) {
	g := grid.MustParse("012\n345")
	img, err := Image(g, 1)
	if err != nil {
		t.Fatalf("Image() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 3x2", b)
	}
	for c, v := range g.Cells() {
		if got := img.ColorIndexAt(c.Col, c.Row); got != uint8(v) {
			t.Errorf("index at %s = %d, want %d", c, got, v)
		}
	}
}

func TestImageScaled(t *testing.T) {
	g := grid.MustParse("01\n20")
	img, err := Image(g, 10)
	if err != nil {
		t.Fatalf("Image() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("bounds = %v, want 20x20", b)
	}

	// Cell interiors keep their colour.
	tests := []struct {
		x, y int
		want grid.Color
	}{
		{5, 5, 0},
		{15, 5, 1},
		{5, 15, 2},
		{15, 15, 0},
	}
	for _, tt := range tests {
		if got := img.At(tt.x, tt.y); got != render.RGBA(tt.want) {
			t.Errorf("At(%d,%d) = %v, want %v", tt.x, tt.y, got, render.RGBA(tt.want))
		}
	}

	// Cell boundaries carry the grid line.
	if got := img.At(10, 5); got != gridLine {
		t.Errorf("At(10,5) = %v, want grid line", got)
	}
}

func TestImageInvalidCellSize(t *testing.T) {
	g := grid.MustParse("0")
	for _, cell := range []int{0, -1, MaxCellSize + 1} {
		if _, err := Image(g, cell); !arcerrors.Is(err, arcerrors.ErrCodeInvalidInput) {
			t.Errorf("Image(cell=%d) error = %v, want %s", cell, err, arcerrors.ErrCodeInvalidInput)
		}
	}
}

func TestEncodeDecodes(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, grid.MustParse("123\n456\n789"), 8); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	img, err := stdpng.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 24 {
		t.Errorf("decoded bounds = %v, want 24x24", b)
	}
}
