package grid

import (
	"encoding/json"
	"iter"
	"strings"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
)

// Color is an opaque palette symbol in the range [0, NumColors).
type Color uint8

const (
	// Background is the distinguished empty colour.
	Background Color = 0
	// NumColors is the size of the closed palette.
	NumColors = 10
)

// Valid reports whether c belongs to the palette.
func (c Color) Valid() bool { return c < NumColors }

// Grid is a rectangular H×W array of colours.
//
// The zero value is not usable - use [New], [FromRows], [FromInts] or [Parse].
type Grid struct {
	h, w  int
	cells []Color // row-major
}

// New creates an h×w grid with every cell set to fill.
// Returns an INVALID_GRID error if either dimension is not positive or fill
// is outside the palette.
func New(h, w int, fill Color) (*Grid, error) {
	if h <= 0 || w <= 0 {
		return nil, arcerrors.New(arcerrors.ErrCodeInvalidGrid, "dimensions must be positive, got %dx%d", h, w)
	}
	if !fill.Valid() {
		return nil, arcerrors.New(arcerrors.ErrCodeInvalidGrid, "fill colour %d outside palette", fill)
	}
	cells := make([]Color, h*w)
	if fill != Background {
		for i := range cells {
			cells[i] = fill
		}
	}
	return &Grid{h: h, w: w, cells: cells}, nil
}

// FromRows creates a grid from a non-empty rectangular slice of rows.
func FromRows(rows [][]Color) (*Grid, error) {
	ints := make([][]int, len(rows))
	for i, row := range rows {
		ints[i] = make([]int, len(row))
		for j, v := range row {
			ints[i][j] = int(v)
		}
	}
	return FromInts(ints)
}

// FromInts creates a grid from nested integer arrays as found in task files.
// Every row must have the same non-zero length and every value must be a
// palette colour.
func FromInts(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, arcerrors.New(arcerrors.ErrCodeInvalidGrid, "grid must have at least one row and column")
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{h: h, w: w, cells: make([]Color, h*w)}
	for i, row := range rows {
		if len(row) != w {
			return nil, arcerrors.New(arcerrors.ErrCodeInvalidGrid, "row %d has %d cells, want %d", i, len(row), w)
		}
		for j, v := range row {
			if v < 0 || v >= NumColors {
				return nil, arcerrors.New(arcerrors.ErrCodeInvalidGrid, "colour %d at (%d,%d) outside palette", v, i, j)
			}
			g.cells[i*w+j] = Color(v)
		}
	}
	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// InBounds reports whether c lies within [0,H)×[0,W).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.h && c.Col >= 0 && c.Col < g.w
}

// At returns the colour at c, or an OUT_OF_BOUNDS error.
func (g *Grid) At(c Coord) (Color, error) {
	if !g.InBounds(c) {
		return 0, g.outOfBounds(c)
	}
	return g.cells[c.Row*g.w+c.Col], nil
}

// Get returns the colour at c and whether c is in bounds.
// Out-of-bounds reads return (Background, false).
func (g *Grid) Get(c Coord) (Color, bool) {
	if !g.InBounds(c) {
		return Background, false
	}
	return g.cells[c.Row*g.w+c.Col], true
}

// Set writes v at c. It fails with OUT_OF_BOUNDS for coordinates outside the
// grid and INVALID_GRID for colours outside the palette; on failure the grid
// is unchanged.
func (g *Grid) Set(c Coord, v Color) error {
	if !g.InBounds(c) {
		return g.outOfBounds(c)
	}
	if !v.Valid() {
		return arcerrors.New(arcerrors.ErrCodeInvalidGrid, "colour %d outside palette", v)
	}
	g.cells[c.Row*g.w+c.Col] = v
	return nil
}

func (g *Grid) outOfBounds(c Coord) error {
	return arcerrors.New(arcerrors.ErrCodeOutOfBounds, "%s outside %dx%d grid", c, g.h, g.w)
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.cells))
	copy(cells, g.cells)
	return &Grid{h: g.h, w: g.w, cells: cells}
}

// Equal reports whether g and other have the same dimensions and colours.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.h != other.h || g.w != other.w {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Coords iterates every coordinate in row-major order.
func (g *Grid) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for r := 0; r < g.h; r++ {
			for c := 0; c < g.w; c++ {
				if !yield(Coord{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Cells iterates every coordinate and its colour in row-major order.
func (g *Grid) Cells() iter.Seq2[Coord, Color] {
	return func(yield func(Coord, Color) bool) {
		for i, v := range g.cells {
			if !yield(Coord{Row: i / g.w, Col: i % g.w}, v) {
				return
			}
		}
	}
}

// Border returns the coordinates on the outer edge (row 0 or H-1, column 0
// or W-1) in row-major order, each exactly once.
func (g *Grid) Border() []Coord {
	var out []Coord
	for c := range g.Coords() {
		if c.Row == 0 || c.Row == g.h-1 || c.Col == 0 || c.Col == g.w-1 {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of cells whose colour satisfies pred.
func (g *Grid) Count(pred func(Color) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]Color {
	rows := make([][]Color, g.h)
	for r := range rows {
		rows[r] = make([]Color, g.w)
		copy(rows[r], g.cells[r*g.w:(r+1)*g.w])
	}
	return rows
}

// Ints returns the grid as nested integer arrays.
func (g *Grid) Ints() [][]int {
	rows := make([][]int, g.h)
	for r := range rows {
		rows[r] = make([]int, g.w)
		for c := range rows[r] {
			rows[r][c] = int(g.cells[r*g.w+c])
		}
	}
	return rows
}

// String renders one digit per cell and one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.h; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.w; c++ {
			b.WriteByte('0' + byte(g.cells[r*g.w+c]))
		}
	}
	return b.String()
}

// MarshalJSON encodes the grid as nested integer arrays.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Ints())
}

// UnmarshalJSON decodes nested integer arrays, validating shape and palette.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return arcerrors.Wrap(arcerrors.ErrCodeInvalidGrid, err, "decode grid")
	}
	parsed, err := FromInts(rows)
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}

// Diff returns the coordinates where a and b differ, in row-major order.
// Grids of different shapes yield an INVALID_GRID error.
func Diff(a, b *Grid) ([]Coord, error) {
	if a.h != b.h || a.w != b.w {
		return nil, arcerrors.New(arcerrors.ErrCodeInvalidGrid, "shape mismatch: %dx%d vs %dx%d", a.h, a.w, b.h, b.w)
	}
	var out []Coord
	for c, v := range a.Cells() {
		if w, _ := b.Get(c); w != v {
			out = append(out, c)
		}
	}
	return out, nil
}
