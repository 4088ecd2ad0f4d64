package grid

import (
	"strings"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
)

// Parse reads the text form produced by [Grid.String]: one line per row, one
// digit per cell. Blank lines and surrounding whitespace are ignored, so
// fixtures can be written as indented raw strings.
func Parse(s string) (*Grid, error) {
	var rows [][]int
	for line := range strings.Lines(s) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, r := range line {
			if r < '0' || r > '9' {
				return nil, arcerrors.New(arcerrors.ErrCodeInvalidGrid, "invalid cell %q in row %d", r, len(rows))
			}
			row = append(row, int(r-'0'))
		}
		rows = append(rows, row)
	}
	return FromInts(rows)
}

// MustParse is like [Parse] but panics on error.
// It is intended for fixtures and examples.
func MustParse(s string) *Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}
