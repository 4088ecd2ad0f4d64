// Package term renders grids as coloured blocks for terminal output.
//
// Each cell is two spaces wide with the palette colour as background, which
// keeps cells roughly square in common terminal fonts. On terminals without
// colour support lipgloss strips the styling, so [Options.Digits] can print
// the colour digit inside each cell instead.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/render"
)

// Options configures terminal rendering.
type Options struct {
	// Digits prints each cell's colour digit instead of blank blocks.
	Digits bool
}

var (
	styleCaption = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleArrow   = lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Padding(0, 2)
)

var cellStyles = func() [grid.NumColors]lipgloss.Style {
	var s [grid.NumColors]lipgloss.Style
	for i := range s {
		fg := lipgloss.Color("255")
		if i == 4 || i == 8 {
			fg = lipgloss.Color("0")
		}
		s[i] = lipgloss.NewStyle().
			Background(lipgloss.Color(render.Palette[i])).
			Foreground(fg)
	}
	return s
}()

// Grid renders g one row per line.
func Grid(g *grid.Grid, opts ...Options) string {
	return renderCells(g, nil, option(opts))
}

// Diff renders got, marking cells that differ from want with "××".
// When the shapes differ, got is rendered unmarked.
func Diff(got, want *grid.Grid, opts ...Options) string {
	diff, err := grid.Diff(got, want)
	if err != nil {
		return renderCells(got, nil, option(opts))
	}
	return renderCells(got, grid.NewCoordSet(diff...), option(opts))
}

// Pair renders in and out side by side with an arrow between them.
// A nil out renders as "?".
func Pair(in, out *grid.Grid, opts ...Options) string {
	o := option(opts)
	right := "?"
	if out != nil {
		right = Captioned(out, o)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, Captioned(in, o), styleArrow.Render("→"), right)
}

// Captioned renders g with its dimensions underneath.
func Captioned(g *grid.Grid, opts ...Options) string {
	caption := styleCaption.Render(dims(g))
	return lipgloss.JoinVertical(lipgloss.Left, renderCells(g, nil, option(opts)), caption)
}

func renderCells(g *grid.Grid, marked grid.CoordSet, opts Options) string {
	var b strings.Builder
	for r, row := range g.Rows() {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range row {
			b.WriteString(cell(v, marked.Contains(grid.Coord{Row: r, Col: c}), opts))
		}
	}
	return b.String()
}

func cell(v grid.Color, mismatch bool, opts Options) string {
	text := "  "
	switch {
	case mismatch:
		text = "××"
	case opts.Digits:
		text = " " + string(rune('0'+v))
	}
	style := lipgloss.NewStyle()
	if v.Valid() {
		style = cellStyles[v]
	}
	if mismatch {
		style = style.Bold(true)
	}
	return style.Render(text)
}

func dims(g *grid.Grid) string {
	return fmt.Sprintf("%d×%d", g.Height(), g.Width())
}

func option(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[0]
}
