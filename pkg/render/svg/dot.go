package svg

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/render"
	"github.com/matzehuels/arcgrid/pkg/task"
)

// DefaultCellSize is the edge length of one grid cell in points.
const DefaultCellSize = 12

// Options configures diagram generation.
type Options struct {
	// CellSize is the cell edge length in points. Zero uses DefaultCellSize.
	CellSize int

	// Predictions holds solver output per test pair, by index.
	// Nil entries and missing indices are skipped.
	Predictions []*grid.Grid

	// Detailed adds a caption with the grid dimensions under each grid.
	Detailed bool
}

func (o Options) cellSize() int {
	if o.CellSize <= 0 {
		return DefaultCellSize
	}
	return o.CellSize
}

// ToDOT converts a task to Graphviz DOT format.
// The result can be rendered with [RenderSVG].
func ToDOT(t *task.Task, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("  edge [color=\"#888888\", fontname=\"Helvetica\", fontsize=9];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	if t.ID != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", t.ID)
	}
	buf.WriteString("\n")

	for i, p := range t.Train {
		writePair(&buf, fmt.Sprintf("train%d", i), p, nil, opts)
	}
	for i, p := range t.Test {
		var pred *grid.Grid
		if i < len(opts.Predictions) {
			pred = opts.Predictions[i]
		}
		writePair(&buf, fmt.Sprintf("test%d", i), p, pred, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writePair(buf *bytes.Buffer, prefix string, p task.Pair, pred *grid.Grid, opts Options) {
	in, out := prefix+"_in", prefix+"_out"
	fmt.Fprintf(buf, "  %q [label=<%s>];\n", in, gridTable(p.Input, opts))
	if p.Output != nil {
		fmt.Fprintf(buf, "  %q [label=<%s>];\n", out, gridTable(p.Output, opts))
	} else {
		fmt.Fprintf(buf, "  %q [label=\"?\", fontsize=24];\n", out)
	}
	fmt.Fprintf(buf, "  %q -> %q;\n", in, out)

	if pred != nil {
		id := prefix + "_pred"
		fmt.Fprintf(buf, "  %q [label=<%s>];\n", id, gridTable(pred, opts))
		fmt.Fprintf(buf, "  %q -> %q [style=dashed, label=\"predicted\"];\n", in, id)
	}
	buf.WriteString("\n")
}

// gridTable builds an HTML-like label with one fixed-size cell per grid cell.
func gridTable(g *grid.Grid, opts Options) string {
	size := opts.cellSize()
	var b strings.Builder
	b.WriteString(`<TABLE BORDER="0" CELLBORDER="0" CELLSPACING="1" CELLPADDING="0" BGCOLOR="#555555">`)
	for _, row := range g.Rows() {
		b.WriteString("<TR>")
		for _, c := range row {
			fmt.Fprintf(&b, `<TD BGCOLOR="%s" WIDTH="%d" HEIGHT="%d" FIXEDSIZE="TRUE"></TD>`, render.Hex(c), size, size)
		}
		b.WriteString("</TR>")
	}
	if opts.Detailed {
		fmt.Fprintf(&b, `<TR><TD COLSPAN="%d" BGCOLOR="white">%dx%d</TD></TR>`, g.Width(), g.Height(), g.Width())
	}
	b.WriteString("</TABLE>")
	return b.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element to a zero-origin viewBox with
// matching width and height, so the SVG scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
