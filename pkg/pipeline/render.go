package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/image/tiff"

	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/render/png"
	"github.com/matzehuels/arcgrid/pkg/render/svg"
	"github.com/matzehuels/arcgrid/pkg/task"
)

// RenderOptions configures artifact generation.
type RenderOptions struct {
	Formats  []string
	CellSize int  // raster pixels per cell; zero uses DefaultCellSize
	Detailed bool // add dimension captions to diagrams
}

// Render generates output artifacts for t in the requested formats.
// When res is non-nil its test predictions are drawn next to the test pairs.
func Render(t *task.Task, res *Result, opts RenderOptions) (map[string][]byte, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}
	cell := opts.CellSize
	if cell == 0 {
		cell = DefaultCellSize
	}
	var preds []*grid.Grid
	if res != nil {
		preds = res.Predictions()
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatDOT:
			data = []byte(svg.ToDOT(t, svg.Options{Predictions: preds, Detailed: opts.Detailed}))
		case FormatSVG:
			data, err = svg.RenderSVG(svg.ToDOT(t, svg.Options{Predictions: preds, Detailed: opts.Detailed}))
		case FormatPNG:
			var buf bytes.Buffer
			err = png.EncodeSheet(&buf, sheetRows(t, preds), cell)
			data = buf.Bytes()
		case FormatTIFF:
			data, err = encodeTIFF(sheetRows(t, preds), cell)
		case FormatJSON:
			data, err = json.MarshalIndent(struct {
				ID string `json:"id"`
				*task.Task
				Result *Result `json:"result,omitempty"`
			}{t.ID, t, res}, "", "  ")
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// sheetRows lays out one row per pair: input, output and, for test pairs,
// the prediction.
func sheetRows(t *task.Task, preds []*grid.Grid) [][]*grid.Grid {
	rows := make([][]*grid.Grid, 0, len(t.Train)+len(t.Test))
	for _, p := range t.Train {
		rows = append(rows, []*grid.Grid{p.Input, p.Output})
	}
	for i, p := range t.Test {
		row := []*grid.Grid{p.Input, p.Output}
		if i < len(preds) && preds[i] != nil {
			row = append(row, preds[i])
		}
		rows = append(rows, row)
	}
	return rows
}

func encodeTIFF(rows [][]*grid.Grid, cell int) ([]byte, error) {
	img, err := png.Sheet(rows, cell)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
