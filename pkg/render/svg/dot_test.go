package svg

import (
	"strings"
	"testing"

	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/task"
)

func sampleTask() *task.Task {
	return &task.Task{
		ID: "sample",
		Train: []task.Pair{{
			Input:  grid.MustParse("01\n10"),
			Output: grid.MustParse("10\n01"),
		}},
		Test: []task.Pair{{Input: grid.MustParse("11\n00")}},
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sampleTask(), Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"train0_in" -> "train0_out"`) {
		t.Error("ToDOT() output missing train edge")
	}
	if !strings.Contains(dot, `"test0_out" [label="?"`) {
		t.Error("ToDOT() output should mark the unknown test output")
	}
	if !strings.Contains(dot, `label="sample"`) {
		t.Error("ToDOT() output missing task label")
	}
}

func TestToDOT_CellColours(t *testing.T) {
	dot := ToDOT(sampleTask(), Options{CellSize: 20})

	// 3 grids of 4 cells: 6 background and 6 blue
	if got := strings.Count(dot, `BGCOLOR="#0074D9"`); got != 6 {
		t.Errorf("blue cells = %d, want 6", got)
	}
	if got := strings.Count(dot, `BGCOLOR="#000000"`); got != 6 {
		t.Errorf("background cells = %d, want 6", got)
	}
	if !strings.Contains(dot, `WIDTH="20" HEIGHT="20"`) {
		t.Error("ToDOT() ignored CellSize")
	}
}

func TestToDOT_Predictions(t *testing.T) {
	pred := grid.MustParse("00\n11")
	dot := ToDOT(sampleTask(), Options{Predictions: []*grid.Grid{pred}, Detailed: true})

	if !strings.Contains(dot, `"test0_in" -> "test0_pred" [style=dashed`) {
		t.Error("ToDOT() output missing prediction edge")
	}
	if !strings.Contains(dot, ">2x2</TD>") {
		t.Error("ToDOT() detailed output missing dimensions caption")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(sampleTask(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(`not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
