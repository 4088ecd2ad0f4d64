package replicate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/objects"
)

func TestReplicateSingleCellRight(t *testing.T) {
	g := grid.MustParse("30400")
	obj := objects.Extract(g)[0]

	got, err := Replicate(g, obj)
	if err != nil {
		t.Fatalf("Replicate() error: %v", err)
	}
	if want := grid.MustParse("30404"); !got.Equal(want) {
		t.Errorf("Replicate() = %v, want %v", got, want)
	}
}

func TestReplicateLargest(t *testing.T) {
	g := grid.MustParse(`
		000000000
		000100000
		000000000
		000550200
		000550000
		000000000
		000000000
		000000000
		000000000`)
	want := grid.MustParse(`
		000110000
		000110000
		000000000
		000550220
		000550220
		000000000
		000000000
		000000000
		000000000`)

	got, err := ReplicateLargest(g)
	if err != nil {
		t.Fatalf("ReplicateLargest() error: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("ReplicateLargest() =\n%v\nwant\n%v", got, want)
	}
}

func TestReplicateRepeatsUntilOffGrid(t *testing.T) {
	g := grid.MustParse(`
		1000000
		0000000
		0000000
		0000000
		0000000
		0000000
		0000006`)
	// The diagonal seed sits on the third echo, so the first echo finds
	// nothing and the whole direction is painted background.
	got, err := ReplicateLargest(g)
	if err != nil {
		t.Fatalf("ReplicateLargest() error: %v", err)
	}
	if v, _ := got.At(grid.Coord{Row: 6, Col: 6}); v != grid.Background {
		t.Errorf("At(6,6) = %d, want background", v)
	}

	g = grid.MustParse(`
		1000000
		0000000
		0070000
		0000000
		0000000
		0000000
		0000000`)
	got, err = ReplicateLargest(g)
	if err != nil {
		t.Fatalf("ReplicateLargest() error: %v", err)
	}
	for _, c := range []grid.Coord{{Row: 2, Col: 2}, {Row: 4, Col: 4}, {Row: 6, Col: 6}} {
		if v, _ := got.At(c); v != 7 {
			t.Errorf("At(%v) = %d, want 7", c, v)
		}
	}
}

func TestPlanSpacing(t *testing.T) {
	g, _ := grid.New(13, 14, grid.Background)
	for _, c := range []grid.Coord{{Row: 6, Col: 6}, {Row: 6, Col: 7}, {Row: 6, Col: 8}, {Row: 7, Col: 6}} {
		_ = g.Set(c, 3)
	}
	obj, err := objects.Largest(g)
	if err != nil {
		t.Fatalf("Largest() error: %v", err)
	}
	b := obj.Bounds()
	h, w := b.Height(), b.Width()

	origin := obj.Set().Sorted()[0]
	last := make(map[grid.Coord]grid.Coord)
	for _, e := range Plan(g, obj) {
		if e.Color != grid.Background {
			t.Errorf("echo %v/%d colour = %d, want background", e.Direction, e.N, e.Color)
		}
		// Compare anchor positions of whole echoes only.
		if len(e.Cells) != obj.Size() {
			continue
		}
		anchor := e.Cells[0]
		prev, ok := last[e.Direction]
		if !ok {
			prev = origin
		}
		if dr := anchor.Row - prev.Row; dr != e.Direction.Row*(h+1) {
			t.Errorf("echo %v/%d row step = %d, want %d", e.Direction, e.N, dr, e.Direction.Row*(h+1))
		}
		if dc := anchor.Col - prev.Col; dc != e.Direction.Col*(w+1) {
			t.Errorf("echo %v/%d col step = %d, want %d", e.Direction, e.N, dc, e.Direction.Col*(w+1))
		}
		last[e.Direction] = anchor
	}
	if len(last) != len(Directions) {
		t.Errorf("full echoes in %d directions, want %d", len(last), len(Directions))
	}
}

func TestPlanCounts(t *testing.T) {
	g := grid.MustParse(`
		00000
		00000
		00100
		00000
		00000`)
	obj := objects.Extract(g)[0]

	counts := make(map[grid.Coord]int)
	for _, e := range Plan(g, obj) {
		counts[e.Direction]++
	}
	want := map[grid.Coord]int{}
	for _, d := range Directions {
		want[d] = 1
	}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("echoes per direction mismatch (-want +got):\n%s", diff)
	}
}

func TestReplicatePreservesObjectAndInput(t *testing.T) {
	g := grid.MustParse(`
		0000000
		0220000
		0200500
		0000000`)
	before := g.Clone()

	got, err := ReplicateLargest(g)
	if err != nil {
		t.Fatalf("ReplicateLargest() error: %v", err)
	}
	for _, c := range []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}} {
		if v, _ := got.At(c); v != 2 {
			t.Errorf("object cell %v = %d, want 2", c, v)
		}
	}
	if !g.Equal(before) {
		t.Error("ReplicateLargest() modified its input")
	}
}

func TestReplicateNoObjects(t *testing.T) {
	g, _ := grid.New(3, 3, grid.Background)
	if _, err := ReplicateLargest(g); !arcerrors.Is(err, arcerrors.ErrCodeNoObjectsFound) {
		t.Errorf("ReplicateLargest() error = %v, want %s", err, arcerrors.ErrCodeNoObjectsFound)
	}
}

func TestReplicateEmptyObject(t *testing.T) {
	g, _ := grid.New(3, 3, grid.Background)
	if echoes := Plan(g, objects.Object{}); len(echoes) != 0 {
		t.Errorf("Plan() = %d echoes, want none", len(echoes))
	}
	if _, err := Replicate(g, objects.Object{}); !arcerrors.Is(err, arcerrors.ErrCodeNoObjectsFound) {
		t.Errorf("Replicate() error = %v, want %s", err, arcerrors.ErrCodeNoObjectsFound)
	}
}
