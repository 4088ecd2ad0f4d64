package solutions

import (
	"slices"
	"testing"

	"github.com/matzehuels/arcgrid/pkg/grid"
)

func TestFind(t *testing.T) {
	s := Find("00d62c1b")
	if s == nil {
		t.Fatal("Find(00d62c1b) = nil")
	}
	if s.Solve == nil || s.Description == "" {
		t.Errorf("Find(00d62c1b) = %+v, want solver and description", s)
	}
	if Find("ffffffff") != nil {
		t.Error("Find(unknown) should return nil")
	}
}

func TestIDsSortedAndUnique(t *testing.T) {
	ids := IDs()
	if len(ids) != len(All) {
		t.Fatalf("IDs() = %d entries, want %d", len(ids), len(All))
	}
	if !slices.IsSorted(ids) {
		t.Errorf("IDs() not sorted: %v", ids)
	}
	if len(slices.Compact(slices.Clone(ids))) != len(ids) {
		t.Errorf("IDs() has duplicates: %v", ids)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("05269061"); !ok {
		t.Error("Lookup(05269061) ok = false")
	}
	if solve, ok := Lookup("nope"); ok || solve != nil {
		t.Error("Lookup(nope) should miss")
	}
}

func TestRegister(t *testing.T) {
	saved := slices.Clone(All)
	t.Cleanup(func() { All = saved })

	identity := func(g *grid.Grid) (*grid.Grid, error) { return g.Clone(), nil }
	Register(&Solution{ID: "000aaaaa", Description: "identity", Solve: identity})
	if All[0].ID != "000aaaaa" {
		t.Errorf("All[0].ID = %q, want 000aaaaa", All[0].ID)
	}
	if len(All) != len(saved)+1 {
		t.Errorf("len(All) = %d, want %d", len(All), len(saved)+1)
	}

	Register(&Solution{ID: "00d62c1b", Description: "replaced", Solve: identity})
	if got := Find("00d62c1b").Description; got != "replaced" {
		t.Errorf("Find(00d62c1b).Description = %q, want replaced", got)
	}
	if len(All) != len(saved)+1 {
		t.Errorf("replacing grew All to %d", len(All))
	}
}
