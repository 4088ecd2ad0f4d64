// Package solutions holds the hand-written transformation for each solved
// task.
//
// Every [Solution] is a pure function from an input grid to an output grid,
// composed from the grid primitives plus task-specific constants. Solutions
// share no state, so they can run concurrently on different grids.
//
// Usage:
//
//	import "github.com/matzehuels/arcgrid/pkg/solutions"
//
//	if solve, ok := solutions.Lookup("00d62c1b"); ok {
//	    out, err := solve(input)
//	}
package solutions

import (
	"slices"
	"strings"

	"github.com/matzehuels/arcgrid/pkg/grid"
)

// Solver maps a task input grid to its predicted output grid.
// Solvers must not modify their input.
type Solver func(*grid.Grid) (*grid.Grid, error)

// Solution binds a task ID to its solver.
type Solution struct {
	ID          string // task file basename without extension
	Description string // one-line summary of the rule
	Solve       Solver
}

// All is the canonical list of solved tasks, ordered by ID.
var All = []*Solution{
	{ID: "007bbfb7", Description: "tile the input into itself wherever it is coloured", Solve: SelfTile},
	{ID: "00d62c1b", Description: "fill enclosed background with yellow", Solve: FillHoles},
	{ID: "025d127b", Description: "shift shapes right, keeping their bottom-right corners", Solve: ShiftRight},
	{ID: "045e512c", Description: "echo the largest object towards its coloured neighbours", Solve: EchoLargest},
	{ID: "0520fde7", Description: "mark cells set in both halves", Solve: OverlayHalves},
	{ID: "05269061", Description: "complete the diagonal three-colour banding", Solve: DiagonalBanding},
}

// Find returns the Solution for id, or nil if the task is unsolved.
func Find(id string) *Solution {
	for _, s := range All {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Lookup returns the solver for id.
func Lookup(id string) (Solver, bool) {
	if s := Find(id); s != nil {
		return s.Solve, true
	}
	return nil, false
}

// Register adds s to [All], replacing any solution with the same ID, and
// keeps [All] ordered by ID. It is not safe for concurrent use and is
// intended for init-time registration.
func Register(s *Solution) {
	if i := slices.IndexFunc(All, func(x *Solution) bool { return x.ID == s.ID }); i >= 0 {
		All[i] = s
		return
	}
	All = append(All, s)
	slices.SortFunc(All, func(a, b *Solution) int { return strings.Compare(a.ID, b.ID) })
}

// IDs returns the IDs of all solved tasks in [All] order.
func IDs() []string {
	ids := make([]string, len(All))
	for i, s := range All {
		ids[i] = s.ID
	}
	return ids
}
