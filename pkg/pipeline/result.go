package pipeline

import (
	"time"

	"github.com/matzehuels/arcgrid/pkg/grid"
)

// PairResult is the outcome of solving one pair.
type PairResult struct {
	Index     int        `json:"index"`
	Predicted *grid.Grid `json:"predicted,omitempty"`
	Expected  *grid.Grid `json:"expected,omitempty"`
	Correct   bool       `json:"correct"`
	Err       string     `json:"error,omitempty"` // solver failure, if any
}

// Known reports whether the pair has an expected output to compare against.
func (p PairResult) Known() bool { return p.Expected != nil }

// Result is the outcome of evaluating one task.
type Result struct {
	TaskID   string       `json:"task_id"`
	TaskHash string       `json:"task_hash"`
	Train    []PairResult `json:"train"`
	Test     []PairResult `json:"test"`

	// Correct is true when every pair with a known output was predicted
	// exactly.
	Correct bool `json:"correct"`

	Duration time.Duration `json:"duration"`
	CacheHit bool          `json:"-"`
}

// Predictions returns the predicted test outputs by index. Failed pairs
// yield nil entries.
func (r *Result) Predictions() []*grid.Grid {
	out := make([]*grid.Grid, len(r.Test))
	for i, p := range r.Test {
		out[i] = p.Predicted
	}
	return out
}

// Counts returns how many pairs with known outputs were correct, and how
// many such pairs there are.
func (r *Result) Counts() (correct, known int) {
	for _, set := range [][]PairResult{r.Train, r.Test} {
		for _, p := range set {
			if !p.Known() {
				continue
			}
			known++
			if p.Correct {
				correct++
			}
		}
	}
	return correct, known
}

// Failure records a task that could not be evaluated.
type Failure struct {
	TaskID string `json:"task_id"`
	Err    string `json:"error"`
}

// Report summarises a batch evaluation.
type Report struct {
	RunID    string        `json:"run_id"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`

	// Results holds evaluated tasks in task ID order.
	Results []*Result `json:"results"`

	// Missing lists tasks without a registered solution.
	Missing []string `json:"missing,omitzero"`

	// Failed lists tasks that could not be loaded or evaluated.
	Failed []Failure `json:"failed,omitzero"`
}

// Solved returns the number of fully correct results.
func (r *Report) Solved() int {
	n := 0
	for _, res := range r.Results {
		if res.Correct {
			n++
		}
	}
	return n
}

// CacheHits returns the number of results served from cache.
func (r *Report) CacheHits() int {
	n := 0
	for _, res := range r.Results {
		if res.CacheHit {
			n++
		}
	}
	return n
}
