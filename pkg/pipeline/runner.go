package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/arcgrid/pkg/buildinfo"
	"github.com/matzehuels/arcgrid/pkg/cache"
	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/observability"
	"github.com/matzehuels/arcgrid/pkg/solutions"
	"github.com/matzehuels/arcgrid/pkg/task"
)

// Runner encapsulates evaluation with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cached results. Zero means no expiry.
	TTL time.Duration

	// Refresh skips cache reads; fresh results are still written.
	Refresh bool

	// Progress, when set, is called by EvaluateAll after each task finishes.
	// Calls come from worker goroutines.
	Progress func(done, total int)
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Evaluate runs the task's solver on every pair and compares predictions
// with expected outputs. A task without a registered solver fails with
// SOLUTION_MISSING. Solver errors are recorded on the pair, not returned.
func (r *Runner) Evaluate(ctx context.Context, t *task.Task) (*Result, error) {
	solve, ok := solutions.Lookup(t.ID)
	if !ok {
		return nil, arcerrors.New(arcerrors.ErrCodeSolutionMissing, "no solution for task %s", t.ID)
	}

	data, err := json.Marshal(t)
	if err != nil {
		return nil, arcerrors.Wrap(arcerrors.ErrCodeInternal, err, "hash task %s", t.ID)
	}
	taskHash := cache.Hash(data)
	key := r.Keyer.ResultKey(t.ID, taskHash, buildinfo.Version)

	if !r.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var res Result
			if err := json.Unmarshal(cached, &res); err == nil {
				res.CacheHit = true
				observability.Cache().OnCacheHit(ctx, "result")
				r.Logger.Debug("cache hit", "task", t.ID)
				return &res, nil
			}
			// If deserialization fails, fall through to recompute
		} else if err != nil {
			r.Logger.Warn("cache read failed", "task", t.ID, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	observability.Pipeline().OnEvaluateStart(ctx, t.ID)
	start := time.Now()
	res := &Result{
		TaskID:   t.ID,
		TaskHash: taskHash,
		Train:    solvePairs(solve, t.Train),
		Test:     solvePairs(solve, t.Test),
	}
	res.Duration = time.Since(start)
	correct, known := res.Counts()
	res.Correct = correct == known
	observability.Pipeline().OnEvaluateComplete(ctx, t.ID, correct, known, res.Duration, nil)

	r.Logger.Info("evaluated task",
		"task", t.ID,
		"correct", fmt.Sprintf("%d/%d", correct, known),
		"duration", res.Duration)

	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "task", t.ID, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "result", len(data))
		}
	}
	return res, nil
}

func solvePairs(solve solutions.Solver, pairs []task.Pair) []PairResult {
	out := make([]PairResult, len(pairs))
	for i, p := range pairs {
		pr := PairResult{Index: i, Expected: p.Output}
		pred, err := safeSolve(solve, p.Input)
		if err != nil {
			pr.Err = err.Error()
		} else {
			pr.Predicted = pred
			pr.Correct = p.Output != nil && pred.Equal(p.Output)
		}
		out[i] = pr
	}
	return out
}

// safeSolve runs solve, converting a panic into an INTERNAL_ERROR so one bad
// solver cannot abort a batch.
func safeSolve(solve solutions.Solver, in *grid.Grid) (out *grid.Grid, err error) {
	defer func() {
		if p := recover(); p != nil {
			out, err = nil, arcerrors.New(arcerrors.ErrCodeInternal, "solver panicked: %v", p)
		}
	}()
	out, err = solve(in)
	if err == nil && out == nil {
		err = arcerrors.New(arcerrors.ErrCodeInternal, "solver returned no grid")
	}
	return out, err
}

// EvaluateAll loads and evaluates the given task IDs from dir, or every
// task in dir when ids is empty, with at most workers evaluations in
// flight. Tasks without a solution are listed in Report.Missing, and tasks
// that fail to load in Report.Failed; neither stops the batch. Only context
// cancellation or an unreadable directory return an error.
func (r *Runner) EvaluateAll(ctx context.Context, dir string, ids []string, workers int) (*Report, error) {
	if len(ids) == 0 {
		listed, err := task.List(dir)
		if err != nil {
			return nil, err
		}
		ids = listed
	}
	if workers < 1 {
		workers = DefaultWorkers
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
	}
	logger := r.Logger.With("run", report.RunID[:8])
	logger.Info("evaluating tasks", "count", len(ids), "workers", workers)
	observability.Pipeline().OnBatchStart(ctx, report.RunID, len(ids))

	type outcome struct {
		res     *Result
		missing bool
		err     error
	}
	outcomes := make([]outcome, len(ids))
	var finished atomic.Int64
	tick := func() {
		if n := finished.Add(1); r.Progress != nil {
			r.Progress(int(n), len(ids))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer tick()
			t, err := task.LoadID(dir, id)
			if err != nil {
				logger.Warn("skipping task", "task", id, "err", err)
				outcomes[i] = outcome{err: err}
				return nil
			}
			res, err := r.Evaluate(gctx, t)
			switch {
			case arcerrors.Is(err, arcerrors.ErrCodeSolutionMissing):
				outcomes[i] = outcome{missing: true}
			case err != nil:
				outcomes[i] = outcome{err: err}
			default:
				outcomes[i] = outcome{res: res}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, o := range outcomes {
		switch {
		case o.res != nil:
			report.Results = append(report.Results, o.res)
		case o.missing:
			report.Missing = append(report.Missing, ids[i])
		case o.err != nil:
			report.Failed = append(report.Failed, Failure{TaskID: ids[i], Err: o.err.Error()})
		}
	}
	report.Duration = time.Since(report.Started)
	observability.Pipeline().OnBatchComplete(ctx, report.RunID, report.Solved(), len(report.Results), report.Duration)

	logger.Info("evaluation complete",
		"solved", report.Solved(),
		"evaluated", len(report.Results),
		"missing", len(report.Missing),
		"failed", len(report.Failed),
		"cached", report.CacheHits(),
		"duration", report.Duration)
	return report, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
