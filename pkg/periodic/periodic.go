package periodic

import (
	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/grid"
)

// EquivalenceFunc maps a coordinate to its class id.
type EquivalenceFunc func(grid.Coord) int

// FallbackFunc returns the colour for a cell whose class has no observation.
// src is the grid passed to [Infer].
type FallbackFunc func(src *grid.Grid, c grid.Coord) grid.Color

type options struct {
	strict   bool
	fallback FallbackFunc
}

// Option configures [Infer].
type Option func(*options)

// Strict makes conflicting observations within a class fail with an
// AMBIGUOUS_CLASS error instead of keeping the last one.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// WithFallback sets the colour source for unresolved classes.
// Without a fallback they are background.
func WithFallback(f FallbackFunc) Option {
	return func(o *options) { o.fallback = f }
}

// Resolve returns the resolved colour of every observed class of g.
// Conflicts keep the last observation in row-major order, or fail with
// AMBIGUOUS_CLASS when strict is set.
func Resolve(g *grid.Grid, eq EquivalenceFunc, strict bool) (map[int]grid.Color, error) {
	colors := make(map[int]grid.Color)
	for c, v := range g.Cells() {
		if v == grid.Background {
			continue
		}
		class := eq(c)
		if prev, ok := colors[class]; ok && prev != v && strict {
			return nil, arcerrors.New(arcerrors.ErrCodeAmbiguousClass,
				"class %d observed as %d and %d (at %s)", class, prev, v, c)
		}
		colors[class] = v
	}
	return colors, nil
}

// Infer returns a fresh grid where each cell takes the resolved colour of
// its class under eq. g is not modified.
func Infer(g *grid.Grid, eq EquivalenceFunc, opts ...Option) (*grid.Grid, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	colors, err := Resolve(g, eq, o.strict)
	if err != nil {
		return nil, err
	}

	out, err := grid.New(g.Height(), g.Width(), grid.Background)
	if err != nil {
		return nil, err
	}
	for c := range g.Coords() {
		v, ok := colors[eq(c)]
		if !ok {
			if o.fallback == nil {
				continue
			}
			v = o.fallback(g, c)
		}
		if err := out.Set(c, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DiagonalBands groups cells by (row+col) mod k. It panics if k is not
// positive.
func DiagonalBands(k int) EquivalenceFunc {
	mustPositive("DiagonalBands", k)
	return func(c grid.Coord) int { return mod(c.Row+c.Col, k) }
}

// AntiDiagonalBands groups cells by (row-col) mod k, always non-negative.
// It panics if k is not positive.
func AntiDiagonalBands(k int) EquivalenceFunc {
	mustPositive("AntiDiagonalBands", k)
	return func(c grid.Coord) int { return mod(c.Row-c.Col, k) }
}

// Tiling groups cells that coincide when the grid is cut into h×w tiles.
// It panics if either period is not positive.
func Tiling(h, w int) EquivalenceFunc {
	mustPositive("Tiling", h)
	mustPositive("Tiling", w)
	return func(c grid.Coord) int { return mod(c.Row, h)*w + mod(c.Col, w) }
}

func mod(a, k int) int {
	return ((a % k) + k) % k
}

func mustPositive(name string, k int) {
	if k <= 0 {
		panic("periodic: " + name + " period must be positive")
	}
}
