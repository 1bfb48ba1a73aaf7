// Package field computes per-frame depth offsets for a lattice of dots
// displaced by a travelling ripple and a pointer-proximity bump.
package field

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
)

// Position is a point handed to a renderer: lattice coordinates plus
// the depth computed for the current frame.
type Position struct {
	X, Y, Z float64
}

// Field owns an immutable lattice and the displacement constants.
type Field struct {
	grid   GridConfig
	params Params
	points []Point
	out    []Position

	offscreen Pointer
}

// New builds the lattice described by grid. Phases are drawn from rng; a
// nil rng yields zero phases.
func New(grid GridConfig, params Params, rng *rand.Rand) (*Field, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	points := buildPoints(grid, rng)
	f := &Field{
		grid:   grid,
		params: params,
		points: points,
		out:    make([]Position, len(points)),
	}
	for i, p := range points {
		f.out[i] = Position{X: p.BaseX, Y: p.BaseY}
	}
	f.offscreen = offscreenFor(grid, params)
	return f, nil
}

// offscreenFor places the sentinel diagonally past the lattice corner,
// further than Radius from every point.
func offscreenFor(grid GridConfig, params Params) Pointer {
	minX, maxX, minY, maxY := grid.Bounds()
	reach := math.Max(math.Max(-minX, maxX), math.Max(-minY, maxY))
	off := 2*(reach+params.Radius) + grid.Spacing + 1
	return Pointer{X: off, Y: off}
}

// Grid returns the lattice configuration the field was built from.
func (f *Field) Grid() GridConfig { return f.grid }

// Params returns the displacement constants.
func (f *Field) Params() Params { return f.params }

// Points returns a copy of the lattice. The field's own points never
// change after New.
func (f *Field) Points() []Point {
	return append([]Point(nil), f.points...)
}

// Len is the number of points, Columns*Rows.
func (f *Field) Len() int { return len(f.points) }

// Offscreen returns the sentinel pointer, farther than Radius from every
// point.
func (f *Field) Offscreen() Pointer { return f.offscreen }

// Bounds returns the lattice extrema.
func (f *Field) Bounds() (minX, maxX, minY, maxY float64) {
	return f.grid.Bounds()
}

// Advance evaluates every point at time t (seconds since start) against
// ptr. The returned slice is reused by the next call.
func (f *Field) Advance(t float64, ptr Pointer) []Position {
	f.advanceSpan(0, len(f.points), t, ptr)
	return f.out
}

// AdvanceParallel is Advance split into contiguous spans, one goroutine
// per span. Points do not interact, so the result matches Advance.
func (f *Field) AdvanceParallel(t float64, ptr Pointer, workers int) []Position {
	n := len(f.points)
	if workers <= 1 || n < 2*workers {
		return f.Advance(t, ptr)
	}
	per := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * per
		if start >= n {
			break
		}
		end := start + per
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f.advanceSpan(s, e, t, ptr)
		}(start, end)
	}
	wg.Wait()
	return f.out
}

func (f *Field) advanceSpan(start, end int, t float64, ptr Pointer) {
	params := f.params
	for i := start; i < end; i++ {
		p := f.points[i]
		f.out[i] = Position{X: p.BaseX, Y: p.BaseY, Z: params.Depth(p, t, ptr)}
	}
}

// SetDepths copies externally computed depths (e.g. from a GPU backend)
// into the output buffer and returns it.
func (f *Field) SetDepths(depths []float32) ([]Position, error) {
	if len(depths) != len(f.points) {
		return nil, fmt.Errorf("depth count %d does not match %d points", len(depths), len(f.points))
	}
	for i, p := range f.points {
		f.out[i] = Position{X: p.BaseX, Y: p.BaseY, Z: float64(depths[i])}
	}
	return f.out, nil
}
