package field

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func newTestField(t *testing.T, grid GridConfig, params Params) *Field {
	t.Helper()
	f, err := New(grid, params, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	if _, err := New(GridConfig{Columns: 0, Rows: 1, Spacing: 1}, braille(), nil); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("New() error = %v, want ErrInvalidGrid", err)
	}
	if _, err := New(GridConfig{Columns: 1, Rows: 1, Spacing: 1}, Params{Radius: -2}, nil); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("New() error = %v, want ErrInvalidParams", err)
	}
}

func TestField_PointsIsACopy(t *testing.T) {
	f := newTestField(t, GridConfig{Columns: 2, Rows: 2, Spacing: 1}, braille())
	pts := f.Points()
	pts[0].BaseX = 99
	if got := f.Points()[0].BaseX; got == 99 {
		t.Fatal("writing to Points() changed the lattice")
	}
	if out := f.Advance(0, f.Offscreen()); out[0].X == 99 {
		t.Error("Advance reported a modified base position")
	}
}

func TestField_OffscreenLeavesRippleOnly(t *testing.T) {
	params := braille()
	params.PhaseJitter = 0.5
	f := newTestField(t, GridConfig{Columns: 50, Rows: 30, Spacing: 3}, params)
	off := f.Offscreen()

	for _, p := range f.Points() {
		if d := math.Hypot(p.BaseX-off.X, p.BaseY-off.Y); d <= params.Radius {
			t.Fatalf("sentinel within radius of (%v, %v): d=%v", p.BaseX, p.BaseY, d)
		}
	}
	for _, ts := range []float64{0, 0.5, 3, 42} {
		out := f.Advance(ts, off)
		for i, p := range f.Points() {
			if want := params.Ripple(p, ts); out[i].Z != want {
				t.Fatalf("t=%v point %d: Z = %v, want ripple %v", ts, i, out[i].Z, want)
			}
		}
	}
}

func TestField_AdvanceScenario(t *testing.T) {
	params := Params{Kx: 1, Ky: 1, Wx: 1, Wy: 1, Amplitude: 0, Radius: 2, RiseRate: 1}
	// 3 columns at spacing 1 sit at -1.5, -0.5, 0.5; shift the pointer so
	// it sits on the middle dot.
	f := newTestField(t, GridConfig{Columns: 3, Rows: 3, Spacing: 1}, params)
	ptr := Pointer{X: -0.5, Y: -0.5}
	out := f.Advance(0, ptr)
	if len(out) != 9 {
		t.Fatalf("len(out) = %d, want 9", len(out))
	}
	for _, pos := range out {
		d := math.Hypot(pos.X-ptr.X, pos.Y-ptr.Y)
		want := 0.0
		if d < 2 {
			want = 2 - d
		}
		if math.Abs(pos.Z-want) > eps {
			t.Errorf("(%v, %v): Z = %v, want %v", pos.X, pos.Y, pos.Z, want)
		}
	}
}

func TestField_AdvanceHasNoMemory(t *testing.T) {
	f := newTestField(t, GridConfig{Columns: 8, Rows: 5, Spacing: 2}, braille())
	a := append([]Position(nil), f.Advance(1.5, Pointer{X: 2, Y: 1})...)
	f.Advance(7, Pointer{X: -4, Y: 3})
	f.Advance(0.1, f.Offscreen())
	b := f.Advance(1.5, Pointer{X: 2, Y: 1})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d: %+v != %+v after other frames", i, a[i], b[i])
		}
	}
}

func TestField_AdvanceParallelMatches(t *testing.T) {
	params := braille()
	params.PhaseJitter = 0.25
	seq := newTestField(t, GridConfig{Columns: 37, Rows: 23, Spacing: 2.5}, params)
	par := newTestField(t, GridConfig{Columns: 37, Rows: 23, Spacing: 2.5}, params)
	ptr := Pointer{X: 3, Y: -7}

	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		want := seq.Advance(2.75, ptr)
		got := par.AdvanceParallel(2.75, ptr, workers)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("workers=%d point %d: %+v != %+v", workers, i, got[i], want[i])
			}
		}
	}
}

func TestField_SetDepths(t *testing.T) {
	f := newTestField(t, GridConfig{Columns: 2, Rows: 2, Spacing: 1}, braille())
	if _, err := f.SetDepths([]float32{1}); err == nil {
		t.Fatal("SetDepths with short slice: want error")
	}
	out, err := f.SetDepths([]float32{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("SetDepths() error = %v", err)
	}
	for i, pos := range out {
		if pos.Z != float64(i+1) {
			t.Errorf("point %d Z = %v, want %v", i, pos.Z, i+1)
		}
		if pos.X != f.Points()[i].BaseX || pos.Y != f.Points()[i].BaseY {
			t.Errorf("point %d moved off the lattice", i)
		}
	}
}
