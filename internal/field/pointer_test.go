package field

import (
	"math"
	"testing"
)

func TestMapper_Map(t *testing.T) {
	m := &Mapper{ScaleX: 75, ScaleY: 45}
	if _, ok := m.Map(10, 10); ok {
		t.Fatal("Map with empty viewport: want ok=false")
	}
	m.SetViewport(Viewport{Width: 800, Height: 600})

	tests := []struct {
		name   string
		px, py float64
		want   Pointer
	}{
		{"centre", 400, 300, Pointer{0, 0}},
		{"top-left", 0, 0, Pointer{-75, 45}},
		{"bottom-right", 800, 600, Pointer{75, -45}},
		{"quarter", 600, 150, Pointer{37.5, 22.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Map(tt.px, tt.py)
			if !ok {
				t.Fatal("Map: ok=false")
			}
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("Map(%v, %v) = %+v, want %+v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestMapper_ResizeIsNotCached(t *testing.T) {
	m := &Mapper{ScaleX: 10, ScaleY: 10}
	m.SetViewport(Viewport{Width: 100, Height: 100})
	before, _ := m.Map(100, 50)
	m.SetViewport(Viewport{Width: 200, Height: 100})
	after, _ := m.Map(100, 50)
	if before.X != 10 {
		t.Errorf("before resize X = %v, want 10", before.X)
	}
	if after.X != 0 {
		t.Errorf("after resize X = %v, want 0", after.X)
	}
}

func TestNewMapper_CoversGrid(t *testing.T) {
	grid := GridConfig{Columns: 50, Rows: 30, Spacing: 3}
	m := NewMapper(grid, 1)
	if m.ScaleX != 75 || m.ScaleY != 45 {
		t.Errorf("scale = (%v, %v), want (75, 45)", m.ScaleX, m.ScaleY)
	}
	if m2 := NewMapper(grid, 2); m2.ScaleX != 150 {
		t.Errorf("reach 2 ScaleX = %v, want 150", m2.ScaleX)
	}
	if m0 := NewMapper(grid, 0); m0.ScaleX != 75 {
		t.Errorf("reach 0 ScaleX = %v, want fallback 75", m0.ScaleX)
	}
}

func TestNewLatticeMapper_CellsHitPoints(t *testing.T) {
	grid := GridConfig{Columns: 5, Rows: 3, Spacing: 1}
	m := NewLatticeMapper(grid)
	// One cell per lattice point: the viewport spans columns-1 by rows-1.
	m.SetViewport(Viewport{Width: 4, Height: 2})

	tests := []struct {
		name   string
		px, py float64
		want   Pointer
	}{
		{"top-left", 0, 0, Pointer{-2.5, 0.5}},
		{"bottom-right", 4, 2, Pointer{1.5, -1.5}},
		{"second column middle row", 1, 1, Pointer{-1.5, -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Map(tt.px, tt.py)
			if !ok {
				t.Fatal("Map: ok=false")
			}
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("Map(%v, %v) = %+v, want %+v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestTracker_SentinelUntilObserved(t *testing.T) {
	off := Pointer{X: 1000, Y: 1000}
	m := &Mapper{ScaleX: 10, ScaleY: 10}
	tr := NewTracker(m, off, 0)

	if got := tr.Step(); got != off {
		t.Fatalf("before input = %+v, want sentinel", got)
	}
	tr.Observe(5, 5) // empty viewport
	if tr.Seen() || tr.Current() != off {
		t.Fatal("observation with empty viewport should be ignored")
	}

	m.SetViewport(Viewport{Width: 100, Height: 100})
	tr.Observe(100, 0)
	if got := tr.Step(); got != (Pointer{X: 10, Y: 10}) {
		t.Errorf("after input = %+v, want (10, 10)", got)
	}

	tr.Leave()
	if got := tr.Step(); got != off || tr.Seen() {
		t.Errorf("after Leave = %+v, want sentinel", got)
	}
}

func TestTracker_SmoothingSnapsOnFirstObservation(t *testing.T) {
	off := Pointer{X: 1000, Y: 1000}
	m := &Mapper{ScaleX: 10, ScaleY: 10}
	m.SetViewport(Viewport{Width: 100, Height: 100})
	tr := NewTracker(m, off, 0.5)

	tr.Observe(50, 50)
	if got := tr.Step(); got != (Pointer{}) {
		t.Fatalf("first step = %+v, want snap to (0, 0)", got)
	}

	tr.Observe(100, 50)
	if got := tr.Step(); math.Abs(got.X-5) > eps {
		t.Errorf("second step X = %v, want 5", got.X)
	}
	if got := tr.Current(); math.Abs(got.X-5) > eps {
		t.Errorf("Current X = %v, want 5 (no extra step)", got.X)
	}
	if got := tr.Raw(); got.X != 10 {
		t.Errorf("Raw X = %v, want 10", got.X)
	}
}
