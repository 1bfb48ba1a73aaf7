package field

import (
	"math"
	"testing"
)

func TestSmoother_Step(t *testing.T) {
	s := NewSmoother(0.05)
	if got := s.Follow(10); math.Abs(got-0.5) > eps {
		t.Errorf("first step = %v, want 0.5", got)
	}
	if got := s.Follow(10); math.Abs(got-0.975) > eps {
		t.Errorf("second step = %v, want 0.975", got)
	}
}

func TestSmoother_ConvergesMonotonically(t *testing.T) {
	s := NewSmoother(0.1)
	s.Reset(-3)
	prev := s.Value()
	for i := 0; i < 500; i++ {
		v := s.Follow(4)
		if v < prev || v > 4 {
			t.Fatalf("step %d: %v not in [%v, 4]", i, v, prev)
		}
		prev = v
	}
	if math.Abs(prev-4) > 1e-6 {
		t.Errorf("after 500 steps = %v, want ~4", prev)
	}
}

func TestNewSmoother_ClampsFactor(t *testing.T) {
	for _, f := range []float64{0, -1, 2, math.NaN()} {
		s := NewSmoother(f)
		if s.Factor != 1 {
			t.Errorf("NewSmoother(%v).Factor = %v, want 1", f, s.Factor)
		}
		if got := s.Follow(7); got != 7 {
			t.Errorf("factor 1 Follow = %v, want 7", got)
		}
	}
}

func TestSpringFollower_Settles(t *testing.T) {
	s := NewSpringFollower(60, 4, 1)
	s.Reset(0)
	for i := 0; i < 600; i++ {
		s.Follow(10)
	}
	if math.Abs(s.Value()-10) > 1e-3 {
		t.Errorf("spring settled at %v, want ~10", s.Value())
	}
	s.Reset(2)
	if s.Value() != 2 {
		t.Errorf("Reset value = %v, want 2", s.Value())
	}
}

func TestSmoother2_ZeroValue(t *testing.T) {
	var s Smoother2
	x, y := s.Follow(3, 4)
	if x != 3 || y != 4 {
		t.Errorf("zero Smoother2 Follow = (%v, %v), want passthrough", x, y)
	}
}
