package field

import "github.com/charmbracelet/harmonica"

// Follower eases a value toward a target once per frame.
type Follower interface {
	Follow(target float64) float64
	Reset(v float64)
	Value() float64
}

// Smoother is a first-order low-pass filter:
// state += (target - state) * Factor.
type Smoother struct {
	Factor float64
	state  float64
}

// NewSmoother clamps factor into (0, 1]; out-of-range values fall back
// to 1, which tracks the target exactly.
func NewSmoother(factor float64) *Smoother {
	if !(factor > 0) || factor > 1 {
		factor = 1
	}
	return &Smoother{Factor: factor}
}

func (s *Smoother) Follow(target float64) float64 {
	s.state += (target - s.state) * s.Factor
	return s.state
}

func (s *Smoother) Reset(v float64) { s.state = v }

func (s *Smoother) Value() float64 { return s.state }

// SpringFollower eases toward the target with a damped spring instead
// of a fixed fraction per frame.
type SpringFollower struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSpringFollower builds a spring stepped at fps frames per second.
func NewSpringFollower(fps int, frequency, damping float64) *SpringFollower {
	if fps <= 0 {
		fps = 60
	}
	return &SpringFollower{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (s *SpringFollower) Follow(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

func (s *SpringFollower) Reset(v float64) {
	s.pos = v
	s.vel = 0
}

func (s *SpringFollower) Value() float64 { return s.pos }

// Smoother2 follows an (x, y) target with one Follower per axis.
type Smoother2 struct {
	X, Y Follower
}

// NewSmoother2 pairs two low-pass smoothers with the same factor.
func NewSmoother2(factor float64) Smoother2 {
	return Smoother2{X: NewSmoother(factor), Y: NewSmoother(factor)}
}

// Follow steps both axes and returns the new state.
func (s *Smoother2) Follow(x, y float64) (float64, float64) {
	if s.X == nil || s.Y == nil {
		return x, y
	}
	return s.X.Follow(x), s.Y.Follow(y)
}

// Reset primes both axes.
func (s *Smoother2) Reset(x, y float64) {
	if s.X == nil || s.Y == nil {
		return
	}
	s.X.Reset(x)
	s.Y.Reset(y)
}

// Value returns the current state without stepping.
func (s *Smoother2) Value() (float64, float64) {
	if s.X == nil || s.Y == nil {
		return 0, 0
	}
	return s.X.Value(), s.Y.Value()
}
