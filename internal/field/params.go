package field

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams reports a displacement preset that cannot be evaluated.
var ErrInvalidParams = errors.New("invalid displacement params")

// Params holds the constants of the displacement function. Different
// presets are different Params values; nothing here is derived.
type Params struct {
	Kx float64 `yaml:"kx"` // spatial frequency along x
	Ky float64 `yaml:"ky"` // spatial frequency along y
	Wx float64 `yaml:"wx"` // angular speed of the x term
	Wy float64 `yaml:"wy"` // angular speed of the y term

	Amplitude float64 `yaml:"amplitude"`
	Radius    float64 `yaml:"radius"`
	RiseRate  float64 `yaml:"rise_rate"`

	// PhaseJitter scales each point's random phase into the ripple. Zero
	// keeps every point in lockstep.
	PhaseJitter float64 `yaml:"phase_jitter"`
}

// Validate rejects non-finite constants and a negative interaction radius.
func (p Params) Validate() error {
	values := []struct {
		name string
		v    float64
	}{
		{"kx", p.Kx}, {"ky", p.Ky}, {"wx", p.Wx}, {"wy", p.Wy},
		{"amplitude", p.Amplitude}, {"radius", p.Radius},
		{"rise_rate", p.RiseRate}, {"phase_jitter", p.PhaseJitter},
	}
	for _, c := range values {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, c.name)
		}
	}
	if p.Radius < 0 {
		return fmt.Errorf("%w: radius must be >= 0, got %v", ErrInvalidParams, p.Radius)
	}
	return nil
}

// Ripple is the smooth travelling oscillation applied to every point.
// It depends only on position, phase and time, and stays within
// [-|Amplitude|, |Amplitude|].
func (p Params) Ripple(pt Point, t float64) float64 {
	return math.Sin(pt.BaseX*p.Kx+t*p.Wx+pt.Phase*p.PhaseJitter) *
		math.Cos(pt.BaseY*p.Ky+t*p.Wy) * p.Amplitude
}

// Proximity is the pin rise under the pointer: RiseRate*Radius at the
// pointer, falling linearly to zero at Radius and staying zero beyond.
func (p Params) Proximity(pt Point, ptr Pointer) float64 {
	d := math.Hypot(pt.BaseX-ptr.X, pt.BaseY-ptr.Y)
	if d < p.Radius {
		return (p.Radius - d) * p.RiseRate
	}
	return 0
}

// Depth is the axis-aligned displacement of pt for one frame.
func (p Params) Depth(pt Point, t float64, ptr Pointer) float64 {
	return p.Ripple(pt, t) + p.Proximity(pt, ptr)
}

// MaxDepth is the largest displacement the two terms can add up to.
func (p Params) MaxDepth() float64 {
	return math.Abs(p.Amplitude) + math.Max(0, p.Radius*p.RiseRate)
}
