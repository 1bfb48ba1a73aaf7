package scene

import (
	"image/color"
	"sort"

	"dotfield/internal/field"
)

// Dot is one projected, shaded dot ready to draw.
type Dot struct {
	X, Y   float32
	Radius float32
	Depth  float64
	Color  color.RGBA
}

// Frame holds the projected dots of the current frame. The buffer is
// reused between frames.
type Frame struct {
	dots []Dot
}

// NewFrame allocates room for n dots.
func NewFrame(n int) *Frame {
	return &Frame{dots: make([]Dot, 0, n)}
}

// Build projects and shades positions, dropping dots outside the camera
// range, and orders them far to near for painter's drawing.
func (f *Frame) Build(positions []field.Position, cam *Camera, sh *Shader, dotRadius float64) []Dot {
	f.dots = f.dots[:0]
	for _, p := range positions {
		sx, sy, depth, scale, ok := cam.Project(p.X, p.Y, p.Z)
		if !ok {
			continue
		}
		r := dotRadius * scale
		if r < 0.5 {
			r = 0.5
		}
		f.dots = append(f.dots, Dot{
			X:      float32(sx),
			Y:      float32(sy),
			Radius: float32(r),
			Depth:  depth,
			Color:  sh.Shade(p),
		})
	}
	sort.Slice(f.dots, func(i, j int) bool { return f.dots[i].Depth > f.dots[j].Depth })
	return f.dots
}

// Dots returns the dots from the last Build.
func (f *Frame) Dots() []Dot { return f.dots }
