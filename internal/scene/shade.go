package scene

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"dotfield/internal/field"
)

const ambient = 0.35

// Light is a point light with linear falloff to zero at Range.
type Light struct {
	X, Y, Z float64
	Range   float64
}

// Shader colours dots by their distance to the light and how far they
// are raised.
type Shader struct {
	palette  field.Palette
	light    Light
	maxDepth float64
}

// NewShader builds a shader; maxDepth is the largest expected depth and
// maps to full highlight.
func NewShader(pal field.Palette, light Light, maxDepth float64) *Shader {
	if maxDepth <= 0 {
		maxDepth = 1
	}
	if light.Range <= 0 {
		light.Range = 100
	}
	return &Shader{palette: pal, light: light, maxDepth: maxDepth}
}

// Background returns the clear colour.
func (s *Shader) Background() color.RGBA {
	return toRGBA(s.palette.Background)
}

// Shade returns the colour of a dot at p.
func (s *Shader) Shade(p field.Position) color.RGBA {
	dx, dy, dz := p.X-s.light.X, p.Y-s.light.Y, p.Z-s.light.Z
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	falloff := clamp01(1 - dist/s.light.Range)
	lift := clamp01(p.Z / s.maxDepth)

	base := s.palette.Dot.BlendRgb(s.palette.Light, clamp01(0.5*lift+0.25*falloff))
	k := ambient + (1-ambient)*falloff
	return toRGBA(colorful.Color{R: base.R * k, G: base.G * k, B: base.B * k})
}

// Intensity is a 0..1 brightness used by renderers without colour.
func (s *Shader) Intensity(p field.Position) float64 {
	return clamp01(0.5 + 0.5*p.Z/s.maxDepth)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
