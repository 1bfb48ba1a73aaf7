// Package scene projects dot positions through a perspective camera and
// shades them for a 2D renderer.
package scene

import "math"

type vec3 struct{ x, y, z float64 }

func (a vec3) sub(b vec3) vec3 { return vec3{a.x - b.x, a.y - b.y, a.z - b.z} }
func (a vec3) dot(b vec3) float64 { return a.x*b.x + a.y*b.y + a.z*b.z }
func (a vec3) length() float64 { return math.Sqrt(a.dot(a)) }
func (a vec3) cross(b vec3) vec3 {
	return vec3{a.y*b.z - a.z*b.y, a.z*b.x - a.x*b.z, a.x*b.y - a.y*b.x}
}

func (a vec3) normalize() vec3 {
	l := a.length()
	if l == 0 {
		return a
	}
	return vec3{a.x / l, a.y / l, a.z / l}
}

// Camera is a perspective camera that always looks at the origin.
type Camera struct {
	X, Y, Z float64

	FovY float64 // vertical field of view, degrees
	Near float64
	Far  float64

	// Aspect is width/height; Resize keeps it current.
	Aspect float64
	width  float64
	height float64

	basisDirty bool
	right      vec3
	up         vec3
	forward    vec3
	focal      float64
}

// NewCamera places a camera at (x, y, z) looking at the origin.
func NewCamera(x, y, z, fovY, near, far float64) *Camera {
	c := &Camera{X: x, Y: y, Z: z, FovY: fovY, Near: near, Far: far, Aspect: 1}
	c.basisDirty = true
	return c
}

// Resize recomputes the aspect ratio for a new viewport.
func (c *Camera) Resize(width, height float64) {
	c.width, c.height = width, height
	if height > 0 {
		c.Aspect = width / height
	}
	c.basisDirty = true
}

// MoveTo repositions the eye; the camera keeps looking at the origin.
func (c *Camera) MoveTo(x, y float64) {
	if x == c.X && y == c.Y {
		return
	}
	c.X, c.Y = x, y
	c.basisDirty = true
}

func (c *Camera) updateBasis() {
	if !c.basisDirty {
		return
	}
	eye := vec3{c.X, c.Y, c.Z}
	c.forward = vec3{}.sub(eye).normalize()
	worldUp := vec3{0, 1, 0}
	c.right = c.forward.cross(worldUp).normalize()
	c.up = c.right.cross(c.forward)
	c.focal = 1 / math.Tan(c.FovY*math.Pi/360)
	c.basisDirty = false
}

// Project maps a world position to screen pixels. scale converts a world
// length at that depth into pixels. ok is false outside [Near, Far].
func (c *Camera) Project(x, y, z float64) (sx, sy, depth, scale float64, ok bool) {
	if c.width <= 0 || c.height <= 0 {
		return 0, 0, 0, 0, false
	}
	c.updateBasis()
	rel := vec3{x, y, z}.sub(vec3{c.X, c.Y, c.Z})
	depth = rel.dot(c.forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, 0, false
	}
	ndcX := rel.dot(c.right) * c.focal / (c.Aspect * depth)
	ndcY := rel.dot(c.up) * c.focal / depth
	sx = (ndcX + 1) / 2 * c.width
	sy = (1 - ndcY) / 2 * c.height
	scale = c.focal / depth * c.height / 2
	return sx, sy, depth, scale, true
}
