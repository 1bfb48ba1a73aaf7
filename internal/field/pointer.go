package field

// Pointer is a pointer position in field space.
type Pointer struct {
	X, Y float64
}

// Viewport is the size of the host surface in screen pixels.
type Viewport struct {
	Width, Height float64
}

// Mapper converts screen-space pointer observations into field space.
// The viewport is read on every call, so a resize takes effect on the
// next observation.
type Mapper struct {
	ScaleX, ScaleY   float64
	CenterX, CenterY float64

	viewport Viewport
}

// NewMapper scales the normalized pointer range to cover the lattice
// extent times reach.
func NewMapper(grid GridConfig, reach float64) *Mapper {
	minX, maxX, minY, maxY := grid.Bounds()
	halfW := (maxX - minX + grid.Spacing) / 2
	halfH := (maxY - minY + grid.Spacing) / 2
	if reach <= 0 {
		reach = 1
	}
	return &Mapper{ScaleX: halfW * reach, ScaleY: halfH * reach}
}

// NewLatticeMapper maps the viewport edges exactly onto the outermost
// lattice points. Hosts that place dots by stretching Bounds across the
// surface use it with a viewport of (width-1, height-1) cells so that a
// pointer over a drawn dot maps back onto that dot.
func NewLatticeMapper(grid GridConfig) *Mapper {
	minX, maxX, minY, maxY := grid.Bounds()
	return &Mapper{
		ScaleX:  (maxX - minX) / 2,
		ScaleY:  (maxY - minY) / 2,
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
	}
}

// SetViewport records the current host surface size.
func (m *Mapper) SetViewport(v Viewport) {
	m.viewport = v
}

// Viewport returns the surface size used by Map.
func (m *Mapper) Viewport() Viewport {
	return m.viewport
}

// Map normalizes (px, py) to [-1, 1] across the viewport, flips y so up
// is positive, and scales into field space around the centre. ok is false while the
// viewport has no area.
func (m *Mapper) Map(px, py float64) (ptr Pointer, ok bool) {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return Pointer{}, false
	}
	nx := px/m.viewport.Width*2 - 1
	ny := -(py/m.viewport.Height*2 - 1)
	return Pointer{X: m.CenterX + nx*m.ScaleX, Y: m.CenterY + ny*m.ScaleY}, true
}

// Tracker owns the pointer state fed to Field.Advance. Until the first
// observation, and after Leave, it reports the offscreen sentinel.
type Tracker struct {
	mapper    *Mapper
	offscreen Pointer
	raw       Pointer
	smooth    Smoother2
	smoothing bool
	seen      bool
}

// NewTracker returns a tracker parked at offscreen. A smoothing factor
// in (0, 1) eases the reported position toward observations; 0 or 1
// reports observations as-is.
func NewTracker(m *Mapper, offscreen Pointer, smoothing float64) *Tracker {
	t := &Tracker{
		mapper:    m,
		offscreen: offscreen,
		raw:       offscreen,
	}
	if smoothing > 0 && smoothing < 1 {
		t.smoothing = true
		t.smooth = NewSmoother2(smoothing)
	}
	t.smooth.Reset(offscreen.X, offscreen.Y)
	return t
}

// Mapper returns the screen-to-field mapper used by Observe.
func (t *Tracker) Mapper() *Mapper { return t.mapper }

// Observe records a screen-space pointer position. It is a no-op while
// the viewport is empty.
func (t *Tracker) Observe(px, py float64) {
	ptr, ok := t.mapper.Map(px, py)
	if !ok {
		return
	}
	t.raw = ptr
	if !t.seen {
		t.smooth.Reset(ptr.X, ptr.Y)
		t.seen = true
	}
}

// Leave parks the pointer back at the sentinel, e.g. when the cursor
// exits the window.
func (t *Tracker) Leave() {
	t.raw = t.offscreen
	t.smooth.Reset(t.offscreen.X, t.offscreen.Y)
	t.seen = false
}

// Seen reports whether a pointer is currently being tracked.
func (t *Tracker) Seen() bool { return t.seen }

// Raw returns the last observation without smoothing.
func (t *Tracker) Raw() Pointer { return t.raw }

// Step advances smoothing by one frame and returns the pointer to use
// for this frame.
func (t *Tracker) Step() Pointer {
	if !t.smoothing || !t.seen {
		return t.raw
	}
	x, y := t.smooth.Follow(t.raw.X, t.raw.Y)
	return Pointer{X: x, Y: y}
}

// Current returns the pointer without advancing smoothing.
func (t *Tracker) Current() Pointer {
	if !t.smoothing || !t.seen {
		return t.raw
	}
	x, y := t.smooth.Value()
	return Pointer{X: x, Y: y}
}
