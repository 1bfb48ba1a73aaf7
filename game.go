package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"dotfield/internal/field"
	"dotfield/internal/scene"
)

// Game holds the dot field, the pointer and camera state, and the
// rendering buffers for the active preset.
type Game struct {
	presets field.Presets
	preset  field.Preset
	field   *field.Field
	tracker *field.Tracker
	mapper  *field.Mapper

	camera *scene.Camera
	camX   field.Follower
	camY   field.Follower
	shader *scene.Shader
	frame  *scene.Frame

	positions []field.Position
	viewport  field.Viewport

	start time.Time
	now   func() time.Time
	seed  int64

	workers       int
	lastStepTime  time.Duration
	lastDebugDraw time.Time
	debugText     string

	gpuSolver *openCLDepthSolver
}

// newGame constructs a Game running the named preset.
func newGame(presets field.Presets, name string, seed int64) (*Game, error) {
	g := &Game{
		presets:  presets,
		camera:   scene.NewCamera(0, cameraTiltY, cameraZ, cameraFovY, cameraNear, cameraFar),
		now:      time.Now,
		seed:     seed,
		workers:  clampWorkers(*workersFlag),
		viewport: field.Viewport{Width: defaultWidth, Height: defaultHeight},
	}
	g.start = g.now()
	if err := g.usePreset(name); err != nil {
		return nil, err
	}
	g.camera.Resize(g.viewport.Width, g.viewport.Height)
	return g, nil
}

// usePreset rebuilds the field and everything sized from it. The clock
// and viewport carry over.
func (g *Game) usePreset(name string) error {
	p, err := g.presets.Lookup(name)
	if err != nil {
		return err
	}
	pal, err := p.Palette()
	if err != nil {
		return err
	}
	f, err := field.New(p.Grid, p.Params, rand.New(rand.NewSource(g.seed)))
	if err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}

	mapper := field.NewMapper(p.Grid, p.Pointer.Reach)
	mapper.SetViewport(g.viewport)

	g.preset = p
	g.field = f
	g.mapper = mapper
	g.tracker = field.NewTracker(mapper, f.Offscreen(), p.Pointer.Smoothing)
	g.shader = scene.NewShader(pal, scene.Light{X: lightX, Y: lightY, Z: lightZ, Range: lightRange}, p.Params.MaxDepth())
	g.frame = scene.NewFrame(f.Len())
	g.camX = p.CameraFollower(defaultTPS)
	g.camY = p.CameraFollower(defaultTPS)
	if g.camX != nil {
		g.camX.Reset(0)
		g.camY.Reset(cameraTiltY)
	}
	g.camera.MoveTo(0, cameraTiltY)
	g.positions = f.Advance(g.elapsed(), f.Offscreen())

	g.close()
	if *openCLFlag {
		solver, err := newOpenCLDepthSolver(f)
		if err != nil {
			log.Printf("OpenCL depth solver unavailable, using CPU: %v", err)
		} else {
			log.Printf("OpenCL depth solver enabled (device: %s)", solver.DeviceName())
			g.gpuSolver = solver
		}
	}
	log.Printf("Preset %q: %dx%d dots, spacing %.2f", p.Name, p.Grid.Columns, p.Grid.Rows, p.Grid.Spacing)
	return nil
}

// Update reads input, advances the field one frame, and eases the camera.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	ptr := g.tracker.Step()

	stepStart := time.Now()
	positions, err := g.advance(g.elapsed(), ptr)
	if err != nil {
		return err
	}
	g.positions = positions
	g.lastStepTime = time.Since(stepStart)

	g.followCamera()
	return nil
}

// followCamera eases the eye toward the raw pointer for parallax. With
// no pointer in the window the camera drifts back to its rest position.
func (g *Game) followCamera() {
	if g.camX == nil {
		return
	}
	tx, ty := 0.0, cameraTiltY
	if g.tracker.Seen() {
		raw := g.tracker.Raw()
		tx = raw.X * g.preset.Camera.Parallax
		ty = raw.Y * g.preset.Camera.Parallax
	}
	g.camera.MoveTo(g.camX.Follow(tx), g.camY.Follow(ty))
}

// close releases the GPU solver, if any.
func (g *Game) close() {
	if g.gpuSolver != nil {
		g.gpuSolver.Close()
		g.gpuSolver = nil
	}
}

func (g *Game) elapsed() float64 {
	return g.now().Sub(g.start).Seconds()
}

// resize applies a new outside size to the pointer mapping and the camera.
func (g *Game) resize(width, height int) {
	v := field.Viewport{Width: float64(width), Height: float64(height)}
	if v == g.viewport {
		return
	}
	g.viewport = v
	g.mapper.SetViewport(v)
	g.camera.Resize(v.Width, v.Height)
}

func clampWorkers(n int) int {
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
