// Command dotfield-tty renders the dot field in a terminal. Mouse motion
// raises the pins under the cursor.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"dotfield/internal/field"
	"dotfield/internal/scene"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var glyphs = []rune{' ', '.', '·', '•', '●'}

var (
	presetFlag      = flag.String("preset", "braille", "preset to render")
	presetsFileFlag = flag.String("presets", "", "path to a YAML preset file replacing the built-in presets")
)

type app struct {
	screen  tcell.Screen
	field   *field.Field
	tracker *field.Tracker
	shader  *scene.Shader
	start   time.Time

	width, height int
	depth         []float64 // per-cell z-buffer
	minX, maxX    float64
	minY, maxY    float64
}

func newApp(p field.Preset, screen tcell.Screen) (*app, error) {
	f, err := field.New(p.Grid, p.Params, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return nil, err
	}
	pal, err := p.Palette()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	a := &app{
		screen:  screen,
		field:   f,
		tracker: field.NewTracker(field.NewLatticeMapper(p.Grid), f.Offscreen(), p.Pointer.Smoothing),
		shader:  scene.NewShader(pal, scene.Light{Range: math.Inf(1)}, p.Params.MaxDepth()),
		start:   time.Now(),
	}
	a.minX, a.maxX, a.minY, a.maxY = f.Bounds()
	a.resize()
	return a, nil
}

// resize re-reads the terminal size; pointer mapping uses it from the
// next mouse event on. The mapper spans the same (width-1, height-1)
// cells that cell stretches the lattice across, so the two are inverses.
func (a *app) resize() {
	a.width, a.height = a.screen.Size()
	a.tracker.Mapper().SetViewport(field.Viewport{Width: float64(a.width - 1), Height: float64(a.height - 1)})
	if n := a.width * a.height; cap(a.depth) < n {
		a.depth = make([]float64, n)
	} else {
		a.depth = a.depth[:n]
	}
	a.screen.Sync()
}

// cell maps a lattice coordinate onto the terminal so the grid fills it.
func (a *app) cell(x, y float64) (int, int) {
	cx, cy := 0, 0
	if a.maxX > a.minX {
		cx = int(math.Round((x - a.minX) / (a.maxX - a.minX) * float64(a.width-1)))
	}
	if a.maxY > a.minY {
		cy = int(math.Round((a.maxY - y) / (a.maxY - a.minY) * float64(a.height-1)))
	}
	return cx, cy
}

func (a *app) draw() {
	bg := a.shader.Background()
	base := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	a.screen.Fill(' ', base)
	for i := range a.depth {
		a.depth[i] = math.Inf(-1)
	}

	positions := a.field.Advance(time.Since(a.start).Seconds(), a.tracker.Step())
	for _, p := range positions {
		cx, cy := a.cell(p.X, p.Y)
		if cx < 0 || cx >= a.width || cy < 0 || cy >= a.height {
			continue
		}
		idx := cy*a.width + cx
		if p.Z <= a.depth[idx] {
			continue
		}
		a.depth[idx] = p.Z

		level := a.shader.Intensity(p)
		g := glyphs[1+int(level*float64(len(glyphs)-2)+0.5)]
		c := a.shader.Shade(p)
		style := base.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		a.screen.SetContent(cx, cy, g, nil, style)
	}
	a.screen.Show()
}

// handleEvent returns false when the user asked to quit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.tracker.Observe(float64(x), float64(y))
	case *tcell.EventResize:
		a.resize()
	case *tcell.EventFocus:
		if !ev.Focused {
			a.tracker.Leave()
		}
	}
	return true
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.draw()
		}
	}
}

func main() {
	flag.Parse()

	presets := field.DefaultPresets()
	if *presetsFileFlag != "" {
		loaded, err := field.LoadPresetFile(*presetsFileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Loading presets: %v\n", err)
			os.Exit(1)
		}
		presets = loaded
	}
	p, err := presets.Lookup(*presetFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v (available: %v)\n", err, presets.Names())
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	a, err := newApp(p, screen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.screen.Fini()

	a.run()
}
