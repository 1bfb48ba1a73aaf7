package main

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"dotfield/internal/field"
)

func newTestApp(t *testing.T, w, h int) (*app, tcell.SimulationScreen) {
	t.Helper()
	p, err := field.DefaultPresets().Lookup("braille")
	if err != nil {
		t.Fatal(err)
	}
	sim := tcell.NewSimulationScreen("UTF-8")
	a, err := newApp(p, sim)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)
	a.resize()
	return a, sim
}

func TestApp_CellCorners(t *testing.T) {
	a, _ := newTestApp(t, 100, 40)
	if x, y := a.cell(a.minX, a.maxY); x != 0 || y != 0 {
		t.Errorf("top-left lattice corner at (%d, %d), want (0, 0)", x, y)
	}
	if x, y := a.cell(a.maxX, a.minY); x != 99 || y != 39 {
		t.Errorf("bottom-right lattice corner at (%d, %d), want (99, 39)", x, y)
	}
}

func TestApp_ResizeUpdatesViewport(t *testing.T) {
	a, sim := newTestApp(t, 80, 24)
	if v := a.tracker.Mapper().Viewport(); v.Width != 79 || v.Height != 23 {
		t.Fatalf("viewport = %+v, want 79x23 cell span", v)
	}
	sim.SetSize(120, 30)
	a.handleEvent(tcell.NewEventResize(120, 30))
	if v := a.tracker.Mapper().Viewport(); v.Width != 119 || v.Height != 29 {
		t.Errorf("viewport after resize = %+v, want 119x29 cell span", v)
	}
	if len(a.depth) != 120*30 {
		t.Errorf("z-buffer len = %d, want %d", len(a.depth), 120*30)
	}
}

func TestApp_MouseAndQuit(t *testing.T) {
	a, _ := newTestApp(t, 80, 24)
	if a.tracker.Seen() {
		t.Fatal("pointer tracked before any mouse event")
	}
	if !a.handleEvent(tcell.NewEventMouse(40, 12, tcell.ButtonNone, tcell.ModNone)) {
		t.Fatal("mouse event should not quit")
	}
	if !a.tracker.Seen() {
		t.Error("mouse event not observed")
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}

func TestApp_MouseOverDotMapsOntoDot(t *testing.T) {
	a, _ := newTestApp(t, 100, 40)
	spacing := a.field.Grid().Spacing
	worst := 0.0
	for _, p := range a.field.Points() {
		cx, cy := a.cell(p.BaseX, p.BaseY)
		a.handleEvent(tcell.NewEventMouse(cx, cy, tcell.ButtonNone, tcell.ModNone))
		raw := a.tracker.Raw()
		d := math.Hypot(raw.X-p.BaseX, raw.Y-p.BaseY)
		if d > worst {
			worst = d
		}
		if d > spacing/2 {
			t.Fatalf("dot (%v, %v) drawn at cell (%d, %d); pointer there maps to (%.2f, %.2f), %.2f away",
				p.BaseX, p.BaseY, cx, cy, raw.X, raw.Y, d)
		}
	}
	t.Logf("worst offset %.2f (spacing %v)", worst, spacing)
}

func TestApp_DrawRaisesPinsUnderPointer(t *testing.T) {
	a, sim := newTestApp(t, 100, 40)
	p := a.field.Points()[len(a.field.Points())/2]
	x, y := a.cell(p.BaseX, p.BaseY)
	a.handleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	a.draw()

	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 || c.Runes[0] != glyphs[len(glyphs)-1] {
		t.Errorf("cell (%d, %d) under the pointer = %q, want raised glyph %q", x, y, c.Runes, glyphs[len(glyphs)-1])
	}
}
