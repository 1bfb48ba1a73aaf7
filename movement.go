package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var presetKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// handleInput feeds the cursor to the tracker and processes hotkeys.
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.trackCursor()
	g.handlePresetKeys()
	g.handleDebugControls()
	return nil
}

// trackCursor observes the cursor while it is over the window and parks
// the pointer offscreen otherwise.
func (g *Game) trackCursor() {
	cx, cy := ebiten.CursorPosition()
	if !ebiten.IsFocused() || cx < 0 || cy < 0 ||
		float64(cx) >= g.viewport.Width || float64(cy) >= g.viewport.Height {
		if g.tracker.Seen() {
			g.tracker.Leave()
		}
		return
	}
	g.tracker.Observe(float64(cx), float64(cy))
}

// handlePresetKeys switches presets with the number row.
func (g *Game) handlePresetKeys() {
	for i, key := range presetKeys {
		if i >= len(g.presets) {
			return
		}
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		name := g.presets[i].Name
		if name == g.preset.Name {
			return
		}
		if err := g.usePreset(name); err != nil {
			log.Printf("Switching to preset %q failed: %v", name, err)
		}
		return
	}
}

// handleDebugControls processes debug overlay hotkeys.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustWorkers(-workerStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustWorkers(workerStep)
	}
}

// adjustWorkers clamps the depth pass goroutine count within bounds.
func (g *Game) adjustWorkers(delta int) {
	g.workers = clampWorkers(g.workers + delta)
}
