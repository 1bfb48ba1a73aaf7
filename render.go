package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the projected dots and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.shader.Background())

	dots := g.frame.Build(g.positions, g.camera, g.shader, g.preset.Style.DotRadius)
	for _, d := range dots {
		vector.FillCircle(screen, d.X, d.Y, d.Radius, d.Color, true)
	}

	if *debugFlag {
		g.drawDebug(screen, len(dots))
	}
}

// drawDebug prints frame timing, refreshed a few times a second so the
// numbers stay readable.
func (g *Game) drawDebug(screen *ebiten.Image, visible int) {
	now := g.now()
	if now.Sub(g.lastDebugDraw) >= debugOverlayInterval || g.debugText == "" {
		backend := "cpu"
		if g.gpuSolver != nil {
			backend = "opencl"
		}
		ptr := g.tracker.Current()
		pointer := "offscreen"
		if g.tracker.Seen() {
			pointer = fmt.Sprintf("%.1f, %.1f", ptr.X, ptr.Y)
		}
		g.debugText = fmt.Sprintf("FPS: %.1f  TPS: %.1f\nPreset: %s (%d/%d dots)\nDepth: %.3f ms (%s, workers %d, +/-)\nPointer: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.preset.Name, visible, g.field.Len(),
			g.lastStepTime.Seconds()*1000, backend, g.workers, pointer)
		g.lastDebugDraw = now
	}
	ebitenutil.DebugPrint(screen, g.debugText)
}

// Layout tracks the outside size so pointer mapping and projection follow
// window resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return int(g.viewport.Width), int(g.viewport.Height)
	}
	g.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
