package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"dotfield/internal/field"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns everything deferred so the CPU profile is flushed even when
// the game exits with an error.
func run() error {
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			return fmt.Errorf("failed to start CPU profile: %w", err)
		}
		log.Printf("Recording CPU profile to %s for %s", *cpuProfileFlag, profileDuration)
		time.AfterFunc(profileDuration, func() {
			stop()
			log.Printf("CPU profile written to %s", *cpuProfileFlag)
		})
		defer stop()
	}

	presets := field.DefaultPresets()
	if *presetsFileFlag != "" {
		loaded, err := field.LoadPresetFile(*presetsFileFlag)
		if err != nil {
			return fmt.Errorf("loading presets: %w", err)
		}
		presets = loaded
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := newGame(presets, *presetFlag, seed)
	if err != nil {
		return fmt.Errorf("starting preset %q: %w", *presetFlag, err)
	}
	defer g.close()

	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle("Braille Dot Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreenFlag)
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
