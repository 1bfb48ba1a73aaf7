package main

import "flag"

// Command-line flags that select the preset and optional runtime
// behaviour.
var (
	// presetFlag names the preset to start with.
	presetFlag = flag.String("preset", "braille", "preset to start with (braille, dense, drift, calm, or one from -presets)")

	// presetsFileFlag replaces the built-in presets with a YAML file.
	presetsFileFlag = flag.String("presets", "", "path to a YAML preset file replacing the built-in presets")

	// debugFlag enables the FPS and frame timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and frame timing overlay")

	// workersFlag splits the depth pass across goroutines when > 1.
	workersFlag = flag.Int("workers", 1, "goroutines used for the CPU depth pass")

	// openCLFlag evaluates depths with the OpenCL kernel when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "compute depths on an OpenCL device (requires -tags opencl)")

	fullscreenFlag = flag.Bool("fullscreen", false, "start in fullscreen")

	// cpuProfileFlag writes a CPU profile for the first seconds of the run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile for 15s to this path")

	seedFlag = flag.Int64("seed", 0, "seed for per-dot phases (0 uses the clock)")
)
