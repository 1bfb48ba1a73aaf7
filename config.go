package main

import "time"

// Window, camera, and lighting constants for the dot field renderer. Grid
// and displacement values live in the presets.
const (
	defaultWidth, defaultHeight = 1280, 720
	defaultTPS                  = 60
	cameraFovY                  = 75.0
	cameraNear                  = 0.1
	cameraFar                   = 1000.0
	cameraZ                     = 50.0
	cameraTiltY                 = -10.0
	lightX, lightY, lightZ      = 0.0, 0.0, 20.0
	lightRange                  = 100.0
	minWorkers                  = 1
	maxWorkers                  = 64
	workerStep                  = 1
	profileDuration             = 15 * time.Second
	debugOverlayInterval        = 250 * time.Millisecond
)
