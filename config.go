package main

import "time"

// Window, timing, and demo constants used throughout the application. The
// canvas matches the 800×300 drawing area the traces are laid out for; the HUD
// strip sits underneath it.
const (
	canvasWidth       = 800
	canvasHeight      = 300
	hudHeight         = 96
	hudLineHeight     = 16
	hudPadding        = 4
	defaultTPS        = 60.0
	autoDemoMinFrames = 20
	autoDemoMaxFrames = 70
	pgoRecordDuration = 15 * time.Second
	pgoOutputPath     = "default.pgo"
)
