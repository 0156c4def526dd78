package main

import (
	"flag"

	"standingwaves/internal/clock"
	"standingwaves/internal/wave"
)

// Command-line flags that set the initial wave parameters and select optional
// rendering, sampling, and runtime behavior.
var (
	// amplitudeFlag sets the initial amplitude (10-100).
	amplitudeFlag = flag.Float64("amplitude", wave.DefaultParams().Amplitude, "initial wave amplitude (10-100)")

	// frequencyFlag sets the initial frequency (0.1-2).
	frequencyFlag = flag.Float64("frequency", wave.DefaultParams().Frequency, "initial wave frequency (0.1-2)")

	// wavelengthFlag sets the initial wavelength (50-400).
	wavelengthFlag = flag.Float64("wavelength", wave.DefaultParams().Wavelength, "initial wavelength (50-400)")

	// reflectionFlag picks the boundary condition at startup.
	reflectionFlag = flag.String("reflection", "fixed", "boundary type at the reflecting end: fixed or free")

	slowMotionFlag = flag.Bool("slow-motion", false, "start with slow motion enabled")

	// stepSizeFlag sets the manual step size (0.01-0.5).
	stepSizeFlag = flag.Float64("step-size", clock.DefaultStepSize, "manual step size in time units (0.01-0.5)")

	// autoplayFlag starts playback immediately.
	autoplayFlag = flag.Bool("autoplay", false, "start playing immediately")

	// openCLFlag samples traces on an OpenCL device when the binary was built
	// with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "sample traces with OpenCL (requires -tags opencl)")

	// workersFlag bounds the CPU sampler goroutines; 0 uses every CPU.
	workersFlag = flag.Int("workers", 0, "CPU sampler worker goroutines (0 = NumCPU)")

	showNodesFlag = flag.Bool("show-nodes", false, "mark node and antinode positions")

	// debugFlag enables the FPS and sampler overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and sampler overlay")

	windowScaleFlag = flag.Float64("window-scale", 1, "window size multiplier")

	// recordDefaultPGO triggers a scripted demo to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "run a randomized demo for 15s while capturing default.pgo")
)
