package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"standingwaves/internal/clock"
	"standingwaves/internal/controls"
	"standingwaves/internal/raster"
	"standingwaves/internal/wave"
)

// Game wires the clock, control panel, sampler and canvas into Ebiten's loop.
type Game struct {
	sched  *clock.FrameScheduler
	clock  *clock.Clock
	panel  *controls.Panel
	tracer wave.Tracer

	frame     *wave.Frame
	canvas    *raster.Canvas
	canvasImg *ebiten.Image

	lastSampleDuration time.Duration
	sampleErrLogged    bool

	autoDemo           bool
	autoDemoDeadline   time.Time
	autoDemoRand       *rand.Rand
	autoDemoFrameCount int
}

// newGame constructs a fully initialized Game instance.
func newGame(params wave.Params, refl wave.Reflection) *Game {
	sched := clock.NewFrameScheduler()
	clk := clock.New(sched)
	clk.SetStepSize(*stepSizeFlag)
	clk.SetSlowMotion(*slowMotionFlag)

	g := &Game{
		sched:        sched,
		clock:        clk,
		panel:        controls.NewPanel(params, refl, clk),
		tracer:       newTracer(),
		frame:        wave.NewFrame(canvasWidth, 1),
		canvas:       raster.NewCanvas(canvasWidth, canvasHeight),
		canvasImg:    ebiten.NewImage(canvasWidth, canvasHeight),
		autoDemoRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.panel.ShowNodes = *showNodesFlag
	if *autoplayFlag {
		clk.TogglePlay()
	}
	return g
}

// newTracer selects the OpenCL sampler when requested and available,
// otherwise the CPU sampler.
func newTracer() wave.Tracer {
	if *openCLFlag {
		s, err := wave.NewOpenCLSampler(canvasWidth)
		if err == nil {
			log.Printf("OpenCL sampler enabled (device: %s)", s.DeviceName())
			return s
		}
		log.Printf("OpenCL sampler unavailable, using CPU: %v", err)
	}
	s := wave.NewSampler(*workersFlag)
	log.Printf("CPU sampler enabled (%d workers)", s.Workers())
	return s
}

// Update handles input, advances the clock by one scheduled tick and samples
// the traces for the new time.
func (g *Game) Update() error {
	if g.autoDemo {
		if time.Now().After(g.autoDemoDeadline) {
			g.autoDemo = false
			log.Printf("Auto demo finished")
			return ebiten.Termination
		}
		g.autoDemoStep()
	} else {
		g.handleInput()
	}

	g.sched.Fire()

	start := time.Now()
	p := g.panel
	if err := g.tracer.Sample(g.frame, p.Params, p.Reflection, g.clock.Time(), p.Show); err != nil {
		if !g.sampleErrLogged {
			log.Printf("Sampling with %s failed: %v", g.tracer.Name(), err)
			g.sampleErrLogged = true
		}
		return nil
	}
	g.lastSampleDuration = time.Since(start)
	return nil
}

// Close releases sampler resources.
func (g *Game) Close() {
	if g.tracer != nil {
		g.tracer.Close()
	}
}
