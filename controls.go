package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"standingwaves/internal/clock"
	"standingwaves/internal/controls"
)

const helpLine = "space play  n step  r reset  f end  1/2/3 traces  k nodes  s slow  m step mode  tab/-/+ sliders"

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// handleInput maps key presses onto the control panel.
func (g *Game) handleInput() {
	p := g.panel
	if justPressed(ebiten.KeySpace) {
		p.Clock.TogglePlay()
	}
	if justPressed(ebiten.KeyN, ebiten.KeyPeriod) {
		p.Step()
	}
	if justPressed(ebiten.KeyR) {
		p.Clock.Reset()
	}
	if justPressed(ebiten.KeyF) {
		p.ToggleReflection()
	}
	if justPressed(ebiten.KeyDigit1) {
		p.ToggleIncident()
	}
	if justPressed(ebiten.KeyDigit2) {
		p.ToggleReflected()
	}
	if justPressed(ebiten.KeyDigit3) {
		p.ToggleStanding()
	}
	if justPressed(ebiten.KeyK) {
		p.ToggleNodes()
	}
	if justPressed(ebiten.KeyS) {
		p.ToggleSlowMotion()
	}
	if justPressed(ebiten.KeyM) {
		p.ToggleStepMode()
	}
	if justPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			p.Select(p.Selected.Prev())
		} else {
			p.Select(p.Selected.Next())
		}
	}
	if justPressed(ebiten.KeyMinus, ebiten.KeyKPSubtract) {
		p.Nudge(-1)
	}
	if justPressed(ebiten.KeyEqual, ebiten.KeyKPAdd) {
		p.Nudge(1)
	}
}

// enableAutoDemo starts playback and randomly exercises the controls for a
// limited duration.
func (g *Game) enableAutoDemo(duration time.Duration) {
	g.autoDemo = true
	g.autoDemoDeadline = time.Now().Add(duration)
	if g.autoDemoRand == nil {
		g.autoDemoRand = rand.New(rand.NewSource(time.Now().UnixNano() + 3))
	}
	g.autoDemoFrameCount = 0
	if g.clock.State() != clock.Playing {
		g.clock.Reset()
		g.clock.SetStepMode(false)
		g.clock.TogglePlay()
	}
}

// autoDemoStep performs one random control action every few dozen frames.
func (g *Game) autoDemoStep() {
	if g.autoDemoFrameCount > 0 {
		g.autoDemoFrameCount--
		return
	}
	g.autoDemoFrameCount = autoDemoMinFrames + g.autoDemoRand.Intn(autoDemoMaxFrames-autoDemoMinFrames)
	p := g.panel
	switch g.autoDemoRand.Intn(6) {
	case 0:
		p.ToggleReflection()
	case 1:
		p.ToggleSlowMotion()
	case 2:
		p.Select(controls.Knob(g.autoDemoRand.Intn(3)))
		p.Nudge(g.autoDemoRand.Intn(11) - 5)
	case 3:
		p.ToggleNodes()
	case 4:
		switch g.autoDemoRand.Intn(3) {
		case 0:
			p.ToggleIncident()
		case 1:
			p.ToggleReflected()
		default:
			p.ToggleStanding()
		}
	case 5:
		// Pause, step twice, resume.
		p.Clock.TogglePlay()
		p.Step()
		p.Step()
		p.Clock.TogglePlay()
	}
}
