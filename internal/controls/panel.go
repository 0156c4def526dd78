package controls

import (
	"fmt"

	"standingwaves/internal/clock"
	"standingwaves/internal/wave"
)

// Knob selects which slider the +/- keys move.
type Knob int

const (
	Amplitude Knob = iota
	Frequency
	Wavelength
	StepSize
	knobCount
)

func (k Knob) String() string {
	switch k {
	case Amplitude:
		return "amplitude"
	case Frequency:
		return "frequency"
	case Wavelength:
		return "wavelength"
	case StepSize:
		return "step size"
	default:
		return "unknown"
	}
}

// Range returns the bounds of the slider.
func (k Knob) Range() Range {
	switch k {
	case Frequency:
		return FrequencyRange
	case Wavelength:
		return WavelengthRange
	case StepSize:
		return StepSizeRange
	default:
		return AmplitudeRange
	}
}

// Next cycles forward through the knobs.
func (k Knob) Next() Knob { return (k + 1) % knobCount }

// Prev cycles backward through the knobs.
func (k Knob) Prev() Knob { return (k + knobCount - 1) % knobCount }

// Panel is the control surface shared by every frontend. It owns the wave
// parameters and display toggles, and forwards playback commands to Clock.
type Panel struct {
	Params     wave.Params
	Reflection wave.Reflection
	Show       wave.Toggles
	ShowNodes  bool
	Selected   Knob
	Clock      *clock.Clock
}

// NewPanel snaps p into the slider bounds and enables every trace.
func NewPanel(p wave.Params, r wave.Reflection, c *clock.Clock) *Panel {
	pn := &Panel{
		Params: wave.Params{
			Amplitude:  AmplitudeRange.Snap(p.Amplitude),
			Frequency:  FrequencyRange.Snap(p.Frequency),
			Wavelength: WavelengthRange.Snap(p.Wavelength),
		},
		Reflection: r,
		Show:       wave.AllTraces(),
		Clock:      c,
	}
	c.SetStepSize(StepSizeRange.Snap(c.StepSize()))
	return pn
}

// Value reads the current setting of k.
func (p *Panel) Value(k Knob) float64 {
	switch k {
	case Frequency:
		return p.Params.Frequency
	case Wavelength:
		return p.Params.Wavelength
	case StepSize:
		return p.Clock.StepSize()
	default:
		return p.Params.Amplitude
	}
}

// Set writes v into k after snapping it to the slider.
func (p *Panel) Set(k Knob, v float64) {
	v = k.Range().Snap(v)
	switch k {
	case Frequency:
		p.Params.Frequency = v
	case Wavelength:
		p.Params.Wavelength = v
	case StepSize:
		p.Clock.SetStepSize(v)
	default:
		p.Params.Amplitude = v
	}
}

// Nudge moves the selected knob by delta steps.
func (p *Panel) Nudge(delta int) {
	k := p.Selected
	p.Set(k, k.Range().Nudge(p.Value(k), delta))
}

// Select makes k the knob that Nudge moves.
func (p *Panel) Select(k Knob) {
	if k >= 0 && k < knobCount {
		p.Selected = k
	}
}

func (p *Panel) ToggleReflection() { p.Reflection = p.Reflection.Toggle() }
func (p *Panel) ToggleIncident()   { p.Show.Incident = !p.Show.Incident }
func (p *Panel) ToggleReflected()  { p.Show.Reflected = !p.Show.Reflected }
func (p *Panel) ToggleStanding()   { p.Show.Standing = !p.Show.Standing }
func (p *Panel) ToggleNodes()      { p.ShowNodes = !p.ShowNodes }

// ToggleSlowMotion flips the clock's slow motion modifier.
func (p *Panel) ToggleSlowMotion() { p.Clock.SetSlowMotion(!p.Clock.SlowMotion()) }

// ToggleStepMode flips the clock's step mode.
func (p *Panel) ToggleStepMode() { p.Clock.SetStepMode(!p.Clock.StepMode()) }

// Step advances the clock by the manual step size.
func (p *Panel) Step() bool { return p.Clock.Step(p.Clock.StepSize()) }

// Summary renders the state of every control as short HUD lines.
func (p *Panel) Summary() []string {
	mark := func(k Knob) string {
		if p.Selected == k {
			return ">"
		}
		return " "
	}
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	c := p.Clock
	return []string{
		fmt.Sprintf("t=%.2f  %s  %s  slow:%s  step mode:%s",
			c.Time(), c.State(), p.Reflection.Label(), onOff(c.SlowMotion()), onOff(c.StepMode())),
		fmt.Sprintf("%sA=%.0f  %sf=%.1f  %sλ=%.0f  %sdt=%.2f  v=%.0f",
			mark(Amplitude), p.Params.Amplitude, mark(Frequency), p.Params.Frequency,
			mark(Wavelength), p.Params.Wavelength, mark(StepSize), c.StepSize(), p.Params.Speed()),
		fmt.Sprintf("incident:%s  reflected:%s  standing:%s  nodes:%s",
			onOff(p.Show.Incident), onOff(p.Show.Reflected), onOff(p.Show.Standing), onOff(p.ShowNodes)),
	}
}
