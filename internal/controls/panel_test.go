package controls

import (
	"math"
	"strings"
	"testing"

	"standingwaves/internal/clock"
	"standingwaves/internal/wave"
)

func newTestPanel(t *testing.T) (*Panel, *clock.FrameScheduler) {
	t.Helper()
	fs := clock.NewFrameScheduler()
	return NewPanel(wave.DefaultParams(), wave.Fixed, clock.New(fs)), fs
}

func TestRangeNudge(t *testing.T) {
	tests := []struct {
		name  string
		r     Range
		v     float64
		delta int
		want  float64
	}{
		{"amplitude up", AmplitudeRange, 50, 1, 51},
		{"amplitude clamps high", AmplitudeRange, 100, 5, 100},
		{"amplitude clamps low", AmplitudeRange, 12, -10, 10},
		{"frequency tenth", FrequencyRange, 1, 1, 1.1},
		{"frequency from min", FrequencyRange, 0.1, 2, 0.3},
		{"frequency top", FrequencyRange, 1.9, 3, 2},
		{"wavelength down", WavelengthRange, 200, -3, 170},
		{"step size", StepSizeRange, 0.1, 7, 0.17},
		{"step size bottom", StepSizeRange, 0.02, -5, 0.01},
		{"off grid snaps", WavelengthRange, 203, 0, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Nudge(tt.v, tt.delta); got != tt.want {
				t.Errorf("Nudge(%v, %d) = %v, want %v", tt.v, tt.delta, got, tt.want)
			}
		})
	}
}

func TestRangeClamp(t *testing.T) {
	if got := AmplitudeRange.Clamp(math.NaN()); got != 10 {
		t.Errorf("Clamp(NaN) = %v, want 10", got)
	}
	if got := WavelengthRange.Clamp(1e9); got != 400 {
		t.Errorf("Clamp(1e9) = %v, want 400", got)
	}
	if got := FrequencyRange.Snap(0.04); got != 0.1 {
		t.Errorf("Snap(0.04) = %v, want 0.1", got)
	}
}

func TestNewPanelDefaults(t *testing.T) {
	p, _ := newTestPanel(t)
	if p.Params != wave.DefaultParams() {
		t.Errorf("Params = %+v, want defaults", p.Params)
	}
	if p.Reflection != wave.Fixed || p.Show != wave.AllTraces() || p.ShowNodes {
		t.Errorf("unexpected toggles: %v %+v nodes=%v", p.Reflection, p.Show, p.ShowNodes)
	}
	if p.Clock.State() != clock.Stopped || p.Clock.StepSize() != 0.1 {
		t.Errorf("clock state=%v step=%v", p.Clock.State(), p.Clock.StepSize())
	}
}

func TestNewPanelSnapsOutOfRange(t *testing.T) {
	c := clock.New(clock.NewFrameScheduler())
	p := NewPanel(wave.Params{Amplitude: 500, Frequency: 0.01, Wavelength: 333}, wave.Free, c)
	want := wave.Params{Amplitude: 100, Frequency: 0.1, Wavelength: 330}
	if p.Params != want {
		t.Errorf("Params = %+v, want %+v", p.Params, want)
	}
}

func TestPanelNudgeSelected(t *testing.T) {
	p, _ := newTestPanel(t)
	p.Nudge(5)
	if p.Params.Amplitude != 55 {
		t.Errorf("amplitude = %v, want 55", p.Params.Amplitude)
	}
	p.Select(p.Selected.Next())
	p.Nudge(-3)
	if p.Params.Frequency != 0.7 {
		t.Errorf("frequency = %v, want 0.7", p.Params.Frequency)
	}
	p.Select(Wavelength)
	p.Nudge(1)
	if p.Params.Wavelength != 210 {
		t.Errorf("wavelength = %v, want 210", p.Params.Wavelength)
	}
	p.Select(StepSize)
	p.Nudge(40)
	if p.Clock.StepSize() != 0.5 {
		t.Errorf("step size = %v, want 0.5", p.Clock.StepSize())
	}
	p.Select(Knob(9))
	if p.Selected != StepSize {
		t.Errorf("invalid Select changed knob to %v", p.Selected)
	}
}

func TestPanelStepUsesStepSize(t *testing.T) {
	p, fs := newTestPanel(t)
	p.Set(StepSize, 0.25)
	p.Step()
	p.Step()
	if got := p.Clock.Time(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("time = %v, want 0.5", got)
	}
	p.Clock.TogglePlay()
	if p.Step() {
		t.Error("Step while playing should be ignored")
	}
	fs.Fire()
	if got := p.Clock.Time(); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("time = %v, want 0.6", got)
	}
}

func TestPanelToggles(t *testing.T) {
	p, _ := newTestPanel(t)
	p.ToggleReflection()
	p.ToggleIncident()
	p.ToggleReflected()
	p.ToggleNodes()
	p.ToggleSlowMotion()
	p.ToggleStepMode()
	if p.Reflection != wave.Free || p.Show.Incident || p.Show.Reflected || !p.Show.Standing || !p.ShowNodes {
		t.Errorf("toggles not applied: %v %+v nodes=%v", p.Reflection, p.Show, p.ShowNodes)
	}
	if !p.Clock.SlowMotion() || !p.Clock.StepMode() {
		t.Error("clock modifiers not applied")
	}
	p.ToggleStanding()
	if p.Show.Any() {
		t.Error("all traces should be off")
	}
}

func TestKnobCycle(t *testing.T) {
	k := Amplitude
	for i := 0; i < 4; i++ {
		k = k.Next()
	}
	if k != Amplitude {
		t.Errorf("four Next() calls = %v, want amplitude", k)
	}
	if Amplitude.Prev() != StepSize {
		t.Errorf("Amplitude.Prev() = %v, want step size", Amplitude.Prev())
	}
	if Knob(-1).String() != "unknown" {
		t.Error("invalid knob should stringify as unknown")
	}
}

func TestSummary(t *testing.T) {
	p, _ := newTestPanel(t)
	lines := p.Summary()
	if len(lines) != 3 {
		t.Fatalf("Summary() returned %d lines", len(lines))
	}
	for _, want := range []string{"Stopped", "Fixed end", ">A=50", "λ=200", "v=200"} {
		if !strings.Contains(strings.Join(lines, "\n"), want) {
			t.Errorf("summary missing %q: %q", want, lines)
		}
	}
}
