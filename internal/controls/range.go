// Package controls holds the slider bounds and toggles that feed parameter
// values into the sampler and commands into the clock.
package controls

import "math"

// Range is a bounded slider with a fixed step granularity.
type Range struct {
	Min, Max, Step float64
}

var (
	AmplitudeRange  = Range{Min: 10, Max: 100, Step: 1}
	FrequencyRange  = Range{Min: 0.1, Max: 2, Step: 0.1}
	WavelengthRange = Range{Min: 50, Max: 400, Step: 10}
	StepSizeRange   = Range{Min: 0.01, Max: 0.5, Step: 0.01}
)

// Clamp constrains v to lie within [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// steps returns the number of step positions above Min.
func (r Range) steps() int {
	return int(math.Round((r.Max - r.Min) / r.Step))
}

func (r Range) index(v float64) int {
	return int(math.Round((r.Clamp(v) - r.Min) / r.Step))
}

// at converts a step index back into a value, rounding away the binary
// representation error that repeated tenths accumulate.
func (r Range) at(i int) float64 {
	if i < 0 {
		i = 0
	}
	if n := r.steps(); i > n {
		i = n
	}
	v := r.Min + float64(i)*r.Step
	return math.Round(v*1e6) / 1e6
}

// Snap clamps v and moves it to the nearest step position.
func (r Range) Snap(v float64) float64 { return r.at(r.index(v)) }

// Nudge moves v by delta steps, staying in range.
func (r Range) Nudge(v float64, delta int) float64 { return r.at(r.index(v) + delta) }
