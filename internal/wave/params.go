// Package wave samples the incident, reflected and standing waves of a string
// with one reflecting end.
package wave

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidParams is returned when a parameter set cannot describe a wave.
var ErrInvalidParams = errors.New("invalid wave parameters")

// Params holds the slider-controlled properties shared by the incident and
// reflected waves.
type Params struct {
	Amplitude  float64
	Frequency  float64
	Wavelength float64
}

// DefaultParams returns the parameters the simulation starts with.
func DefaultParams() Params {
	return Params{Amplitude: 50, Frequency: 1, Wavelength: 200}
}

// Validate reports an error unless every field is finite and strictly positive.
func (p Params) Validate() error {
	check := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParams, name, v)
		}
		return nil
	}
	if err := check("amplitude", p.Amplitude); err != nil {
		return err
	}
	if err := check("frequency", p.Frequency); err != nil {
		return err
	}
	return check("wavelength", p.Wavelength)
}

// WaveNumber returns k = 2π/λ.
func (p Params) WaveNumber() float64 { return 2 * math.Pi / p.Wavelength }

// AngularFrequency returns ω = 2πf.
func (p Params) AngularFrequency() float64 { return 2 * math.Pi * p.Frequency }

// Speed returns the propagation speed f·λ.
func (p Params) Speed() float64 { return p.Frequency * p.Wavelength }

// Reflection selects the boundary condition at the reflecting end.
type Reflection int

const (
	// Fixed ends invert the reflected wave (phase shift π).
	Fixed Reflection = iota
	// Free ends reflect without a phase shift.
	Free
)

// PhaseShift returns the phase offset applied to the reflected wave.
func (r Reflection) PhaseShift() float64 {
	if r == Fixed {
		return math.Pi
	}
	return 0
}

// Toggle flips between the two boundary types.
func (r Reflection) Toggle() Reflection {
	if r == Fixed {
		return Free
	}
	return Fixed
}

func (r Reflection) String() string {
	switch r {
	case Fixed:
		return "fixed"
	case Free:
		return "free"
	default:
		return "unknown"
	}
}

// Label is the caption drawn next to the boundary marker.
func (r Reflection) Label() string {
	if r == Fixed {
		return "Fixed end"
	}
	return "Free end"
}

// ParseReflection accepts "fixed" or "free" in any case.
func ParseReflection(s string) (Reflection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return Fixed, nil
	case "free":
		return Free, nil
	}
	return Fixed, fmt.Errorf("unknown reflection type %q (want fixed or free)", s)
}

// Direction is the propagation sense of a travelling wave along x.
type Direction int

const (
	// Forward waves travel toward increasing x.
	Forward Direction = 1
	// Backward waves travel toward decreasing x.
	Backward Direction = -1
)

// Toggles selects which traces are computed and drawn. It never changes the
// underlying values.
type Toggles struct {
	Incident  bool
	Reflected bool
	Standing  bool
}

// AllTraces enables every trace.
func AllTraces() Toggles {
	return Toggles{Incident: true, Reflected: true, Standing: true}
}

// Any reports whether at least one trace is enabled.
func (t Toggles) Any() bool {
	return t.Incident || t.Reflected || t.Standing
}
