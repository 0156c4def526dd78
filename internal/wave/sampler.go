package wave

import "math"

// Displacement returns the vertical offset of a travelling sine wave at
// position x and time t:
//
//	A·sin(k·x·dir − ω·t + phaseShift)
func Displacement(x, t float64, p Params, dir Direction, phaseShift float64) float64 {
	k := 2 * math.Pi / p.Wavelength
	omega := 2 * math.Pi * p.Frequency
	return p.Amplitude * math.Sin(k*x*float64(dir)-omega*t+phaseShift)
}

// IncidentAt samples the wave travelling toward the boundary.
func IncidentAt(x, t float64, p Params) float64 {
	return Displacement(x, t, p, Forward, 0)
}

// ReflectedAt samples the wave travelling away from the boundary.
func ReflectedAt(x, t float64, p Params, r Reflection) float64 {
	return Displacement(x, t, p, Backward, r.PhaseShift())
}

// StandingAt is the superposition of the incident and reflected waves.
func StandingAt(x, t float64, p Params, r Reflection) float64 {
	return IncidentAt(x, t, p) + ReflectedAt(x, t, p, r)
}

// Nodes lists the positions in [0, limit] where the standing wave is zero at
// every instant. Fixed ends place nodes at nλ/2, free ends at λ/4 + nλ/2.
func Nodes(p Params, r Reflection, limit float64) []float64 {
	offset := 0.0
	if r == Free {
		offset = p.Wavelength / 4
	}
	return ladder(offset, p.Wavelength/2, limit)
}

// Antinodes lists the positions in [0, limit] where the standing wave reaches
// twice the amplitude. They sit a quarter wavelength from each node.
func Antinodes(p Params, r Reflection, limit float64) []float64 {
	offset := p.Wavelength / 4
	if r == Free {
		offset = 0
	}
	return ladder(offset, p.Wavelength/2, limit)
}

func ladder(start, spacing, limit float64) []float64 {
	if spacing <= 0 || limit < start {
		return nil
	}
	n := int(math.Floor((limit-start)/spacing)) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start+float64(i)*spacing)
	}
	return out
}
