package raster

import (
	"image/color"
	"math"

	"standingwaves/internal/wave"
)

var (
	Background     = color.RGBA{255, 255, 255, 255}
	IncidentColor  = color.RGBA{255, 0, 0, 128}
	ReflectedColor = color.RGBA{0, 0, 255, 128}
	StandingColor  = color.RGBA{0, 0, 0, 255}
	FixedEndColor  = color.RGBA{0x33, 0x33, 0x33, 255}
	FreeEndColor   = color.RGBA{0x99, 0x99, 0x99, 255}
	NodeColor      = color.RGBA{0, 160, 80, 160}
	AntinodeColor  = color.RGBA{230, 140, 0, 160}
)

// BoundaryInset is the distance of the boundary marker from the right edge.
const BoundaryInset = 10

// Scene is everything one frame needs besides the sampled traces.
type Scene struct {
	Params     wave.Params
	Reflection wave.Reflection
	Show       wave.Toggles
	ShowNodes  bool
}

// BoundaryWidth returns the marker stroke width for r.
func BoundaryWidth(r wave.Reflection) int {
	if r == wave.Fixed {
		return 4
	}
	return 2
}

// BoundaryColor returns the marker stroke color for r.
func BoundaryColor(r wave.Reflection) color.RGBA {
	if r == wave.Fixed {
		return FixedEndColor
	}
	return FreeEndColor
}

// Render clears c and draws the enabled traces of f, the optional node
// markers and the boundary marker. Traces are centred vertically with
// positive displacement drawn upward. A nil canvas or frame draws nothing.
func Render(c *Canvas, f *wave.Frame, s Scene) {
	if c == nil || f == nil || c.Width == 0 || c.Height == 0 {
		return
	}
	c.Clear(Background)
	centerY := float64(c.Height) / 2

	if s.ShowNodes {
		limit := float64(c.Width - 1)
		for _, x := range wave.Nodes(s.Params, s.Reflection, limit) {
			px := int(math.Round(x))
			c.DrawLine(px, 0, px, c.Height-1, NodeColor)
		}
		for _, x := range wave.Antinodes(s.Params, s.Reflection, limit) {
			px := int(math.Round(x))
			c.DrawLine(px, 0, px, c.Height/8, AntinodeColor)
			c.DrawLine(px, c.Height-1-c.Height/8, px, c.Height-1, AntinodeColor)
		}
	}

	traces := []struct {
		enabled bool
		values  []float32
		clr     color.RGBA
	}{
		{s.Show.Incident, f.Incident, IncidentColor},
		{s.Show.Reflected, f.Reflected, ReflectedColor},
		{s.Show.Standing, f.Standing, StandingColor},
	}
	for _, tr := range traces {
		if !tr.enabled {
			continue
		}
		for i, v := range tr.values {
			px := int(math.Round(f.X(i)))
			if px >= c.Width {
				break
			}
			py := int(math.Round(centerY - float64(v)))
			c.Stamp(px, py, dotFootprint, tr.clr)
		}
	}

	bw := BoundaryWidth(s.Reflection)
	bx := c.Width - BoundaryInset
	c.FillRect(bx-bw/2, 0, bx-bw/2+bw, c.Height, BoundaryColor(s.Reflection))
}
