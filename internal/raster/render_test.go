package raster

import (
	"image/color"
	"testing"

	"standingwaves/internal/wave"
)

func sampledFrame(t *testing.T, width int, r wave.Reflection, tm float64) *wave.Frame {
	t.Helper()
	f := wave.NewFrame(width, 1)
	if err := wave.NewSampler(1).Sample(f, wave.DefaultParams(), r, tm, wave.AllTraces()); err != nil {
		t.Fatalf("Sample: %v", err)
	}
	return f
}

func TestRenderStandingTrace(t *testing.T) {
	c := NewCanvas(800, 300)
	f := sampledFrame(t, 800, wave.Fixed, 0)
	Render(c, f, Scene{Params: wave.DefaultParams(), Reflection: wave.Fixed, Show: wave.AllTraces()})
	// λ/4 is an antinode of the fixed-end pattern: 2A above the centre line.
	if got := c.At(50, 50); got != StandingColor {
		t.Errorf("pixel at antinode crest = %v, want %v", got, StandingColor)
	}
	if got := c.At(400, 0); got != Background {
		t.Errorf("top row = %v, want background", got)
	}
}

func TestRenderBoundaryMarker(t *testing.T) {
	tests := []struct {
		r     wave.Reflection
		cols  []int
		clear []int
		clr   color.RGBA
	}{
		{wave.Fixed, []int{788, 789, 790, 791}, []int{787, 792}, FixedEndColor},
		{wave.Free, []int{789, 790}, []int{788, 791}, FreeEndColor},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			c := NewCanvas(800, 300)
			f := sampledFrame(t, 800, tt.r, 0)
			Render(c, f, Scene{Params: wave.DefaultParams(), Reflection: tt.r, Show: wave.AllTraces()})
			for _, x := range tt.cols {
				if got := c.At(x, 0); got != tt.clr {
					t.Errorf("column %d = %v, want %v", x, got, tt.clr)
				}
			}
			for _, x := range tt.clear {
				if got := c.At(x, 0); got != Background {
					t.Errorf("column %d = %v, want background", x, got)
				}
			}
		})
	}
}

func TestRenderRespectsToggles(t *testing.T) {
	c := NewCanvas(800, 300)
	f := sampledFrame(t, 800, wave.Fixed, 0.3)
	Render(c, f, Scene{Params: wave.DefaultParams(), Reflection: wave.Fixed, Show: wave.Toggles{Incident: true}})
	reddish, dark := 0, 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < 780; x++ {
			p := c.At(x, y)
			if p.R > p.G+64 {
				reddish++
			}
			if p.R < 100 && p.G < 100 && p.B < 100 {
				dark++
			}
		}
	}
	if reddish == 0 {
		t.Error("incident trace not drawn")
	}
	if dark != 0 {
		t.Errorf("%d dark pixels drawn with the standing trace disabled", dark)
	}
}

func TestRenderNodes(t *testing.T) {
	c := NewCanvas(800, 300)
	f := sampledFrame(t, 800, wave.Fixed, 0)
	Render(c, f, Scene{Params: wave.DefaultParams(), Reflection: wave.Fixed, ShowNodes: true})
	for _, x := range []int{0, 100, 200, 700} {
		if got := c.At(x, 10); got == Background {
			t.Errorf("no node marker at x=%d", x)
		}
	}
	if got := c.At(150, 150); got != Background {
		t.Errorf("antinode marker spans the whole height at x=150: %v", got)
	}
}

func TestRenderSkipsMissingSurface(t *testing.T) {
	f := sampledFrame(t, 10, wave.Free, 0)
	Render(nil, f, Scene{Show: wave.AllTraces()})
	c := NewCanvas(10, 10)
	Render(c, nil, Scene{Show: wave.AllTraces()})
	Render(NewCanvas(0, 0), f, Scene{Show: wave.AllTraces()})
	if got := c.At(0, 0); got != (color.RGBA{}) {
		t.Errorf("nil frame drew %v", got)
	}
}

func TestBlend(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Clear(Background)
	c.Blend(0, 0, IncidentColor)
	if got := c.At(0, 0); got != (color.RGBA{255, 127, 127, 255}) {
		t.Errorf("half red over white = %v", got)
	}
	c.Blend(5, 5, StandingColor)
	c.Blend(1, 0, StandingColor)
	if got := c.At(1, 0); got != StandingColor {
		t.Errorf("opaque blend = %v", got)
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(1, 8, 7, 2, StandingColor)
	for _, p := range [][2]int{{1, 8}, {4, 5}, {7, 2}} {
		if got := c.At(p[0], p[1]); got != StandingColor {
			t.Errorf("pixel %v = %v, want line color", p, got)
		}
	}
}

func TestFootprint(t *testing.T) {
	if got := len(precomputeFootprint(2)); got != 13 {
		t.Errorf("radius 2 footprint has %d cells, want 13", got)
	}
	if got := len(precomputeFootprint(0)); got != 1 {
		t.Errorf("radius 0 footprint has %d cells, want 1", got)
	}
}
