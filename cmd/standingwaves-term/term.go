package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"standingwaves/internal/clock"
	"standingwaves/internal/controls"
	"standingwaves/internal/raster"
	"standingwaves/internal/wave"
)

const (
	// domainWidth and domainHeight are the logical canvas the columns and
	// rows are mapped onto, the same 800×300 area the window frontend draws.
	domainWidth  = 800
	domainHeight = 300
	statusRows   = 3
	minPlotRows  = 3
)

var (
	incidentStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	reflectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	standingStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	nodeStyle      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	fixedEndStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	freeEndStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// cellScreen is the part of tcell.Screen the renderer draws through.
type cellScreen interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// termApp owns the simulation state for the terminal frontend.
type termApp struct {
	sched  *clock.FrameScheduler
	panel  *controls.Panel
	tracer wave.Tracer
	frame  *wave.Frame
}

func newTermApp(params wave.Params, refl wave.Reflection, tracer wave.Tracer) *termApp {
	sched := clock.NewFrameScheduler()
	return &termApp{
		sched:  sched,
		panel:  controls.NewPanel(params, refl, clock.New(sched)),
		tracer: tracer,
		frame:  wave.NewFrame(0, 1),
	}
}

// tick fires the pending clock callback and resamples for the given width.
func (a *termApp) tick(cols int) error {
	a.sched.Fire()
	return a.sample(cols)
}

func (a *termApp) sample(cols int) error {
	if cols < 1 {
		return nil
	}
	a.frame.Resize(cols, float64(domainWidth)/float64(cols))
	p := a.panel
	return a.tracer.Sample(a.frame, p.Params, p.Reflection, p.Clock.Time(), p.Show)
}

// handleKey maps a key onto the control panel and reports whether to quit.
func (a *termApp) handleKey(key tcell.Key, r rune) bool {
	p := a.panel
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		p.Select(p.Selected.Next())
	case tcell.KeyBacktab:
		p.Select(p.Selected.Prev())
	case tcell.KeyRight:
		p.Step()
	case tcell.KeyUp:
		p.Nudge(1)
	case tcell.KeyDown:
		p.Nudge(-1)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case ' ':
			p.Clock.TogglePlay()
		case 'n', '.':
			p.Step()
		case 'r':
			p.Clock.Reset()
		case 'f':
			p.ToggleReflection()
		case '1':
			p.ToggleIncident()
		case '2':
			p.ToggleReflected()
		case '3':
			p.ToggleStanding()
		case 'k':
			p.ToggleNodes()
		case 's':
			p.ToggleSlowMotion()
		case 'm':
			p.ToggleStepMode()
		case '+', '=':
			p.Nudge(1)
		case '-':
			p.Nudge(-1)
		}
	}
	return false
}

// draw paints the current frame. A nil screen or one too small to hold the
// plot is skipped.
func (a *termApp) draw(scr cellScreen) {
	if scr == nil {
		return
	}
	cols, rows := scr.Size()
	plotRows := rows - statusRows
	if cols < 2 || plotRows < minPlotRows {
		return
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			scr.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}

	p := a.panel
	f := a.frame
	spacing := float64(domainWidth) / float64(cols)

	if p.ShowNodes {
		for _, x := range wave.Nodes(p.Params, p.Reflection, domainWidth-1) {
			col := int(math.Round(x / spacing))
			if col >= cols {
				continue
			}
			for y := 0; y < plotRows; y++ {
				scr.SetContent(col, y, '┆', nil, nodeStyle)
			}
		}
	}

	traces := []struct {
		enabled bool
		values  []float32
		glyph   rune
		style   tcell.Style
	}{
		{p.Show.Incident, f.Incident, '·', incidentStyle},
		{p.Show.Reflected, f.Reflected, '·', reflectedStyle},
		{p.Show.Standing, f.Standing, '•', standingStyle},
	}
	for _, tr := range traces {
		if !tr.enabled {
			continue
		}
		for col, v := range tr.values {
			if col >= cols {
				break
			}
			if row, ok := plotRow(float64(v), plotRows); ok {
				scr.SetContent(col, row, tr.glyph, nil, tr.style)
			}
		}
	}

	boundary := boundaryColumn(cols)
	glyph, style := '│', freeEndStyle
	if p.Reflection == wave.Fixed {
		glyph, style = '┃', fixedEndStyle
	}
	for y := 0; y < plotRows; y++ {
		scr.SetContent(boundary, y, glyph, nil, style)
	}

	for i, line := range p.Summary() {
		putString(scr, 0, plotRows+i, cols, line, statusStyle)
	}
}

// plotRow maps a displacement onto a terminal row, positive values upward.
func plotRow(v float64, plotRows int) (int, bool) {
	y := (float64(domainHeight)/2 - v) * float64(plotRows) / domainHeight
	row := int(math.Floor(y))
	if row < 0 || row >= plotRows {
		return 0, false
	}
	return row, true
}

// boundaryColumn places the boundary marker at the same inset as the window
// frontend, clamped to the last column.
func boundaryColumn(cols int) int {
	col := int(math.Round(float64(domainWidth-raster.BoundaryInset) * float64(cols) / domainWidth))
	if col > cols-1 {
		col = cols - 1
	}
	return col
}

func putString(scr cellScreen, x, y, maxX int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= maxX {
			return
		}
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}
