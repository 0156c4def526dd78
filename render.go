package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"standingwaves/internal/raster"
)

var hudBackground = color.RGBA{24, 26, 32, 255}

// Draw renders the wave traces, boundary marker and the HUD strip.
func (g *Game) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	p := g.panel
	raster.Render(g.canvas, g.frame, raster.Scene{
		Params:     p.Params,
		Reflection: p.Reflection,
		Show:       p.Show,
		ShowNodes:  p.ShowNodes,
	})
	g.canvasImg.WritePixels(g.canvas.Pix)

	screen.Fill(hudBackground)
	screen.DrawImage(g.canvasImg, &ebiten.DrawImageOptions{})

	y := canvasHeight + hudPadding
	for _, line := range p.Summary() {
		ebitenutil.DebugPrintAt(screen, line, hudPadding, y)
		y += hudLineHeight
	}
	ebitenutil.DebugPrintAt(screen, helpLine, hudPadding, y)
	y += hudLineHeight

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f  sampler: %s  sample: %.3f ms  frames: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.tracer.Name(),
			g.lastSampleDuration.Seconds()*1000, g.sched.Frames())
		ebitenutil.DebugPrintAt(screen, msg, hudPadding, y)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return canvasWidth, canvasHeight + hudHeight }
