// Package raster draws sampled wave traces into an RGBA pixel buffer that a
// frontend uploads in one call.
package raster

import "image/color"

// Canvas is a row-major RGBA8 pixel buffer.
type Canvas struct {
	Width, Height int
	Pix           []byte
}

// NewCanvas allocates a canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{Width: width, Height: height, Pix: make([]byte, width*height*4)}
}

// Clear fills every pixel with c.
func (c *Canvas) Clear(clr color.RGBA) {
	for i := 0; i+3 < len(c.Pix); i += 4 {
		c.Pix[i] = clr.R
		c.Pix[i+1] = clr.G
		c.Pix[i+2] = clr.B
		c.Pix[i+3] = clr.A
	}
}

// At returns the pixel at (x, y); out of range reads are transparent.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return color.RGBA{}
	}
	i := (y*c.Width + x) * 4
	return color.RGBA{c.Pix[i], c.Pix[i+1], c.Pix[i+2], c.Pix[i+3]}
}

// Blend composites clr over the pixel at (x, y) using clr.A as coverage.
// Colors are non-premultiplied, as in a canvas fillStyle.
func (c *Canvas) Blend(x, y int, clr color.RGBA) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	i := (y*c.Width + x) * 4
	a := uint32(clr.A)
	if a == 255 {
		c.Pix[i], c.Pix[i+1], c.Pix[i+2], c.Pix[i+3] = clr.R, clr.G, clr.B, 255
		return
	}
	inv := 255 - a
	c.Pix[i] = byte((uint32(clr.R)*a + uint32(c.Pix[i])*inv + 127) / 255)
	c.Pix[i+1] = byte((uint32(clr.G)*a + uint32(c.Pix[i+1])*inv + 127) / 255)
	c.Pix[i+2] = byte((uint32(clr.B)*a + uint32(c.Pix[i+2])*inv + 127) / 255)
	c.Pix[i+3] = byte(a + uint32(c.Pix[i+3])*inv/255)
}

// FillRect blends clr over the clipped rectangle [x0,x1) × [y0,y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 int, clr color.RGBA) {
	x0 = clampCoord(x0, 0, c.Width)
	x1 = clampCoord(x1, 0, c.Width)
	y0 = clampCoord(y0, 0, c.Height)
	y1 = clampCoord(y1, 0, c.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Blend(x, y, clr)
		}
	}
}

// Stamp blends a dot footprint centred on (cx, cy).
func (c *Canvas) Stamp(cx, cy int, fp []gridOffset, clr color.RGBA) {
	for _, o := range fp {
		c.Blend(cx+o.dx, cy+o.dy, clr)
	}
}

// DrawLine plots a line segment using Bresenham's integer algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, clr color.RGBA) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Blend(x0, y0, clr)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
