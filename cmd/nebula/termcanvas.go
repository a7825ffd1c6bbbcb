package main

import (
	gomath "math"

	"github.com/gdamore/tcell/v2"

	"github.com/lunarc/nebula/internal/engine/render"
)

// termCanvas is a render.Canvas over a tcell screen. Each character
// cell holds two vertically stacked pixels drawn with the upper
// half-block rune, doubling the effective vertical resolution.
type termCanvas struct {
	screen tcell.Screen
	w, h   int // pixel dimensions: cols × 2·rows
	pixels []render.Color
}

func newTermCanvas(screen tcell.Screen) *termCanvas {
	c := &termCanvas{screen: screen}
	c.resize()
	return c
}

func (c *termCanvas) resize() {
	cols, rows := c.screen.Size()
	c.w = cols
	c.h = rows * 2
	c.pixels = make([]render.Color, c.w*c.h)
}

func (c *termCanvas) Size() (int, int) {
	return c.w, c.h
}

func (c *termCanvas) Clear(col render.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// blend composites src over the existing pixel by alpha.
func (c *termCanvas) blend(x, y int, col render.Color) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	i := y*c.w + x
	dst := c.pixels[i]
	a := col.A
	c.pixels[i] = render.Color{
		R: col.R*a + dst.R*(1-a),
		G: col.G*a + dst.G*(1-a),
		B: col.B*a + dst.B*(1-a),
		A: 1,
	}
}

func (c *termCanvas) FillRect(x, y, w, h float64, col render.Color) {
	x0 := int(gomath.Floor(x))
	y0 := int(gomath.Floor(y))
	x1 := int(gomath.Ceil(x + w))
	y1 := int(gomath.Ceil(y + h))
	if x1 == x0 {
		x1 = x0 + 1
	}
	if y1 == y0 {
		y1 = y0 + 1
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, col)
		}
	}
}

func (c *termCanvas) StrokeLine(x1, y1, x2, y2, _ float64, col render.Color) {
	// Bresenham; stroke width below one pixel is drawn one pixel wide.
	ix1, iy1 := int(gomath.Round(x1)), int(gomath.Round(y1))
	ix2, iy2 := int(gomath.Round(x2)), int(gomath.Round(y2))
	dx := abs(ix2 - ix1)
	dy := -abs(iy2 - iy1)
	sx, sy := 1, 1
	if ix1 > ix2 {
		sx = -1
	}
	if iy1 > iy2 {
		sy = -1
	}
	err := dx + dy
	for {
		c.blend(ix1, iy1, col)
		if ix1 == ix2 && iy1 == iy2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix1 += sx
		}
		if e2 <= dx {
			err += dx
			iy1 += sy
		}
	}
}

// Flush pushes the pixel buffer to the terminal, pairing vertically
// adjacent pixels into one half-block cell.
func (c *termCanvas) Flush() {
	rows := c.h / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < c.w; col++ {
			upper := c.pixels[(row*2)*c.w+col]
			lower := c.pixels[(row*2+1)*c.w+col]
			style := tcell.StyleDefault.
				Foreground(toTcell(upper)).
				Background(toTcell(lower))
			c.screen.SetContent(col, row, '▀', nil, style)
		}
	}
	c.screen.Show()
}

func toTcell(c render.Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(clamp255(c.R*255)),
		int32(clamp255(c.G*255)),
		int32(clamp255(c.B*255)),
	)
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
