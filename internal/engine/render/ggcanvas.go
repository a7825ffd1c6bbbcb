package render

import (
	"github.com/gogpu/gg"
)

// GGCanvas adapts a gg drawing context to the Canvas interface. The
// context renders in software by default, so the canvas works headless.
type GGCanvas struct {
	ctx *gg.Context
}

// NewGGCanvas creates a canvas of the given pixel size. Close releases
// the underlying context.
func NewGGCanvas(width, height int) *GGCanvas {
	ctx := gg.NewContext(width, height)
	ctx.SetLineCap(gg.LineCapRound)
	return &GGCanvas{ctx: ctx}
}

// Context exposes the underlying gg context for image access and
// PNG export.
func (c *GGCanvas) Context() *gg.Context {
	return c.ctx
}

// Close releases the drawing context.
func (c *GGCanvas) Close() error {
	return c.ctx.Close()
}

func (c *GGCanvas) Size() (int, int) {
	return c.ctx.Width(), c.ctx.Height()
}

func (c *GGCanvas) Clear(col Color) {
	c.ctx.ClearWithColor(gg.RGBA{R: col.R, G: col.G, B: col.B, A: col.A})
}

func (c *GGCanvas) FillRect(x, y, w, h float64, col Color) {
	c.ctx.SetRGBA(col.R, col.G, col.B, col.A)
	c.ctx.DrawRectangle(x, y, w, h)
	_ = c.ctx.Fill()
}

func (c *GGCanvas) StrokeLine(x1, y1, x2, y2, width float64, col Color) {
	c.ctx.SetRGBA(col.R, col.G, col.B, col.A)
	c.ctx.SetLineWidth(width)
	c.ctx.DrawLine(x1, y1, x2, y2)
	_ = c.ctx.Stroke()
}
