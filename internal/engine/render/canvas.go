// Package render composites projected particles, hubs and connection
// lines onto a 2D raster surface in back-to-front order.
package render

import (
	"fmt"
	"strconv"
)

// Color is an RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa". Malformed
// input returns the fallback, never an error; the configuration
// surface must not fail a frame over a bad color string.
func ParseHexColor(s string, fallback Color) Color {
	if len(s) == 0 || s[0] != '#' {
		return fallback
	}
	hex := s[1:]
	var r, g, b, a uint64
	var err error
	parse := func(part string) (uint64, error) {
		return strconv.ParseUint(part, 16, 8)
	}
	a = 255
	switch len(hex) {
	case 3:
		if _, e := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); e != nil {
			return fallback
		}
		r, g, b = r*17, g*17, b*17
	case 8:
		if a, err = parse(hex[6:8]); err != nil {
			return fallback
		}
		fallthrough
	case 6:
		if r, err = parse(hex[0:2]); err != nil {
			return fallback
		}
		if g, err = parse(hex[2:4]); err != nil {
			return fallback
		}
		if b, err = parse(hex[4:6]); err != nil {
			return fallback
		}
	default:
		return fallback
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Canvas is the immediate-mode raster surface the renderer draws to.
// Coordinates are pixels with the origin at the top left.
type Canvas interface {
	// Size returns the viewport dimensions in pixels.
	Size() (width, height int)
	// Clear fills the whole surface with one color.
	Clear(c Color)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// StrokeLine strokes a line segment with the given width.
	StrokeLine(x1, y1, x2, y2, width float64, c Color)
}
