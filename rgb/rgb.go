// Package rgb provides the color value stored for each LED of the matrix.
package rgb

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a raw 24-bit RGB value. Channels are not gamma corrected.
type Color struct {
	R, G, B uint8
}

// FromHSV returns the Color for the given HSV coordinates.
// See Color.HSV for the ranges.
func FromHSV(hue, sat float64, val int) Color {
	var c Color
	c.HSV(hue, sat, val)
	return c
}

// Set assigns the three channels.
func (c *Color) Set(r, g, b uint8) {
	c.R = r
	c.G = g
	c.B = b
}

// Copy duplicates the channels of other.
func (c *Color) Copy(other Color) {
	c.R = other.R
	c.G = other.G
	c.B = other.B
}

// HSV overwrites the channels from HSV coordinates.
//
// hue is in [0.0, 1.0) for a full rotation, sat is in [0.0, 1.0] and val is an
// intensity in [0, 255]. Values outside these ranges are not rejected; they
// go through the same integer arithmetic and are masked to a byte.
func (c *Color) HSV(hue, sat float64, val int) {
	h := int(math.Floor(hue*360)) % 360
	if h < 0 {
		h += 360
	}
	rem := h % 60

	// Saturation as 8-bit fixed point, the rest stays integer.
	s := int(math.Floor(sat * 256))
	p := val * (256 - s) >> 8
	q := val * (256 - floorDiv(rem*s, 60)) >> 8
	t := val * (256 - floorDiv((60-rem)*s, 60)) >> 8

	switch {
	case h < 60:
		c.setInts(val, t, p)
	case h < 120:
		c.setInts(q, val, p)
	case h < 180:
		c.setInts(p, val, t)
	case h < 240:
		c.setInts(p, q, val)
	case h < 300:
		c.setInts(t, p, val)
	default:
		c.setInts(val, p, q)
	}
}

func (c *Color) setInts(r, g, b int) {
	c.R = uint8(r)
	c.G = uint8(g)
	c.B = uint8(b)
}

// floorDiv rounds toward negative infinity, matching a right shift.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// RGBA implements color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xFFFF
}

// String returns a compact representation of the channels.
func (c Color) String() string {
	return fmt.Sprintf("rgb.Color{%d, %d, %d}", c.R, c.G, c.B)
}

// toColor converts any color.Color to Color, dropping alpha after
// premultiplication.
func toColor(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Model converts colors to Color.
var Model = color.ModelFunc(toColor)
