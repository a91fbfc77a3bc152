// Package color defines the RGB color triple used by the canvas and its
// conversion to 8-bit channels.
package color

import (
	"math"

	"github.com/lokyhark/ray-tracer-challenge/pkg/scalar"
)

// Color is an (r, g, b) triple. Components are unconstrained during
// arithmetic; additive and multiplicative blending may push them below 0
// or above 1. They are only clamped at the moment of 8-bit encoding.
type Color struct {
	R, G, B float64
}

// New creates a color from (red, green, blue) components.
func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the color all canvases are initially filled with.
func Black() Color { return Color{} }

// White returns the color (1, 1, 1).
func White() Color { return Color{R: 1, G: 1, B: 1} }

// Red returns the color (1, 0, 0).
func Red() Color { return Color{R: 1} }

// Green returns the color (0, 1, 0).
func Green() Color { return Color{G: 1} }

// Blue returns the color (0, 0, 1).
func Blue() Color { return Color{B: 1} }

// Add returns the componentwise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the componentwise difference of two colors.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale returns the color with every component multiplied by k.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// Mul returns the Hadamard (componentwise) product of two colors, used
// for blending.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Eq reports componentwise epsilon-tolerant equality.
func (c Color) Eq(o Color) bool {
	return scalar.Eq(c.R, o.R) && scalar.Eq(c.G, o.G) && scalar.Eq(c.B, o.B)
}

// Bytes converts the color to three 8-bit channels. Each component is
// clamped to [0, 1], multiplied by 255, and rounded to the nearest
// integer with ties away from zero.
func (c Color) Bytes() (r, g, b uint8) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B)
}

func channelByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(v * 255))
}
