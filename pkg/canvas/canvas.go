// Package canvas provides the pixel grid a renderer paints into and its
// encoder to the plain-text PPM (P3) bitmap format.
package canvas

import "github.com/lokyhark/ray-tracer-challenge/pkg/color"

// Canvas is a fixed-size grid of colors addressed by (x, y), with x
// increasing rightward and y increasing downward. Pixels are stored in
// row-major order.
//
// A Canvas is not safe for concurrent mutation. Multiple writers must
// coordinate externally, for example by painting disjoint pixel ranges.
type Canvas struct {
	width  int
	height int
	pixels []color.Color
}

// New creates a canvas of the given size with every pixel black.
func New(width, height int) *Canvas {
	return WithColor(width, height, color.Black())
}

// WithColor creates a canvas of the given size with every pixel set to
// the fill color.
func WithColor(width, height int, fill color.Color) *Canvas {
	pixels := make([]color.Color, width*height)
	for i := range pixels {
		pixels[i] = fill
	}
	return &Canvas{width: width, height: height, pixels: pixels}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Get returns the color at (x, y). The second return is false when the
// coordinates fall outside the grid; computed pixel positions routinely
// do, so this is not an error.
func (c *Canvas) Get(x, y int) (color.Color, bool) {
	if !c.inBounds(x, y) {
		return color.Color{}, false
	}
	return c.pixels[y*c.width+x], true
}

// Pixel returns a mutable reference to the color at (x, y), or nil when
// the coordinates fall outside the grid.
func (c *Canvas) Pixel(x, y int) *color.Color {
	if !c.inBounds(x, y) {
		return nil
	}
	return &c.pixels[y*c.width+x]
}

// Set writes the color at (x, y) and reports whether the coordinates
// were inside the grid. Out-of-range writes are silently dropped.
func (c *Canvas) Set(x, y int, col color.Color) bool {
	p := c.Pixel(x, y)
	if p == nil {
		return false
	}
	*p = col
	return true
}

// Pixels returns the backing pixel slice in row-major order: the pixel
// at (x, y) is at index y*Width()+x.
func (c *Canvas) Pixels() []color.Color {
	return c.pixels
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}
