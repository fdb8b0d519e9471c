package render

import "math"

// Canvas is a pixel color buffer with a depth buffer, two pixel rows per terminal row
type Canvas struct {
	Width, Height int
	Pix           []RGB
	Depth         []float64 // NDC depth, smaller is nearer
}

// NewCanvas allocates a cleared canvas
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize reallocates buffers when dimensions change, contents are undefined until Clear
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.Width && height == c.Height && c.Pix != nil {
		return
	}
	c.Width, c.Height = width, height
	c.Pix = make([]RGB, width*height)
	c.Depth = make([]float64, width*height)
}

// Clear fills color with bg and depth with +Inf
func (c *Canvas) Clear(bg RGB) {
	for i := range c.Pix {
		c.Pix[i] = bg
		c.Depth[i] = math.Inf(1)
	}
}

// At returns the pixel color, background black outside the canvas
func (c *Canvas) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return RGBBlack
	}
	return c.Pix[y*c.Width+x]
}

// Plot depth-tests and writes one pixel
// alpha < 1 blends over the existing color and leaves depth untouched
func (c *Canvas) Plot(x, y int, z float64, col RGB, alpha float64) bool {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return false
	}
	i := y*c.Width + x
	if z >= c.Depth[i] {
		return false
	}
	if alpha >= 1 {
		c.Pix[i] = col
		c.Depth[i] = z
		return true
	}
	c.Pix[i] = c.Pix[i].Blend(col, alpha)
	return true
}
