package render

import "github.com/gdamore/tcell/v2"

// HalfBlock is the upper half block glyph: foreground paints the upper pixel, background the lower
const HalfBlock = '▀'

// Flush writes the canvas to the screen starting at terminal row top
// Each cell carries two vertically stacked pixels
func Flush(screen tcell.Screen, c *Canvas, top int) {
	rows := (c.Height + 1) / 2
	for cy := 0; cy < rows; cy++ {
		upper := cy * 2
		for x := 0; x < c.Width; x++ {
			fg := c.At(x, upper)
			bg := c.At(x, upper+1)
			style := tcell.StyleDefault.Foreground(RGBToTcell(fg)).Background(RGBToTcell(bg))
			screen.SetContent(x, top+cy, HalfBlock, nil, style)
		}
	}
}
