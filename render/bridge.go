package render

import "github.com/gdamore/tcell/v2"

// TcellToRGB converts tcell.Color to RGB
// Treats ColorDefault as the canvas background
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RGBSpace
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// RGBToTcell converts RGB to tcell.Color
// Terminals without truecolor get the nearest palette entry from tcell itself
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
