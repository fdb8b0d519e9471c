package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/scene"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	canvas *Canvas
	raster *Rasterizer
	hud    bool
}

// NewTerminalRenderer creates a renderer drawing into screen
func NewTerminalRenderer(screen tcell.Screen, textures TextureSource, hud bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		canvas: NewCanvas(0, 0),
		raster: NewRasterizer(textures),
		hud:    hud,
	}
}

// HUDRows returns the terminal rows reserved below the canvas
func (r *TerminalRenderer) HUDRows() int {
	if r.hud {
		return constants.HUDRows
	}
	return 0
}

// Render rasterizes the frame at the session viewport and presents it
func (r *TerminalRenderer) Render(f scene.Frame, s *engine.Session) error {
	r.canvas.Resize(s.Width, s.Height)
	r.canvas.Clear(RGBSpace)
	r.raster.Draw(r.canvas, f, s.Projection)

	r.screen.Clear()
	Flush(r.screen, r.canvas, 0)

	if r.hud {
		width, height := r.screen.Size()
		if height >= constants.HUDRows {
			drawHUD(r.screen, s, height-constants.HUDRows, width)
		}
	}

	r.screen.Show()
	return nil
}
