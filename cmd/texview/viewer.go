package main

import (
	"fmt"

	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/texture"
)

// ViewMode determines how the selected mip level is scaled onto the canvas
type ViewMode uint8

const (
	ViewFit    ViewMode = iota // Scale to fill canvas, preserving aspect
	ViewActual                 // One texel per pixel, cropped at the edges
)

// String returns human-readable mode name
func (m ViewMode) String() string {
	switch m {
	case ViewFit:
		return "Fit"
	case ViewActual:
		return "Actual"
	default:
		return "Unknown"
	}
}

// Viewer holds inspection state for one uploaded texture
type Viewer struct {
	Name       string
	Tex        *texture.Texture
	Level      int
	ViewMode   ViewMode
	ShowStatus bool
}

// NewViewer creates a viewer at mip level 0 in fit mode
func NewViewer(name string, tex *texture.Texture) *Viewer {
	return &Viewer{
		Name:       name,
		Tex:        tex,
		ViewMode:   ViewFit,
		ShowStatus: true,
	}
}

// Levels returns the length of the mipmap chain
func (v *Viewer) Levels() int {
	return len(v.Tex.Levels)
}

// AdjustLevel moves through the mip chain, returns false when already at the end
func (v *Viewer) AdjustLevel(delta int) bool {
	next := min(max(v.Level+delta, 0), v.Levels()-1)
	if next == v.Level {
		return false
	}
	v.Level = next
	return true
}

// ToggleViewMode switches between fit and actual size
func (v *Viewer) ToggleViewMode() {
	if v.ViewMode == ViewFit {
		v.ViewMode = ViewActual
	} else {
		v.ViewMode = ViewFit
	}
}

// levelSize returns the dimensions of the selected level
func (v *Viewer) levelSize() (int, int) {
	if v.Levels() == 0 {
		return 0, 0
	}
	b := v.Tex.Levels[v.Level].Bounds()
	return b.Dx(), b.Dy()
}

// drawSize returns the on-canvas image size for the current mode
func (v *Viewer) drawSize(canvasW, canvasH int) (int, int) {
	lw, lh := v.levelSize()
	if lw == 0 || lh == 0 {
		return 0, 0
	}
	if v.ViewMode == ViewActual {
		return lw, lh
	}
	scale := min(float64(canvasW)/float64(lw), float64(canvasH)/float64(lh))
	return max(1, int(float64(lw)*scale)), max(1, int(float64(lh)*scale))
}

// Paint samples the selected level into the canvas, centered
func (v *Viewer) Paint(c *render.Canvas) {
	c.Clear(render.RGBSpace)
	dw, dh := v.drawSize(c.Width, c.Height)
	if dw == 0 || dh == 0 {
		return
	}

	ox := (c.Width - dw) / 2
	oy := (c.Height - dh) / 2
	lod := float64(v.Level)

	for y := 0; y < c.Height; y++ {
		iy := y - oy
		if iy < 0 || iy >= dh {
			continue
		}
		tv := (float64(iy) + 0.5) / float64(dh)
		for x := 0; x < c.Width; x++ {
			ix := x - ox
			if ix < 0 || ix >= dw {
				continue
			}
			tu := (float64(ix) + 0.5) / float64(dw)
			c.Plot(x, y, 0, render.FromColorful(v.Tex.Sample(tu, tv, lod)), 1)
		}
	}
}

// Status formats the bottom status line
func (v *Viewer) Status() string {
	w, h := v.Tex.Size()
	lw, lh := v.levelSize()
	return fmt.Sprintf(" %s | %dx%d | level %d/%d (%dx%d) | %s",
		v.Name, w, h, v.Level, v.Levels()-1, lw, lh, v.ViewMode)
}
