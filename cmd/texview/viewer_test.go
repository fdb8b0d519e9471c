package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/texture"
)

// solidViewer uploads a w x h texture of one color
func solidViewer(t *testing.T, w, h int, r, g, b byte) *Viewer {
	t.Helper()
	pix := make([]byte, 0, w*h*3)
	for i := 0; i < w*h; i++ {
		pix = append(pix, r, g, b)
	}
	reg := texture.NewRegistry()
	handle, err := reg.Upload(texture.Image{Pix: pix, Width: w, Height: h, Channels: 3})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	tex, _ := reg.Get(handle)
	return NewViewer("solid.png", tex)
}

func TestViewerAdjustLevel(t *testing.T) {
	v := solidViewer(t, 4, 2, 255, 0, 0)
	if v.Levels() != 3 {
		t.Fatalf("Levels = %d, want 3", v.Levels())
	}

	tests := []struct {
		delta   int
		want    int
		changed bool
	}{
		{-1, 0, false},
		{1, 1, true},
		{5, 2, true},
		{1, 2, false},
		{-2, 0, true},
	}
	for i, tt := range tests {
		if got := v.AdjustLevel(tt.delta); got != tt.changed {
			t.Errorf("step %d: AdjustLevel(%d) = %v, want %v", i, tt.delta, got, tt.changed)
		}
		if v.Level != tt.want {
			t.Errorf("step %d: Level = %d, want %d", i, v.Level, tt.want)
		}
	}
}

func TestViewerPaintFit(t *testing.T) {
	v := solidViewer(t, 4, 2, 255, 0, 0)
	c := render.NewCanvas(10, 4)
	v.Paint(c)

	red := render.RGB{R: 255}
	// 4x2 scales by 2 to 8x4, centered with one pixel margin on each side
	if got := c.At(0, 0); got != render.RGBSpace {
		t.Errorf("margin pixel = %v, want background", got)
	}
	if got := c.At(1, 0); got != red {
		t.Errorf("left edge pixel = %v, want %v", got, red)
	}
	if got := c.At(8, 3); got != red {
		t.Errorf("right edge pixel = %v, want %v", got, red)
	}
	if got := c.At(9, 3); got != render.RGBSpace {
		t.Errorf("margin pixel = %v, want background", got)
	}
}

func TestViewerPaintActual(t *testing.T) {
	v := solidViewer(t, 4, 2, 0, 255, 0)
	v.ToggleViewMode()
	if v.ViewMode != ViewActual {
		t.Fatalf("ViewMode = %v, want Actual", v.ViewMode)
	}

	c := render.NewCanvas(10, 4)
	v.Paint(c)

	green := render.RGB{G: 255}
	painted := 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.At(x, y) == green {
				painted++
			}
		}
	}
	if painted != 8 {
		t.Errorf("painted %d pixels, want 8", painted)
	}
	if got := c.At(3, 1); got != green {
		t.Errorf("top-left texel pixel = %v, want %v", got, green)
	}
}

func TestViewerStatus(t *testing.T) {
	v := solidViewer(t, 4, 2, 255, 255, 255)
	v.AdjustLevel(1)
	got := v.Status()
	for _, want := range []string{"solid.png", "4x2", "level 1/2 (2x1)", "Fit"} {
		if !strings.Contains(got, want) {
			t.Errorf("Status() = %q, missing %q", got, want)
		}
	}
}

func TestHandleKey(t *testing.T) {
	v := solidViewer(t, 4, 4, 0, 0, 255)

	key := func(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

	if handleKey(key('+'), v) != actionNone || v.Level != 1 {
		t.Errorf("'+' left level %d, want 1", v.Level)
	}
	if handleKey(key('f'), v); v.ViewMode != ViewActual {
		t.Errorf("'f' left mode %v, want Actual", v.ViewMode)
	}
	if handleKey(key('0'), v); v.Level != 0 {
		t.Errorf("'0' left level %d, want 0", v.Level)
	}
	if handleKey(key('s'), v); v.ShowStatus {
		t.Error("'s' did not hide status")
	}
	if handleKey(key('q'), v) != actionQuit {
		t.Error("'q' did not quit")
	}
	if handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), v) != actionQuit {
		t.Error("Esc did not quit")
	}
}

func TestRenderFrame(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 3)

	v := solidViewer(t, 4, 4, 255, 0, 0)
	renderFrame(screen, v, render.NewCanvas(0, 0))

	if r, _, _, _ := screen.GetContent(5, 0); r != render.HalfBlock {
		t.Errorf("canvas cell rune = %q, want half block", r)
	}
	if r, _, _, _ := screen.GetContent(1, 2); r != 's' {
		t.Errorf("status cell rune = %q, want 's'", r)
	}
}
