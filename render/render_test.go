package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/view"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestCanvasPlotDepth(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(RGBBlack)

	red, blue := RGB{255, 0, 0}, RGB{0, 0, 255}
	if !c.Plot(1, 1, 0.5, red, 1) {
		t.Fatal("plot into cleared canvas failed")
	}
	if c.Plot(1, 1, 0.7, blue, 1) {
		t.Error("farther fragment passed depth test")
	}
	if !c.Plot(1, 1, 0.2, blue, 1) || c.At(1, 1) != blue {
		t.Errorf("nearer fragment not written, got %v", c.At(1, 1))
	}
	if c.Plot(-1, 0, 0, red, 1) || c.Plot(4, 0, 0, red, 1) {
		t.Error("out of bounds plot reported success")
	}
}

func TestCanvasTranslucentKeepsDepth(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Clear(RGBBlack)

	c.Plot(0, 0, 0.5, RGB{200, 200, 200}, 0.5)
	if got := c.At(0, 0); got != (RGB{100, 100, 100}) {
		t.Errorf("blended color = %v, want {100 100 100}", got)
	}
	// Depth untouched: an opaque fragment behind the blended one still lands
	if !c.Plot(0, 0, 0.9, RGB{10, 10, 10}, 1) {
		t.Error("translucent fragment wrote depth")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(0, 0)
	c.Resize(10, 6)
	if len(c.Pix) != 60 || len(c.Depth) != 60 {
		t.Fatalf("buffers = %d/%d, want 60", len(c.Pix), len(c.Depth))
	}
	c.Resize(-3, 2)
	if c.Width != 0 || len(c.Pix) != 0 {
		t.Errorf("negative width not clamped: %d", c.Width)
	}
}

func TestRGBHelpers(t *testing.T) {
	if got := FromColorful(colorful.Color{R: 2, G: -1, B: 0.5}); got.R != 255 || got.G != 0 {
		t.Errorf("FromColorful clamp = %v", got)
	}
	if got := (RGB{200, 100, 50}).Scale(0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Scale = %v", got)
	}
	if got := RGBToTcell(RGB{1, 2, 3}); TcellToRGB(got) != (RGB{1, 2, 3}) {
		t.Errorf("tcell round trip = %v", TcellToRGB(got))
	}
}

func TestFlushHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 3, 2)
	c := NewCanvas(3, 4)
	c.Clear(RGBBlack)
	c.Pix[0] = RGB{255, 0, 0}   // row 0, upper half of cell (0,0)
	c.Pix[3] = RGB{0, 255, 0}   // row 1, lower half of cell (0,0)
	c.Pix[2*3+2] = RGB{0, 0, 9} // row 2, upper half of cell (2,1)

	Flush(screen, c, 0)
	screen.Show()

	r, _, style, _ := screen.GetContent(0, 0)
	if r != HalfBlock {
		t.Fatalf("cell rune = %q, want %q", r, HalfBlock)
	}
	fg, bg, _ := style.Decompose()
	if TcellToRGB(fg) != (RGB{255, 0, 0}) || TcellToRGB(bg) != (RGB{0, 255, 0}) {
		t.Errorf("cell (0,0) fg %v bg %v", TcellToRGB(fg), TcellToRGB(bg))
	}
	_, _, style, _ = screen.GetContent(2, 1)
	if fg, _, _ := style.Decompose(); TcellToRGB(fg) != (RGB{0, 0, 9}) {
		t.Errorf("cell (2,1) fg %v", TcellToRGB(fg))
	}
}

// renderFrame rasterizes a composed frame at the given pixel size
func renderFrame(v view.ViewState, angle float64, w, h int) *Canvas {
	c := NewCanvas(w, h)
	c.Clear(RGBSpace)
	f := scene.Compose(v, angle, catalog.Default())
	NewRasterizer(nil).Draw(c, f, camera.Projection(w, h))
	return c
}

func TestRasterizerDrawsStarAtCenter(t *testing.T) {
	c := renderFrame(view.NewViewState(), 0, 80, 60)

	if got := c.At(40, 30); got == RGBSpace {
		t.Fatal("center pixel is background, star not drawn")
	}
	if got := c.At(0, 0); got != RGBSpace {
		t.Errorf("corner pixel = %v, want background", got)
	}
}

func TestRasterizerEmptyCanvas(t *testing.T) {
	c := NewCanvas(0, 0)
	f := scene.Compose(view.NewViewState(), 0, catalog.Default())
	NewRasterizer(nil).Draw(c, f, mgl64.Ident4())
}

func TestRasterizerOrbitLines(t *testing.T) {
	v := view.NewViewState()
	// Look down on the orbital plane so paths are circles around the star
	v.Pitch = constants.MaxPitch

	plain := renderFrame(v, 0, 120, 120)
	v.ToggleOrbits()
	lined := renderFrame(v, 0, 120, 120)

	changed := 0
	for i := range plain.Pix {
		if plain.Pix[i] != lined.Pix[i] {
			changed++
		}
	}
	if changed < 100 {
		t.Errorf("orbit paths changed %d pixels, want a visible set of loops", changed)
	}
}

func TestRasterizerFocusLitSide(t *testing.T) {
	v := view.NewViewState()
	v.Select(catalog.Jupiter)

	c := renderFrame(v, 0, 60, 60)
	// Headlight faces the viewer, so the disc center is the brightest region
	center := c.At(30, 30).Colorful()
	if center.R+center.G+center.B == 0 {
		t.Fatal("focused body not drawn")
	}
	rim := c.At(30, 30-int(float64(c.Height)*0.15)).Colorful()
	cl, _, _ := center.Hcl()
	rl, _, _ := rim.Hcl()
	if rim != RGBSpace.Colorful() && rl > cl {
		t.Errorf("rim lightness %v above center %v", rl, cl)
	}
}

func TestStatusLine(t *testing.T) {
	s := engine.NewSession(catalog.Default(), nil)
	if line := StatusLine(s); !strings.Contains(line, "all bodies") || strings.Contains(line, constants.HUDPaused) {
		t.Errorf("full view status = %q", line)
	}

	s.HandleEvent(view.KeyDown{Rune: '4'})
	s.HandleEvent(view.KeyDown{Rune: 'p'})
	s.HandleEvent(view.KeyDown{Rune: 'o'})
	line := StatusLine(s)
	for _, want := range []string{"Mars", "dist 10", constants.HUDPaused, constants.HUDOrbits} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q missing %q", line, want)
		}
	}
}

func TestTerminalRendererRender(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	r := NewTerminalRenderer(screen, nil, true)

	s := engine.NewSession(catalog.Default(), nil)
	s.HandleEvent(view.Resize{Width: 40, Height: (12 - r.HUDRows()) * constants.PixelsPerCellRow})

	if err := r.Render(s.Frame(), s); err != nil {
		t.Fatalf("render: %v", err)
	}

	cells, w, h := screen.GetContents()
	if w != 40 || h != 12 {
		t.Fatalf("screen size %dx%d", w, h)
	}
	if got := cells[0].Runes; len(got) == 0 || got[0] != HalfBlock {
		t.Errorf("canvas cell runes = %q", got)
	}

	var hud strings.Builder
	for x := 0; x < w; x++ {
		if rs := cells[(h-2)*w+x].Runes; len(rs) > 0 {
			hud.WriteRune(rs[0])
		}
	}
	if !strings.Contains(hud.String(), "orrery") {
		t.Errorf("status row = %q", hud.String())
	}
}

func TestTerminalRendererNoHUD(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	r := NewTerminalRenderer(screen, nil, false)
	if r.HUDRows() != 0 {
		t.Errorf("HUDRows = %d, want 0", r.HUDRows())
	}
}

func TestOrbitColor(t *testing.T) {
	tests := []struct {
		name string
		tint colorful.Color
		want RGB
	}{
		// gray 89 from 0.35 brightness, 70% kept
		{"black tint", colorful.Color{}, RGB{62, 62, 62}},
		{"white tint", colorful.Color{R: 1, G: 1, B: 1}, RGB{138, 138, 138}},
		{"red tint", colorful.Color{R: 1}, RGB{138, 62, 62}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orbitColor(tt.tint); got != tt.want {
				t.Errorf("orbitColor = %v, want %v", got, tt.want)
			}
		})
	}
}
