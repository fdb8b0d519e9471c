package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/engine"
)

var (
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbHintText   = tcell.NewRGBColor(140, 140, 160) // Muted gray
	RgbFlagPaused = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// StatusLine formats the view summary shown on the first HUD row
func StatusLine(s *engine.Session) string {
	target := "all bodies"
	if name := s.SelectedName(); name != "" {
		target = name
	}

	var b strings.Builder
	fmt.Fprintf(&b, " orrery | %s | dist %.0f | angle %5.1f | %.0f fps", target, s.View.Distance, s.Clock.Angle, s.Stats.FPS)
	if s.View.ShowOrbits {
		b.WriteString(" ")
		b.WriteString(constants.HUDOrbits)
	}
	if s.View.Paused {
		b.WriteString(" ")
		b.WriteString(constants.HUDPaused)
	}
	return b.String()
}

// drawHUD paints the status and key hint rows starting at row top
func drawHUD(screen tcell.Screen, s *engine.Session, top, width int) {
	status := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
	if s.View.Paused {
		status = status.Foreground(RgbFlagPaused)
	}
	DrawText(screen, 0, top, width, StatusLine(s), status)
	DrawText(screen, 0, top+1, width, " "+constants.HUDKeyHints, tcell.StyleDefault.Foreground(RgbHintText).Background(RgbStatusBg))
}

// DrawText writes text clipped to width and pads the rest of the row
func DrawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		screen.SetContent(col, y, ' ', nil, style)
	}
}
