package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/view"
)

// Session owns all mutable state of a running visualizer
// Every method must be called from the loop goroutine
type Session struct {
	// ===== Immutable After Init =====

	Catalog catalog.Catalog
	handler *view.Handler

	// ===== Main-Loop Exclusive =====

	View  view.ViewState
	Clock AnimationClock

	// Viewport in pixels
	Width, Height int
	Projection    mgl64.Mat4

	Stats FrameStats

	// Set by any state change, cleared when a frame is painted
	dirty bool
}

// NewSession creates a session over a resolved catalog, nil keys selects the default bindings
func NewSession(cat catalog.Catalog, keys view.Keymap) *Session {
	return &Session{
		Catalog:    cat,
		handler:    view.NewHandler(keys),
		View:       view.NewViewState(),
		Projection: camera.Projection(1, 1),
		dirty:      true,
	}
}

// HandleEvent applies one event and marks the session dirty if a repaint is wanted
func (s *Session) HandleEvent(ev view.Event) view.Result {
	var res view.Result
	switch e := ev.(type) {
	case view.Tick:
		res.Redraw = s.Clock.Tick(s.View.Paused)
	case view.Resize:
		res.Redraw = s.resize(e.Width, e.Height)
	default:
		res = s.handler.Handle(&s.View, ev)
	}

	if res.Redraw {
		s.dirty = true
	}
	return res
}

// resize recomputes the projection for a new pixel viewport
func (s *Session) resize(width, height int) bool {
	if width == s.Width && height == s.Height {
		return false
	}
	s.Width, s.Height = width, height
	s.Projection = camera.Projection(width, height)
	return true
}

// ConsumeDirty reports and clears a pending repaint request
func (s *Session) ConsumeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Frame composes the scene for the current state
func (s *Session) Frame() scene.Frame {
	return scene.Compose(s.View, s.Clock.Angle, s.Catalog)
}

// SelectedName returns the focused body name, empty in full view
func (s *Session) SelectedName() string {
	if !s.View.Focused() || !s.Catalog.Valid(s.View.Selected) {
		return ""
	}
	return s.Catalog[s.View.Selected].Name
}
