package view

import "github.com/lixenwraith/orrery/constants"

// Result reports the effects of one event
type Result struct {
	Redraw bool   // State changed, a repaint is wanted
	Quit   bool   // Terminate the process
	Action Action // Resolved key action, ActionNone for pointer events
	Limit  bool   // A zoom hit the distance clamp
}

// Handler applies input events to a ViewState
type Handler struct {
	Keys Keymap
}

// NewHandler creates a handler with the given bindings, nil means defaults
func NewHandler(keys Keymap) *Handler {
	if keys == nil {
		keys = DefaultKeymap()
	}
	return &Handler{Keys: keys}
}

// Handle applies keyboard and pointer events; Tick and Resize are ignored here
func (h *Handler) Handle(s *ViewState, ev Event) Result {
	switch e := ev.(type) {
	case KeyDown:
		return h.handleKey(s, e.Rune)
	case PointerButton:
		return handleButton(s, e)
	case PointerMove:
		return Result{Redraw: s.Drag(e.X, e.Y)}
	case PointerWheel:
		return handleWheel(s, e.Delta)
	}
	return Result{}
}

// handleKey resolves a rune through the keymap, unmapped keys are silent no-ops
func (h *Handler) handleKey(s *ViewState, r rune) Result {
	action, ok := h.Keys[r]
	if !ok || action == ActionNone {
		return Result{}
	}

	res := Result{Action: action, Redraw: true}
	switch action {
	case ActionQuit:
		res.Quit = true
		res.Redraw = false
	case ActionZoomIn:
		res.Limit = s.Zoom(-constants.ZoomStep)
	case ActionZoomOut:
		res.Limit = s.Zoom(constants.ZoomStep)
	case ActionToggleOrbits:
		s.ToggleOrbits()
	case ActionTogglePause:
		s.TogglePause()
	case ActionShowAll:
		s.ShowAll()
	default:
		idx, ok := action.SelectIndex()
		if !ok || !s.Select(idx) {
			return Result{}
		}
	}
	return res
}

func handleButton(s *ViewState, e PointerButton) Result {
	if e.Button != DragButton {
		return Result{}
	}
	if e.Pressed {
		s.Press(e.X, e.Y)
	} else {
		s.Release()
	}
	return Result{}
}

func handleWheel(s *ViewState, delta int) Result {
	if delta == 0 {
		return Result{}
	}
	res := Result{Redraw: true}
	for ; delta > 0; delta-- {
		res.Limit = s.Zoom(-constants.ZoomStep) || res.Limit
	}
	for ; delta < 0; delta++ {
		res.Limit = s.Zoom(constants.ZoomStep) || res.Limit
	}
	return res
}
