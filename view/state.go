// Package view holds the mutable camera, selection and flag state driven by
// keyboard and pointer events.
package view

import "github.com/lixenwraith/orrery/constants"

// ViewState is the single camera/selection/flags instance of a session
// Mutated only by Handler; read once per frame by the scene composer
type ViewState struct {
	Distance float64 // [MinDistance, MaxDistance]
	Yaw      float64 // radians, unbounded
	Pitch    float64 // radians, [-MaxPitch, MaxPitch]

	Selected int // SelectAll or a catalog index

	Paused     bool
	ShowOrbits bool

	// Drag tracking
	LastX, LastY int
	ButtonDown   bool
}

// NewViewState returns the startup defaults: full view from DefaultDistance
func NewViewState() ViewState {
	return ViewState{
		Distance: constants.DefaultDistance,
		Selected: constants.SelectAll,
	}
}

// Zoom moves the camera by delta and clamps to the distance range
// Returns true if the clamp engaged
func (s *ViewState) Zoom(delta float64) bool {
	d := s.Distance + delta
	switch {
	case d < constants.MinDistance:
		s.Distance = constants.MinDistance
		return true
	case d > constants.MaxDistance:
		s.Distance = constants.MaxDistance
		return true
	}
	s.Distance = d
	return false
}

// Select focuses a single body and moves the camera to the close-up distance
// Out-of-range indices are ignored
func (s *ViewState) Select(idx int) bool {
	if idx < 0 || idx >= constants.BodyCount {
		return false
	}
	s.Selected = idx
	s.Distance = constants.FocusDistance
	return true
}

// ShowAll returns to the full-system view, distance unchanged
func (s *ViewState) ShowAll() {
	s.Selected = constants.SelectAll
}

// Focused reports whether a single body is selected
func (s *ViewState) Focused() bool {
	return s.Selected != constants.SelectAll
}

func (s *ViewState) ToggleOrbits() {
	s.ShowOrbits = !s.ShowOrbits
}

func (s *ViewState) TogglePause() {
	s.Paused = !s.Paused
}

// Press starts drag tracking at (x, y)
func (s *ViewState) Press(x, y int) {
	s.ButtonDown = true
	s.LastX, s.LastY = x, y
}

// Release ends drag tracking
func (s *ViewState) Release() {
	s.ButtonDown = false
}

// Drag orbits the camera by the pointer delta since the last observed position
// Returns false when no drag is in progress
func (s *ViewState) Drag(x, y int) bool {
	if !s.ButtonDown {
		return false
	}
	dx := x - s.LastX
	dy := y - s.LastY

	s.Yaw += float64(dx) * constants.DragSensitivity
	s.Pitch += float64(dy) * constants.DragSensitivity
	if s.Pitch > constants.MaxPitch {
		s.Pitch = constants.MaxPitch
	}
	if s.Pitch < -constants.MaxPitch {
		s.Pitch = -constants.MaxPitch
	}

	s.LastX, s.LastY = x, y
	return true
}
