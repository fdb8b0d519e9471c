package constants

import "time"

// Loop Timing
const (
	// TickInterval is the fixed animation clock period (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity of the input event channel
	EventQueueSize = 256
)

// Animation Clock
const (
	// RotationStep is the per-tick increment of the global rotation angle, degrees
	RotationStep = 0.5

	// FullTurn wraps the rotation angle into [0, FullTurn)
	FullTurn = 360.0
)

// Camera Limits
const (
	// DefaultDistance is the camera distance of the full-system view
	DefaultDistance = 50.0

	// FocusDistance is the camera distance applied on body selection
	FocusDistance = 10.0

	MinDistance = 5.0
	MaxDistance = 100.0

	// ZoomStep is the distance change per zoom key press or wheel notch
	ZoomStep = 1.0

	// MaxPitch clamps camera pitch in radians to keep clear of the poles
	MaxPitch = 1.5

	// DragSensitivity is radians of yaw/pitch per pointer pixel
	DragSensitivity = 0.005
)

// Projection
const (
	FieldOfViewDeg = 45.0
	NearPlane      = 1.0
	FarPlane       = 200.0
)

// Selection
const (
	// SelectAll is the selection index for the full-system view
	SelectAll = -1

	// BodyCount is the number of catalog entries (star + 8 planets)
	BodyCount = 9
)
