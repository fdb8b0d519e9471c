package constants

// Terminal Geometry
const (
	// DefaultCellWidth is the assumed pixel width of a terminal cell for drag scaling
	DefaultCellWidth = 8

	// DefaultCellHeight is the assumed pixel height of a terminal cell for drag scaling
	DefaultCellHeight = 16

	// PixelsPerCellRow is the vertical canvas resolution per cell (half-block rendering)
	PixelsPerCellRow = 2

	// HUDRows is the number of terminal rows reserved for status and key hints
	HUDRows = 2
)

// Tessellation
const (
	SphereSlices = 36
	SphereStacks = 18

	RingSlices = 64
	RingLoops  = 64

	// OrbitSegments is the number of points on an orbit path loop
	OrbitSegments = 360

	// RingBands is the number of concentric translucent disks per ring
	RingBands = 3
)

// Shading
const (
	// AmbientLight is the minimum brightness of lit surfaces
	AmbientLight = 0.12

	// RingAlphaBase is the opacity of the innermost ring band
	RingAlphaBase = 0.75

	// RingAlphaFalloff is subtracted from the opacity of each outer band
	RingAlphaFalloff = 0.2

	// OrbitLineBrightness scales the orbit path gray level (0..1)
	OrbitLineBrightness = 0.35
)

// HUD Text
const (
	HUDKeyHints = "w/s:zoom  drag:orbit  0-8:focus  a:all  o:orbits  p:pause  esc:quit"
	HUDPaused   = "[PAUSED]"
	HUDOrbits   = "[ORBITS]"
)
