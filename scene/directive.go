package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/texture"
)

// DirectiveKind discriminates draw directives
type DirectiveKind uint8

const (
	KindSphere DirectiveKind = iota
	KindOrbit
	KindRing
)

func (k DirectiveKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindOrbit:
		return "orbit"
	case KindRing:
		return "ring"
	default:
		return "unknown"
	}
}

// Directive is one renderable item of a frame
type Directive struct {
	Kind DirectiveKind
	Body int

	Texture texture.Handle
	Tint    colorful.Color // Used when Texture is NoTexture

	// Sphere radius, or orbit path radius for KindOrbit
	Radius float64
	// Ring band radii for KindRing
	Inner, Outer float64

	OrbitAngle  float64 // degrees about +Y
	OrbitRadius float64 // effective placement radius (0 when focused)

	// Model is the local-to-world transform: rotate OrbitAngle about +Y, then translate OrbitRadius along local +X
	Model mgl64.Mat4

	// Tessellation: longitude x latitude for spheres, angular x radial for rings, point count for orbits
	Slices, Stacks int

	Alpha float64 // 1 = opaque
	Lit   bool    // Shaded by the frame light, false = emissive
}

// Translucent reports whether the directive needs blending
func (d *Directive) Translucent() bool {
	return d.Alpha < 1
}

// Frame is the complete description of one rendered frame
type Frame struct {
	Eye   mgl64.Vec3
	View  mgl64.Mat4
	Light mgl64.Vec3 // Point light position: the origin, or the eye when Headlight is set

	// Headlight lights the single focused body from the viewer
	Headlight bool

	Selected int
	Angle    float64

	Directives []Directive
}
