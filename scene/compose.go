// Package scene turns view state, the animation angle and the body catalog
// into an ordered list of draw directives.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/view"
)

// Placement returns the orbital transform: rotation by angleDeg about +Y, then translation by radius along local +X
func Placement(angleDeg, radius float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(mgl64.DegToRad(angleDeg)).Mul4(mgl64.Translate3D(radius, 0, 0))
}

// Compose builds the frame for the current state
// Full view draws every body at its catalog orbit; a selection draws only that body at the origin
func Compose(v view.ViewState, angle float64, cat catalog.Catalog) Frame {
	eye := camera.Eye(v.Distance, v.Yaw, v.Pitch)
	f := Frame{
		Eye:      eye,
		View:     camera.View(eye),
		Selected: v.Selected,
		Angle:    angle,
	}

	if !v.Focused() {
		f.Directives = make([]Directive, 0, len(cat)*2+constants.RingBands)
		for i := range cat {
			f.Directives = appendBody(f.Directives, &cat[i], angle, cat[i].OrbitRadius, !cat[i].IsStar(), v.ShowOrbits)
		}
		return f
	}

	// Focus: one body centered, lit from the viewer
	f.Headlight = true
	f.Light = eye
	if !cat.Valid(v.Selected) {
		return f
	}
	body := &cat[v.Selected]
	f.Directives = appendBody(nil, body, angle, 0, true, v.ShowOrbits)
	return f
}

// appendBody emits sphere, optional orbit path and optional ring bands for one body
func appendBody(out []Directive, b *catalog.Body, angle, orbitRadius float64, lit, showOrbits bool) []Directive {
	orbitAngle := angle * b.OrbitSpeed
	if b.IsStar() {
		// The star has no orbit but spins with the global angle
		orbitAngle = angle
	}
	model := Placement(orbitAngle, orbitRadius)

	out = append(out, Directive{
		Kind:        KindSphere,
		Body:        b.Index,
		Texture:     b.Texture,
		Tint:        b.Tint,
		Radius:      b.Radius,
		OrbitAngle:  orbitAngle,
		OrbitRadius: orbitRadius,
		Model:       model,
		Slices:      constants.SphereSlices,
		Stacks:      constants.SphereStacks,
		Alpha:       1,
		Lit:         lit,
	})

	if showOrbits && orbitRadius > 0 {
		out = append(out, Directive{
			Kind:   KindOrbit,
			Body:   b.Index,
			Tint:   b.Tint,
			Radius: orbitRadius,
			Model:  mgl64.Ident4(),
			Slices: constants.OrbitSegments,
			Alpha:  1,
		})
	}

	if r := b.Ring; r != nil {
		width := (r.Outer - r.Inner) / constants.RingBands
		for i := 0; i < constants.RingBands; i++ {
			out = append(out, Directive{
				Kind:        KindRing,
				Body:        b.Index,
				Texture:     r.Texture,
				Tint:        r.Tint,
				Inner:       r.Inner + float64(i)*width,
				Outer:       r.Inner + float64(i+1)*width,
				OrbitAngle:  orbitAngle,
				OrbitRadius: orbitRadius,
				Model:       model,
				Slices:      constants.RingSlices,
				Stacks:      constants.RingLoops,
				Alpha:       constants.RingAlphaBase - float64(i)*constants.RingAlphaFalloff,
				Lit:         lit,
			})
		}
	}
	return out
}
