// Package camera converts orbit camera parameters into eye position and matrices.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/constants"
)

var (
	// Target is the fixed look-at point
	Target = mgl64.Vec3{0, 0, 0}

	// Up is the fixed up vector
	Up = mgl64.Vec3{0, 1, 0}
)

// Eye returns the camera position on a sphere of radius distance around the origin
func Eye(distance, yaw, pitch float64) mgl64.Vec3 {
	cp := math.Cos(pitch)
	return mgl64.Vec3{
		distance * cp * math.Sin(yaw),
		distance * math.Sin(pitch),
		distance * cp * math.Cos(yaw),
	}
}

// View returns the world-to-eye matrix looking from eye at the origin
func View(eye mgl64.Vec3) mgl64.Mat4 {
	return mgl64.LookAtV(eye, Target, Up)
}

// Projection returns the perspective matrix for a viewport in pixels
func Projection(width, height int) mgl64.Mat4 {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	aspect := float64(width) / float64(height)
	return mgl64.Perspective(mgl64.DegToRad(constants.FieldOfViewDeg), aspect, constants.NearPlane, constants.FarPlane)
}
