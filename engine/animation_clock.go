package engine

import (
	"math"

	"github.com/lixenwraith/orrery/constants"
)

// AnimationClock is the global rotation angle advanced on a fixed tick
type AnimationClock struct {
	Angle float64 // degrees, [0, FullTurn)
	Ticks uint64  // Advancing ticks observed, paused ticks excluded
}

// Tick advances the angle by one step unless paused
// Returns true when the angle changed
func (c *AnimationClock) Tick(paused bool) bool {
	if paused {
		return false
	}
	c.Angle = math.Mod(c.Angle+constants.RotationStep, constants.FullTurn)
	c.Ticks++
	return true
}
