package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/orrery/constants"
)

func TestAnimationClockAdvances(t *testing.T) {
	tests := []struct {
		name  string
		ticks int
		want  float64
	}{
		{"single", 1, 0.5},
		{"ten", 10, 5.0},
		{"full turn wraps to zero", 720, 0},
		{"past one turn", 725, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c AnimationClock
			for i := 0; i < tt.ticks; i++ {
				c.Tick(false)
			}
			if math.Abs(c.Angle-tt.want) > 1e-9 {
				t.Errorf("angle after %d ticks = %v, want %v", tt.ticks, c.Angle, tt.want)
			}
			if c.Ticks != uint64(tt.ticks) {
				t.Errorf("ticks = %d, want %d", c.Ticks, tt.ticks)
			}
		})
	}
}

func TestAnimationClockPaused(t *testing.T) {
	c := AnimationClock{Angle: 12.5}
	for i := 0; i < 100; i++ {
		if c.Tick(true) {
			t.Fatal("paused tick reported a change")
		}
	}
	if c.Angle != 12.5 || c.Ticks != 0 {
		t.Errorf("paused clock moved: angle %v ticks %d", c.Angle, c.Ticks)
	}
}

func TestAnimationClockStaysInRange(t *testing.T) {
	var c AnimationClock
	for i := 0; i < 5000; i++ {
		c.Tick(false)
		if c.Angle < 0 || c.Angle >= constants.FullTurn {
			t.Fatalf("angle %v out of range after %d ticks", c.Angle, i+1)
		}
	}
}

func TestFrameStats(t *testing.T) {
	clock := NewStepTime(time0, 40*time.Millisecond)
	var fs FrameStats

	// 26 paints 40ms apart span exactly one second
	for i := 0; i < 26; i++ {
		fs.Record(clock.Now())
	}

	if fs.Frames != 26 {
		t.Errorf("frames = %d, want 26", fs.Frames)
	}
	if math.Abs(fs.FPS-25) > 1e-6 {
		t.Errorf("fps = %v, want 25", fs.FPS)
	}
}
