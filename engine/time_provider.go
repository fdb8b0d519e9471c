package engine

import "time"

// TimeProvider supplies wall time for frame statistics
type TimeProvider interface {
	Now() time.Time
}

// SystemTime provides the real system time with monotonic clock readings
type SystemTime struct{}

// Now returns the current time with monotonic clock reading
func (SystemTime) Now() time.Time {
	return time.Now()
}

// FrameStats tracks painted frames per second over a one second window
type FrameStats struct {
	Frames uint64  // Total painted frames
	FPS    float64 // Rate over the last completed window

	windowStart  time.Time
	windowFrames uint64
}

// Record counts one painted frame at now
func (fs *FrameStats) Record(now time.Time) {
	fs.Frames++
	if fs.windowStart.IsZero() {
		fs.windowStart = now
		return
	}
	fs.windowFrames++
	if elapsed := now.Sub(fs.windowStart); elapsed >= time.Second {
		fs.FPS = float64(fs.windowFrames) / elapsed.Seconds()
		fs.windowStart = now
		fs.windowFrames = 0
	}
}
