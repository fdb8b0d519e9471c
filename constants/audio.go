package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master volume when config omits it
	DefaultVolume = 0.5
)

// Select Chime Timing
const (
	SelectSoundDuration = 250 * time.Millisecond
	SelectSoundAttack   = 5 * time.Millisecond
	SelectSoundRelease  = 200 * time.Millisecond

	// SelectBaseFreq is the chime pitch for the star, each body steps a semitone up
	SelectBaseFreq = 440.0
)

// Toggle Click Timing
const (
	ToggleSoundDuration = 40 * time.Millisecond
	ToggleSoundAttack   = 2 * time.Millisecond
	ToggleSoundRelease  = 20 * time.Millisecond
	ToggleSoundFreq     = 1200.0
)

// Zoom Limit Buzz Timing
const (
	LimitSoundDuration = 80 * time.Millisecond
	LimitSoundAttack   = 5 * time.Millisecond
	LimitSoundRelease  = 20 * time.Millisecond
	LimitSoundFreq     = 110.0
)
