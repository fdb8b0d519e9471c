package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/orrery/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator of the given wave shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release ramps to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

// gain returns the envelope level at sample position p
func (e *envelope) gain(p int) float64 {
	if p < e.attackSamples {
		return float64(p) / float64(e.attackSamples)
	}
	if remaining := e.totalSamples - p; e.releaseSamples > 0 && remaining < e.releaseSamples {
		return max(0, float64(remaining)/float64(e.releaseSamples))
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a beep volume effect
// math.Log2(0) is -Inf, so zero volume is handled as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// SelectFreq returns the chime pitch for a body: one semitone per index above the base
func SelectFreq(idx int) float64 {
	return constants.SelectBaseFreq * math.Pow(2, float64(idx)/12)
}

// CreateSelectSound generates a sine chime with an octave overtone pitched by body index
func CreateSelectSound(idx int, vol float64, rate beep.SampleRate) beep.Streamer {
	freq := SelectFreq(idx)

	fund := NewEnvelope(
		NewOscillator(freq, constants.SelectSoundDuration, WaveSine, rate),
		constants.SelectSoundDuration, constants.SelectSoundAttack, constants.SelectSoundRelease, rate)
	over := NewEnvelope(
		NewOscillator(freq*2, constants.SelectSoundDuration, WaveSine, rate),
		constants.SelectSoundDuration, constants.SelectSoundAttack, constants.SelectSoundRelease/2, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, vol)
}

// CreateToggleSound generates a short square click
func CreateToggleSound(vol float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(constants.ToggleSoundFreq, constants.ToggleSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ToggleSoundDuration, constants.ToggleSoundAttack, constants.ToggleSoundRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// CreateLimitSound generates a low saw buzz for a clamped zoom
func CreateLimitSound(vol float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(constants.LimitSoundFreq, constants.LimitSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.LimitSoundDuration, constants.LimitSoundAttack, constants.LimitSoundRelease, rate)
	return newVolume(shaped, vol)
}

// GetCueSound returns the streamer for a cue, nil for CueNone
func GetCueSound(cue Cue, idx int, vol float64, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueSelect:
		return CreateSelectSound(idx, vol, rate)
	case CueToggle:
		return CreateToggleSound(vol, rate)
	case CueZoomLimit:
		return CreateLimitSound(vol, rate)
	default:
		return nil
	}
}
