package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/view"
)

// Player mixes cue sounds into the speaker
// Until Initialize succeeds every call is a silent no-op
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	played      int

	// speakerInit is replaced in tests
	speakerInit func(beep.SampleRate, int) error
	speakerPlay func(...beep.Streamer)
}

// NewPlayer creates a player at volume in [0, 1]
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:       &beep.Mixer{},
		rate:        beep.SampleRate(constants.AudioSampleRate),
		volume:      max(0, min(volume, 1)),
		speakerInit: speaker.Init,
		speakerPlay: speaker.Play,
	}
}

// Initialize opens the speaker and starts the mixer
// A failure leaves the player silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := p.speakerInit(p.rate, p.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	p.speakerPlay(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sounds; the speaker itself stays open
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Played returns the number of cues queued since creation
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Play queues one cue, idx pitches selection chimes
func (p *Player) Play(cue Cue, idx int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := GetCueSound(cue, idx, p.volume, p.rate)
	if s == nil {
		return
	}
	// The speaker goroutine reads the mixer under its own lock
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}

// Notify plays the cue for a handled input result
func (p *Player) Notify(res view.Result) {
	cue, idx := CueFor(res)
	if cue == CueNone {
		return
	}
	log.Printf("Audio cue: %s", cue)
	p.Play(cue, idx)
}
