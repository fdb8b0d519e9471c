package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orrery/view"
)

func newFakePlayer(initErr error) (*Player, *int) {
	p := NewPlayer(0.5)
	started := 0
	p.speakerInit = func(beep.SampleRate, int) error { return initErr }
	p.speakerPlay = func(...beep.Streamer) { started++ }
	return p, &started
}

func TestPlayerSilentBeforeInit(t *testing.T) {
	p, _ := newFakePlayer(nil)
	p.Play(CueSelect, 1)
	p.Notify(view.Result{Action: view.ActionToggleOrbits})
	if p.Played() != 0 || p.Enabled() {
		t.Errorf("uninitialized player queued %d cues", p.Played())
	}
}

func TestPlayerInitFailureStaysSilent(t *testing.T) {
	boom := errors.New("no device")
	p, started := newFakePlayer(boom)

	if err := p.Initialize(); !errors.Is(err, boom) {
		t.Fatalf("Initialize = %v, want wrapped device error", err)
	}
	p.Play(CueToggle, 0)
	if p.Enabled() || p.Played() != 0 || *started != 0 {
		t.Errorf("failed player active: enabled %v played %d started %d", p.Enabled(), p.Played(), *started)
	}
}

func TestPlayerQueuesCues(t *testing.T) {
	p, started := newFakePlayer(nil)
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := p.Initialize(); err != nil || *started != 1 {
		t.Fatalf("second Initialize: err %v, started %d", err, *started)
	}

	p.Notify(view.Result{Action: view.SelectAction(2)})
	p.Notify(view.Result{Action: view.ActionZoomOut, Limit: true})
	p.Notify(view.Result{Action: view.ActionZoomOut})
	p.Play(CueNone, 0)

	if p.Played() != 2 {
		t.Errorf("played = %d, want 2", p.Played())
	}

	if p.mixer.Len() != 2 {
		t.Errorf("mixer holds %d streamers, want 2", p.mixer.Len())
	}

	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers after Close, want 0", p.mixer.Len())
	}
	p.Play(CueToggle, 0)
	if p.Played() != 2 || p.Enabled() {
		t.Errorf("closed player still playing: %d", p.Played())
	}
}

func TestPlayerVolumeClamped(t *testing.T) {
	if p := NewPlayer(4); p.volume != 1 {
		t.Errorf("volume = %v, want 1", p.volume)
	}
	if p := NewPlayer(-1); p.volume != 0 {
		t.Errorf("volume = %v, want 0", p.volume)
	}
}
