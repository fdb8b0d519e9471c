package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/view"
)

// Renderer paints a composed frame
type Renderer interface {
	Render(f scene.Frame, s *Session) error
}

// CueSink receives the effects of handled input, used for audio feedback
type CueSink interface {
	Notify(res view.Result)
}

// LoopConfig carries the loop timing; zero values select the defaults
type LoopConfig struct {
	TickInterval  time.Duration
	FrameInterval time.Duration
	Time          TimeProvider
}

// Loop is the single goroutine that owns the session
// Input, animation ticks and frame ticks are multiplexed by one select
type Loop struct {
	session  *Session
	renderer Renderer
	cues     CueSink
	time     TimeProvider

	tickInterval  time.Duration
	frameInterval time.Duration
}

// NewLoop creates a loop over the session, cues may be nil
func NewLoop(s *Session, r Renderer, cues CueSink, cfg LoopConfig) *Loop {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = constants.TickInterval
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = constants.FrameUpdateInterval
	}
	if cfg.Time == nil {
		cfg.Time = SystemTime{}
	}
	return &Loop{
		session:       s,
		renderer:      r,
		cues:          cues,
		time:          cfg.Time,
		tickInterval:  cfg.TickInterval,
		frameInterval: cfg.FrameInterval,
	}
}

// Run blocks until a quit action, input channel closure, context cancellation or render failure
// Quit and channel closure return nil
func (l *Loop) Run(ctx context.Context, events <-chan view.Event) error {
	tickTicker := time.NewTicker(l.tickInterval)
	defer tickTicker.Stop()
	frameTicker := time.NewTicker(l.frameInterval)
	defer frameTicker.Stop()

	// First paint without waiting a frame
	if err := l.Paint(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if l.Dispatch(ev) {
				log.Printf("Quit requested")
				return nil
			}

		case <-tickTicker.C:
			l.session.HandleEvent(view.Tick{})

		case <-frameTicker.C:
			if err := l.Paint(); err != nil {
				return err
			}
		}
	}
}

// Dispatch applies one input event and forwards its effects to the cue sink
// Returns true when the event requests exit
func (l *Loop) Dispatch(ev view.Event) bool {
	res := l.session.HandleEvent(ev)
	if l.cues != nil && (res.Action != view.ActionNone || res.Limit) {
		l.cues.Notify(res)
	}
	return res.Quit
}

// Paint renders a frame if any state changed since the last paint
func (l *Loop) Paint() error {
	if !l.session.ConsumeDirty() {
		return nil
	}
	if err := l.renderer.Render(l.session.Frame(), l.session); err != nil {
		return fmt.Errorf("render frame %d: %w", l.session.Stats.Frames, err)
	}
	l.session.Stats.Record(l.time.Now())
	return nil
}
