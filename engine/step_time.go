package engine

import (
	"sync"
	"time"
)

// StepTime is a deterministic TimeProvider for tests and replays
// Each Now call returns the current reading and then moves it forward by Step
type StepTime struct {
	mu      sync.Mutex
	current time.Time
	Step    time.Duration
}

// NewStepTime starts at start and advances by step per reading, step 0 freezes time
func NewStepTime(start time.Time, step time.Duration) *StepTime {
	return &StepTime{current: start, Step: step}
}

// Now returns the current reading and advances it
func (st *StepTime) Now() time.Time {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.current
	st.current = st.current.Add(st.Step)
	return now
}

// Advance moves time forward by d without taking a reading
func (st *StepTime) Advance(d time.Duration) {
	st.mu.Lock()
	st.current = st.current.Add(d)
	st.mu.Unlock()
}
