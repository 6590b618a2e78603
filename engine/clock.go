package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable game time with pause duration tracking.
// Game time stands still while paused; on resume the cumulative pause
// duration keeps shifting every reading, so a timer measured against
// game time is invariant under any number of pause/resume cycles.
//
// Pause and Resume are idempotent: pausing a paused clock or resuming a
// running one is a no-op.
type PausableClock struct {
	mu sync.RWMutex

	source TimeSource

	// Base time tracking
	realStartTime time.Time // When clock was created (real time)

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a pausable clock backed by the given time
// source; a nil source falls back to the monotonic system clock
func NewPausableClock(source TimeSource) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source:        source,
		realStartTime: source.Now(),
	}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// During pause: frozen at the pause point
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}

	// Game time = real time shifted back by everything spent paused
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// RealTime returns the backing source's time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.source.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()

		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time, including the
// current pause if one is in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
