package engine

import (
	"testing"
	"time"
)

func TestPausableClockAdvancesWithSource(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	mock.Advance(500 * time.Millisecond)

	if got := clock.Now(); !got.Equal(start.Add(500 * time.Millisecond)) {
		t.Errorf("Expected game time %v, got %v", start.Add(500*time.Millisecond), got)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	mock.Advance(time.Second)
	clock.Pause()
	frozen := clock.Now()

	mock.Advance(10 * time.Second)

	if got := clock.Now(); !got.Equal(frozen) {
		t.Errorf("Expected frozen game time %v during pause, got %v", frozen, got)
	}
	if !clock.IsPaused() {
		t.Error("Expected clock to report paused")
	}
}

func TestPausableClockResumeCompensatesPause(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(7 * time.Second) // wall time spent paused
	clock.Resume()
	mock.Advance(2 * time.Second)

	// Active time is 1s + 2s regardless of the 7s pause
	want := start.Add(3 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Errorf("Expected game time %v after resume, got %v", want, got)
	}
	if got := clock.TotalPauseDuration(); got != 7*time.Second {
		t.Errorf("Expected total pause duration 7s, got %v", got)
	}
}

func TestPausableClockMultiplePauseCycles(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	var active time.Duration
	for i := 0; i < 5; i++ {
		mock.Advance(200 * time.Millisecond)
		active += 200 * time.Millisecond
		clock.Pause()
		mock.Advance(time.Duration(i+1) * time.Second)
		clock.Resume()
	}

	if got := clock.Now(); !got.Equal(start.Add(active)) {
		t.Errorf("Expected game time %v after pause cycles, got %v", start.Add(active), got)
	}
}

func TestPausableClockIdempotentTransitions(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	// Resume without pause is a no-op
	clock.Resume()
	if clock.IsPaused() {
		t.Error("Expected clock unpaused after spurious resume")
	}

	mock.Advance(time.Second)
	clock.Pause()
	pausedAt := clock.Now()

	// Second pause must not move the pause reference
	mock.Advance(3 * time.Second)
	clock.Pause()
	if got := clock.Now(); !got.Equal(pausedAt) {
		t.Errorf("Expected double pause to keep frozen time %v, got %v", pausedAt, got)
	}

	clock.Resume()
	clock.Resume()

	mock.Advance(time.Second)
	want := start.Add(2 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Errorf("Expected game time %v after double resume, got %v", want, got)
	}
}

func TestPausableClockRealTimeUnaffected(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	clock.Pause()
	mock.Advance(time.Minute)

	if got := clock.RealTime(); !got.Equal(start.Add(time.Minute)) {
		t.Errorf("Expected real time to keep advancing during pause, got %v", got)
	}
}
