package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/reelspin/constant"
)

type recordingUpdater struct {
	frames []FrameContext
}

func (r *recordingUpdater) Update(frame FrameContext) {
	r.frames = append(r.frames, frame)
}

func TestLoopTickDeltaNormalization(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)
	loop := NewLoop(clock, constant.FrameUpdateInterval)

	rec := &recordingUpdater{}
	loop.AddUpdater(rec)

	loop.Tick() // first frame carries no delta
	mock.Advance(constant.ReferenceFrameInterval)
	loop.Tick()
	mock.Advance(2 * constant.ReferenceFrameInterval)
	loop.Tick()

	if len(rec.frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(rec.frames))
	}
	if rec.frames[0].Delta != 0 {
		t.Errorf("Expected zero delta on first frame, got %f", rec.frames[0].Delta)
	}
	if got := rec.frames[1].Delta; got < 0.99 || got > 1.01 {
		t.Errorf("Expected delta ~1.0 for one reference interval, got %f", got)
	}
	if got := rec.frames[2].Delta; got < 1.99 || got > 2.01 {
		t.Errorf("Expected delta ~2.0 for two reference intervals, got %f", got)
	}
}

func TestLoopPolledWhilePaused(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)
	loop := NewLoop(clock, constant.FrameUpdateInterval)

	rec := &recordingUpdater{}
	loop.AddUpdater(rec)

	loop.Tick()
	clock.Pause()
	mock.Advance(time.Second)
	loop.Tick()
	loop.Tick()

	if len(rec.frames) != 3 {
		t.Fatalf("Expected updaters polled during pause, got %d frames", len(rec.frames))
	}
	for _, frame := range rec.frames[1:] {
		if !frame.Paused {
			t.Error("Expected paused frame context during pause")
		}
		if frame.Delta != 0 {
			t.Errorf("Expected zero delta during pause, got %f", frame.Delta)
		}
	}
}

func TestLoopClampsStalledDelta(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)
	loop := NewLoop(clock, constant.FrameUpdateInterval)

	rec := &recordingUpdater{}
	loop.AddUpdater(rec)

	loop.Tick()
	mock.Advance(5 * time.Second) // stall without pause
	loop.Tick()

	maxDelta := float64(4*constant.FrameUpdateInterval) / float64(constant.ReferenceFrameInterval)
	if got := rec.frames[1].Delta; got > maxDelta+0.01 {
		t.Errorf("Expected stalled delta clamped to %f, got %f", maxDelta, got)
	}
}

func TestLoopRelaxesTickerWhilePaused(t *testing.T) {
	clock := NewPausableClock(nil)
	loop := NewLoop(clock, constant.FrameUpdateInterval)

	if got := loop.tickInterval(false); got != constant.FrameUpdateInterval {
		t.Errorf("Expected active rate %v, got %v", constant.FrameUpdateInterval, got)
	}
	if got := loop.tickInterval(true); got != constant.PausedPollInterval {
		t.Errorf("Expected paused rate %v, got %v", constant.PausedPollInterval, got)
	}

	// A frame interval slower than the poll interval never speeds up on
	// pause
	slow := NewLoop(clock, 100*time.Millisecond)
	if got := slow.tickInterval(true); got != 100*time.Millisecond {
		t.Errorf("Expected paused rate capped at frame interval, got %v", got)
	}
}

func TestLoopStartStop(t *testing.T) {
	clock := NewPausableClock(nil)
	loop := NewLoop(clock, time.Millisecond)

	rec := &recordingUpdater{}
	done := make(chan struct{})
	loop.AddUpdater(updaterFunc(func(frame FrameContext) {
		if len(rec.frames) == 0 {
			close(done)
		}
		rec.frames = append(rec.frames, frame)
	}))

	loop.Start()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected at least one frame within a second")
	}
	loop.Stop()

	// Second Stop is safe
	loop.Stop()
}

type updaterFunc func(FrameContext)

func (f updaterFunc) Update(frame FrameContext) { f(frame) }
