package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/reelspin/constant"
)

// FrameContext carries per-frame timing to updaters
type FrameContext struct {
	// GameNow is the pausable game time at this frame
	GameNow time.Time

	// Delta is the game-time delta since the previous frame, normalized
	// to the reference frame interval (1.0 at exactly 60Hz). Zero while
	// paused
	Delta float64

	// Paused reports whether the clock was paused when the frame fired
	Paused bool
}

// Updater is stepped once per rendered frame, in registration order.
// Updaters must not block; control returns to the loop between frames
type Updater interface {
	Update(frame FrameContext)
}

// Loop drives all per-frame logic from a single goroutine. Updaters are
// always polled, paused or not; pause only zeroes the time delta they
// observe. There is exactly one thread of control, so updaters never
// race each other
type Loop struct {
	clock          *PausableClock
	interval       time.Duration
	pausedInterval time.Duration
	updaters       []Updater

	lastGameTime time.Time
	firstFrame   bool

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewLoop creates a frame loop ticking at the given interval. While the
// clock is paused the ticker relaxes to the paused poll interval,
// trading input latency for idle CPU
func NewLoop(clock *PausableClock, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = constant.FrameUpdateInterval
	}
	pausedInterval := constant.PausedPollInterval
	if pausedInterval < interval {
		pausedInterval = interval
	}
	return &Loop{
		clock:          clock,
		interval:       interval,
		pausedInterval: pausedInterval,
		firstFrame:     true,
		stopChan:       make(chan struct{}),
	}
}

// AddUpdater registers an updater; must be called before Start
func (l *Loop) AddUpdater(u Updater) {
	l.updaters = append(l.updaters, u)
}

// Start begins the frame loop goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		Go(func() {
			defer l.wg.Done()
			l.run()
		})
	}
}

// Stop halts the loop and waits for the in-flight frame to finish.
// After Stop returns no updater will be stepped again, so owned state
// can be torn down safely
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

func (l *Loop) run() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	relaxed := false
	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			l.Tick()
			if paused := l.clock.IsPaused(); paused != relaxed {
				relaxed = paused
				ticker.Reset(l.tickInterval(paused))
			}
		}
	}
}

// tickInterval selects the ticker rate for the current pause state
func (l *Loop) tickInterval(paused bool) time.Duration {
	if paused {
		return l.pausedInterval
	}
	return l.interval
}

// Tick executes one frame: computes the frame context and steps every
// updater in order. Exposed so tests can drive frames against a mock
// time source without the ticker goroutine
func (l *Loop) Tick() {
	paused := l.clock.IsPaused()
	gameNow := l.clock.Now()

	var delta float64
	if l.firstFrame {
		l.firstFrame = false
	} else if !paused {
		elapsed := gameNow.Sub(l.lastGameTime)
		// Clamp runaway deltas after long stalls (debugger, SIGSTOP) so
		// a single frame cannot consume a whole animation
		if limit := 4 * l.interval; elapsed > limit {
			elapsed = limit
		}
		delta = float64(elapsed) / float64(constant.ReferenceFrameInterval)
	}
	l.lastGameTime = gameNow

	frame := FrameContext{
		GameNow: gameNow,
		Delta:   delta,
		Paused:  paused,
	}
	for _, u := range l.updaters {
		u.Update(frame)
	}
}
