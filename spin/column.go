package spin

import (
	"math"
	"time"

	"github.com/lixenwraith/reelspin/constant"
	"github.com/lixenwraith/reelspin/engine"
)

// columnState tracks the animator lifecycle:
// Idle → Running → (completing step) → Idle
type columnState int

const (
	columnIdle columnState = iota
	columnRunning
)

// Column animates one reel's scroll position. The scroll offset grows
// monotonically while running and wraps modulo the cycle distance for
// rendering, which makes a fixed pre-duplicated strip of symbols read
// as an infinite vertical scroll.
//
// A column is created once at machine init and reused every spin: the
// offset resets to zero on Start and the rendered position snaps back
// to the rest offset exactly when the animation completes, eliminating
// accumulated floating point drift
type Column struct {
	index      int
	restOffset float64

	state        columnState
	scrollOffset float64
	visualOffset float64
	speed        float64
	duration     time.Duration
	startTime    time.Time // game-time reference captured on Start

	// strip holds the symbols rendered while scrolling: the column's
	// resting symbols duplicated once so the wrap-around never shows a
	// seam
	strip []Symbol
}

// NewColumn creates a reel column at its rest offset
func NewColumn(index int, restOffset float64) *Column {
	return &Column{
		index:        index,
		restOffset:   restOffset,
		visualOffset: restOffset,
	}
}

// Index returns the 0-based column index
func (c *Column) Index() int { return c.index }

// Running reports whether an animation is in flight
func (c *Column) Running() bool { return c.state == columnRunning }

// VisualOffset returns the wrapped offset the renderer applies to the
// strip. Equals the rest offset whenever the column is idle
func (c *Column) VisualOffset() float64 { return c.visualOffset }

// Strip returns the symbols of the scrolling visual strip
func (c *Column) Strip() []Symbol { return c.strip }

// BindStrip rebuilds the visual strip from the column's current
// symbols, duplicated for seamless wrap-around
func (c *Column) BindStrip(symbols []Symbol) {
	c.strip = c.strip[:0]
	c.strip = append(c.strip, symbols...)
	c.strip = append(c.strip, symbols...)
}

// Start transitions Idle → Running, capturing now as the animation's
// time reference. A running column rejects the call: one animation at a
// time. A zero duration is accepted and completes on the very next step
func (c *Column) Start(now time.Time, duration time.Duration, speed float64) error {
	if c.state == columnRunning {
		return ErrColumnBusy
	}
	if duration < 0 {
		return ErrInvalidDuration
	}
	if speed <= 0 {
		return ErrInvalidSpeed
	}

	c.state = columnRunning
	c.scrollOffset = 0
	c.visualOffset = 0
	c.speed = speed
	c.duration = duration
	c.startTime = now
	return nil
}

// Step advances the animation by one frame and returns true on the
// exact step the column completes.
//
// While the frame is paused the column performs no updates but stays
// Running: it keeps being polled every frame and no-ops until unpaused.
// Elapsed time is measured in game time, which the pausable clock has
// already corrected for pauses, so the comparison against duration only
// ever sees active time
func (c *Column) Step(frame engine.FrameContext) bool {
	if c.state != columnRunning {
		return false
	}
	if frame.Paused {
		return false
	}

	c.scrollOffset += c.speed * frame.Delta
	c.visualOffset = math.Mod(c.scrollOffset, constant.CycleDistance)

	if frame.GameNow.Sub(c.startTime) >= c.duration {
		// Snap back to rest exactly; any cumulative drift dies here
		c.visualOffset = c.restOffset
		c.state = columnIdle
		return true
	}
	return false
}
