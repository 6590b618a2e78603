package constant

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ReferenceFrameInterval normalizes per-frame delta time so scroll
	// speeds are expressed in units per 60Hz frame regardless of the
	// actual host refresh rate
	ReferenceFrameInterval = time.Second / 60

	// PausedPollInterval is the relaxed loop interval while paused,
	// trading input latency for idle CPU
	PausedPollInterval = 32 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the event ring capacity the machine is wired
	// with; a spin emits seven events, so this is frames of headroom
	EventQueueSize = 64
)
