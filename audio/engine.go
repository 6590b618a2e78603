// Package audio is the effects collaborator: it listens to spin
// lifecycle events and synthesizes short cues. The core makes no
// timing promise beyond firing those events; everything here is
// best-effort and a missing sound device degrades to silence
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/constant"
	"github.com/lixenwraith/reelspin/event"
)

// Engine plays synthesized tones through the system speaker
type Engine struct {
	sampleRate beep.SampleRate

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	logger *zap.Logger
}

// NewEngine creates an audio engine; it produces no sound until Start
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		sampleRate: beep.SampleRate(constant.AudioSampleRate),
		logger:     logger,
	}
}

// Start initializes the speaker. Init failure switches to silent mode
// rather than failing the game; sound is never load-bearing
func (e *Engine) Start() error {
	if e.running.Load() {
		return nil
	}
	if err := speaker.Init(e.sampleRate, e.sampleRate.N(constant.AudioBufferWindow)); err != nil {
		e.silentMode.Store(true)
		e.logger.Warn("speaker init failed, continuing silent", zap.Error(err))
	}
	e.running.Store(true)
	return nil
}

// Stop closes the speaker
func (e *Engine) Stop() {
	if e.running.CompareAndSwap(true, false) && !e.silentMode.Load() {
		speaker.Close()
	}
}

// SetMuted toggles cue playback without touching the speaker
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// Muted reports the mute state
func (e *Engine) Muted() bool {
	return e.muted.Load()
}

// EventTypes implements event.Handler
func (e *Engine) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpinStarted,
		event.EventColumnStopped,
		event.EventSpinResolved,
	}
}

// HandleEvent maps lifecycle notifications to cues
func (e *Engine) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSpinStarted:
		e.playTone(constant.SpinStartFreq, constant.CueDuration)

	case event.EventColumnStopped:
		if payload, ok := ev.Payload.(*event.ColumnStoppedPayload); ok {
			e.playTone(columnStopFreq(payload.Column), constant.CueDuration)
		}

	case event.EventSpinResolved:
		if payload, ok := ev.Payload.(*event.SpinResolvedPayload); ok && payload.HasWin {
			e.playTone(constant.WinJingleFreq, constant.JingleDuration)
		}
	}
}

// columnStopFreq rises with the column index so the left-to-right stop
// cadence is audible
func columnStopFreq(column int) float64 {
	return constant.ColumnStopBaseFreq + float64(column-1)*constant.ColumnStopFreqStep
}

// playTone queues a sine blip; no-op when stopped, muted or silent
func (e *Engine) playTone(freq float64, d time.Duration) {
	if !e.running.Load() || e.muted.Load() || e.silentMode.Load() {
		return
	}

	sine, err := generators.SineTone(e.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.sampleRate.N(d), sine))
}
