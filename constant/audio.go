package constant

import "time"

// Audio Synthesis
const (
	// AudioSampleRate is the playback sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferWindow is the speaker buffer length
	AudioBufferWindow = time.Second / 10

	// SpinStartFreq is the tone played when a spin begins
	SpinStartFreq = 440.0

	// ColumnStopBaseFreq is the blip for column 1; each later column
	// rises by ColumnStopFreqStep
	ColumnStopBaseFreq = 520.0
	ColumnStopFreqStep = 60.0

	// WinJingleFreq is the base tone of the payout jingle
	WinJingleFreq = 880.0

	// CueDuration is the length of the short stop/start blips
	CueDuration = 60 * time.Millisecond

	// JingleDuration is the length of the win jingle tone
	JingleDuration = 350 * time.Millisecond
)
