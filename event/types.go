package event

// EventType represents the type of game event
type EventType int

const (
	// EventSpinStarted signals a spin session was accepted and the
	// outcome committed
	// Trigger: Coordinator | Payload: *SpinStartedPayload
	EventSpinStarted EventType = iota

	// EventColumnStopped signals one reel column finished animating and
	// its committed symbols are now visible
	// Trigger: Coordinator, exactly once per column per spin, in
	// ascending column order | Payload: *ColumnStoppedPayload
	EventColumnStopped

	// EventSpinResolved signals all columns committed and the win
	// evaluated
	// Trigger: Coordinator | Payload: *SpinResolvedPayload
	EventSpinResolved

	// EventPauseToggled signals the pause state flipped
	// Trigger: pause sources (input, terminal focus) | Payload: *PauseToggledPayload
	EventPauseToggled
)

// GameEvent is one queued notification
type GameEvent struct {
	Type    EventType
	Payload any
}
