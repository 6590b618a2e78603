package event

// CellRef addresses one grid cell in a payload without depending on the
// spin package's types
type CellRef struct {
	Row    int
	Column int
}

// SpinStartedPayload announces an accepted spin session
type SpinStartedPayload struct {
	SessionID string
}

// ColumnStoppedPayload announces one reel column reaching its final
// symbols. Column is 1-based, matching the cadence collaborators expect
type ColumnStoppedPayload struct {
	SessionID string
	Column    int
}

// SpinResolvedPayload carries the evaluated outcome of a finished spin
type SpinResolvedPayload struct {
	SessionID string
	Payout    int64
	HasWin    bool
	Symbol    int // driving symbol identifier, valid only when HasWin
	Positions []CellRef
}

// PauseToggledPayload reports the new pause state
type PauseToggledPayload struct {
	Paused bool
}
