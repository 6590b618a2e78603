package spin

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one in-flight spin: the committed outcome grid,
// per-column completion flags, and the start timestamp in game time.
// The committed grid is write-once; columns only ever read their slice
// of it. At most one session is active at a time
type Session struct {
	ID        string
	committed *Grid
	stopped   []bool
	remaining int
	startTime time.Time

	// done delivers the evaluated result to the Spin caller exactly
	// once. Buffered so resolve never blocks the frame loop on a caller
	// that abandoned the wait
	done chan WinResult
}

func newSession(committed *Grid, startTime time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		committed: committed,
		stopped:   make([]bool, committed.Columns()),
		remaining: committed.Columns(),
		startTime: startTime,
		done:      make(chan WinResult, 1),
	}
}

// markStopped flags one column complete; returns false if it was
// already flagged, guarding the exactly-once notification contract
func (s *Session) markStopped(col int) bool {
	if s.stopped[col] {
		return false
	}
	s.stopped[col] = true
	s.remaining--
	return true
}
