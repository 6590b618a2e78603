package spin

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/engine"
	"github.com/lixenwraith/reelspin/event"
)

// StakeSource is the credit collaborator's veto over starting a spin.
// The coordinator never moves credit itself; it only asks permission
// and later hands the collaborator a WinResult through the event queue
type StakeSource interface {
	CanSpin() bool
}

// Coordinator orchestrates one spin across all reel columns: commits
// the outcome up front, staggers the per-column animations, applies
// each column's committed symbols when its animation completes, and
// evaluates the win once all columns have stopped.
//
// All mutation of the grid funnels through here, under the coordinator
// lock: the frame loop holds it while stepping columns and committing,
// Spin holds it while registering a session (and, in instant mode,
// committing on the caller's goroutine). Readers on other goroutines
// go through Snapshot, which copies under the same lock
type Coordinator struct {
	mu sync.Mutex

	cfg     Config
	clock   *engine.PausableClock
	queue   *event.EventQueue
	gen     *Generator
	grid    *Grid
	columns []*Column
	stake   StakeSource
	logger  *zap.Logger

	session *Session
}

// NewCoordinator validates the config and builds the machine: the grid
// is filled with random symbols at startup and every column strip bound
// to its initial contents
func NewCoordinator(cfg Config, clock *engine.PausableClock, queue *event.EventQueue, rng *rand.Rand, stake StakeSource, logger *zap.Logger) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	gen := NewGenerator(rng, cfg.Rows, cfg.Columns, cfg.SymbolCount)
	grid := gen.Generate()

	columns := make([]*Column, cfg.Columns)
	for i := range columns {
		columns[i] = NewColumn(i, 0)
		columns[i].BindStrip(grid.Column(i))
	}

	return &Coordinator{
		cfg:     cfg,
		clock:   clock,
		queue:   queue,
		gen:     gen,
		grid:    grid,
		columns: columns,
		stake:   stake,
		logger:  logger,
	}, nil
}

// Grid returns the displayed grid without locking. Callers off the
// frame-loop goroutine must use Snapshot instead
func (c *Coordinator) Grid() *Grid { return c.grid }

// Columns returns the reel columns without locking; same caveat as Grid
func (c *Coordinator) Columns() []*Column { return c.columns }

// Snapshot is the renderer's view of the machine: deep copies taken
// under the coordinator lock. Spin mutates grid and strip memory on the
// caller's goroutine, so the renderer must never alias it
type Snapshot struct {
	Grid     *Grid
	Offsets  []float64
	Strips   [][]Symbol
	Spinning bool
}

// Snapshot copies the displayed grid and per-column scroll state
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	offsets := make([]float64, len(c.columns))
	strips := make([][]Symbol, len(c.columns))
	for i, col := range c.columns {
		offsets[i] = col.visualOffset
		strips[i] = append([]Symbol(nil), col.strip...)
	}
	return Snapshot{
		Grid:     c.grid.Clone(),
		Offsets:  offsets,
		Strips:   strips,
		Spinning: c.session != nil,
	}
}

// Spinning reports whether a session is in flight
func (c *Coordinator) Spinning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

// SetInstant toggles instant mode for subsequent spins
func (c *Coordinator) SetInstant(instant bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Instant = instant
}

// Spin runs one complete spin and blocks the caller until the result
// is evaluated. The request is rejected, with no state mutated, while
// another session is in flight or the stake source declines.
//
// A spin requested while paused is accepted: its time reference is the
// frozen game clock, so it simply does not progress until resumed
func (c *Coordinator) Spin(ctx context.Context) (WinResult, error) {
	c.mu.Lock()

	if c.session != nil {
		c.mu.Unlock()
		return WinResult{}, ErrSpinInFlight
	}
	if c.stake != nil && !c.stake.CanSpin() {
		c.mu.Unlock()
		return WinResult{}, ErrInsufficientStake
	}

	// Commit the outcome before any animation frame runs
	committed := c.gen.Generate()
	if committed.Rows() != c.grid.Rows() || committed.Columns() != len(c.columns) {
		c.mu.Unlock()
		return WinResult{}, ErrGridMismatch
	}

	sess := newSession(committed, c.clock.Now())

	if !c.cfg.Instant {
		for i, col := range c.columns {
			if err := col.Start(sess.startTime, c.cfg.columnDuration(i), c.cfg.ScrollSpeed); err != nil {
				// Roll the already-started columns back to idle so the
				// rejected spin leaves no trace
				for _, started := range c.columns[:i] {
					started.state = columnIdle
					started.visualOffset = started.restOffset
				}
				c.mu.Unlock()
				return WinResult{}, err
			}
		}
	}

	c.session = sess
	c.queue.Push(event.GameEvent{
		Type:    event.EventSpinStarted,
		Payload: &event.SpinStartedPayload{SessionID: sess.ID},
	})
	c.logger.Info("spin started",
		zap.String("session", sess.ID),
		zap.Bool("instant", c.cfg.Instant),
		zap.Bool("paused", c.clock.IsPaused()),
	)

	if c.cfg.Instant {
		// Same commit path as the animated spin, all columns at once
		for i := range c.columns {
			c.commitColumn(i)
		}
		result := c.resolve()
		c.mu.Unlock()
		return result, nil
	}

	c.mu.Unlock()

	select {
	case result := <-sess.done:
		return result, nil
	case <-ctx.Done():
		// The session itself always runs to completion; only the wait
		// is abandoned
		return WinResult{}, ctx.Err()
	}
}

// Update steps every column in column order within the single frame
// callback. Implements engine.Updater
func (c *Coordinator) Update(frame engine.FrameContext) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return
	}

	for i, col := range c.columns {
		if col.Step(frame) {
			c.commitColumn(i)
		}
	}

	if c.session.remaining == 0 {
		c.resolve()
	}
}

// commitColumn writes one column's slice of the committed grid into the
// display grid and fires the column-stopped notification, exactly once
// per column per session. Both the animated and the instant path end up
// here, so the two cannot diverge
func (c *Coordinator) commitColumn(i int) {
	sess := c.session
	if sess == nil || !sess.markStopped(i) {
		return
	}

	// Row-aligned overwrite from the write-once committed grid. The
	// geometry was validated when the session was registered, so a
	// mismatch here is machine-state corruption, not an input error
	if err := c.grid.SetColumn(i, sess.committed.Column(i)); err != nil {
		panic(fmt.Sprintf("commit column %d: %v", i, err))
	}
	c.columns[i].BindStrip(sess.committed.Column(i))

	c.queue.Push(event.GameEvent{
		Type: event.EventColumnStopped,
		Payload: &event.ColumnStoppedPayload{
			SessionID: sess.ID,
			Column:    i + 1, // 1-based for collaborators
		},
	})
}

// resolve evaluates the fully committed grid, fires the resolved
// notification and delivers the result to the waiting caller
func (c *Coordinator) resolve() WinResult {
	sess := c.session
	result := Evaluate(c.grid, c.cfg.MinRunLength, c.cfg.CreditsPerMatch)

	c.queue.Push(event.GameEvent{
		Type: event.EventSpinResolved,
		Payload: &event.SpinResolvedPayload{
			SessionID: sess.ID,
			Payout:    result.Payout,
			HasWin:    result.HasWin,
			Symbol:    int(result.Symbol),
			Positions: lo.Map(result.Positions, func(p Position, _ int) event.CellRef {
				return event.CellRef{Row: p.Row, Column: p.Col}
			}),
		},
	})
	c.logger.Info("spin resolved",
		zap.String("session", sess.ID),
		zap.Int64("payout", result.Payout),
		zap.Bool("win", result.HasWin),
	)

	c.session = nil
	sess.done <- result
	return result
}
