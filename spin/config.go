package spin

import (
	"fmt"
	"time"

	"github.com/lixenwraith/reelspin/constant"
)

// Config fixes one machine's geometry and spin policy. Validate runs
// before any session mutates state, so a bad configuration can never
// leave a partially committed grid behind
type Config struct {
	Rows        int
	Columns     int
	SymbolCount int

	// BaseDuration animates column 0; each later column adds
	// StaggerIncrement so completion order is strictly left to right
	BaseDuration     time.Duration
	StaggerIncrement time.Duration

	// ScrollSpeed is shared by all columns for a session, in scroll
	// units per reference frame
	ScrollSpeed float64

	MinRunLength    int
	CreditsPerMatch int64

	// Instant skips the time-based animation and commits the whole
	// outcome synchronously
	Instant bool
}

// DefaultConfig returns the reference machine: 3×5, six symbols,
// 1.2s base spin with a 250ms stagger
func DefaultConfig() Config {
	return Config{
		Rows:             constant.GridRows,
		Columns:          constant.GridColumns,
		SymbolCount:      constant.SymbolCount,
		BaseDuration:     constant.BaseSpinDuration,
		StaggerIncrement: constant.StaggerIncrement,
		ScrollSpeed:      constant.DefaultScrollSpeed,
		MinRunLength:     constant.MinRunLength,
		CreditsPerMatch:  constant.CreditsPerMatch,
	}
}

// Validate rejects geometry or timing that cannot run a correct spin
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: %dx%d geometry", ErrGridMismatch, c.Rows, c.Columns)
	}
	if c.SymbolCount < 2 {
		return fmt.Errorf("spin: need at least 2 symbol types, have %d", c.SymbolCount)
	}
	if c.BaseDuration <= 0 {
		return fmt.Errorf("%w: base duration %v", ErrInvalidDuration, c.BaseDuration)
	}
	if c.StaggerIncrement <= 0 {
		// Equal durations would break the left-to-right stop guarantee
		return fmt.Errorf("%w: stagger increment %v", ErrInvalidDuration, c.StaggerIncrement)
	}
	if c.ScrollSpeed <= 0 {
		return ErrInvalidSpeed
	}
	if c.MinRunLength < 2 || c.MinRunLength > c.Columns {
		return fmt.Errorf("spin: min run length %d outside 2..%d", c.MinRunLength, c.Columns)
	}
	if c.CreditsPerMatch <= 0 {
		return fmt.Errorf("spin: credits per match must be positive, have %d", c.CreditsPerMatch)
	}
	return nil
}

// columnDuration returns the animation duration for a column index
func (c Config) columnDuration(index int) time.Duration {
	return c.BaseDuration + time.Duration(index)*c.StaggerIncrement
}
