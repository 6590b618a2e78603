package constant

import "time"

// Machine Geometry
const (
	// GridRows is the number of visible symbol rows per column
	GridRows = 3

	// GridColumns is the number of reel columns
	GridColumns = 5

	// SymbolCount is the number of distinct symbol types (K)
	SymbolCount = 6

	// RowHeight is the vertical extent of one symbol cell in scroll
	// units; CycleDistance derives from it
	RowHeight = 2.0

	// CycleDistance is the scroll distance after which the reel strip
	// visually repeats (RowHeight * GridRows)
	CycleDistance = RowHeight * GridRows
)

// Spin Timing
const (
	// BaseSpinDuration is the animation duration of column 0
	BaseSpinDuration = 1200 * time.Millisecond

	// StaggerIncrement is added per column index so columns stop
	// strictly left to right
	StaggerIncrement = 250 * time.Millisecond

	// DefaultScrollSpeed is the scroll advance per reference frame
	DefaultScrollSpeed = 0.9

	// WinHoldDuration is how long win highlights stay lit after resolve
	WinHoldDuration = 1500 * time.Millisecond
)

// Payout
const (
	// MinRunLength is the shortest left-anchored run that pays
	MinRunLength = 3

	// CreditsPerMatch is the payout multiplier per matched cell
	CreditsPerMatch = 10
)

// HighlightPoolCapacity bounds the reusable win-highlight sprites; one
// per grid cell is the worst case
const HighlightPoolCapacity = GridRows * GridColumns
