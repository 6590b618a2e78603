package spin

import (
	"github.com/samber/lo"
)

// Position addresses one highlighted grid cell
type Position struct {
	Row int
	Col int
}

// WinResult is the immutable outcome of evaluating a committed grid:
// total payout, the symbol driving the first qualifying row (top to
// bottom), and the cell positions to highlight
type WinResult struct {
	Payout    int64
	Symbol    Symbol
	HasWin    bool
	Positions []Position
}

// Evaluate scans each row independently for a left-anchored run of
// identical symbols. Counting starts at column 0 and stops at the first
// mismatch; there is no wrap-around and no scan from the right. A run
// pays only at length >= minRun, runLength * creditsPerMatch credits.
//
// Pure and deterministic for a given grid
func Evaluate(g *Grid, minRun int, creditsPerMatch int64) WinResult {
	var result WinResult

	for row := 0; row < g.Rows(); row++ {
		runLength := leadingRun(g.Row(row))
		if runLength < minRun {
			continue
		}

		result.Payout += int64(runLength) * creditsPerMatch
		if !result.HasWin {
			// First qualifying row drives the reported symbol
			result.HasWin = true
			result.Symbol = g.At(row, 0)
		}
		result.Positions = append(result.Positions, lo.Map(lo.Range(runLength), func(col int, _ int) Position {
			return Position{Row: row, Col: col}
		})...)
	}

	result.Positions = lo.Uniq(result.Positions)
	return result
}

// leadingRun counts identical symbols from the left edge of a row
func leadingRun(row []Symbol) int {
	run := 1
	for col := 1; col < len(row); col++ {
		if row[col] != row[0] {
			break
		}
		run++
	}
	return run
}
