package spin

import "math/rand"

// Generator produces committed outcome grids. Every cell is drawn
// uniformly and independently over the symbol set, with no weighting
// and no correlation between cells.
//
// Generate must run, and its result be captured, before the first
// animation frame of a spin: the displayed grid is decided up front and
// is immune to frame rate, pausing and stagger
type Generator struct {
	rng         *rand.Rand
	rows, cols  int
	symbolCount int
}

// NewGenerator creates a generator over the given geometry and symbol
// set, drawing from rng
func NewGenerator(rng *rand.Rand, rows, cols, symbolCount int) *Generator {
	return &Generator{
		rng:         rng,
		rows:        rows,
		cols:        cols,
		symbolCount: symbolCount,
	}
}

// Generate returns a freshly drawn outcome grid. No shared state is
// touched; the caller owns the returned value
func (g *Generator) Generate() *Grid {
	grid := NewGrid(g.rows, g.cols)
	grid.Fill(func() Symbol {
		return Symbol(g.rng.Intn(g.symbolCount))
	})
	return grid
}
