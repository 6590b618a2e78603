package spin

import "fmt"

// Grid is the R×C matrix of symbols currently displayed. Once
// initialized every cell holds exactly one symbol; cells are mutated
// only by initialization and by the coordinator committing a completed
// column
type Grid struct {
	rows, cols int
	cells      []Symbol // row-major
}

// NewGrid creates a grid with every cell set to symbol 0
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Symbol, rows*cols),
	}
}

// Rows returns the number of symbol rows
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of reel columns
func (g *Grid) Columns() int { return g.cols }

// At returns the symbol at (row, col)
func (g *Grid) At(row, col int) Symbol {
	return g.cells[row*g.cols+col]
}

// set is unexported: all mutation funnels through Fill and SetColumn
func (g *Grid) set(row, col int, s Symbol) {
	g.cells[row*g.cols+col] = s
}

// Fill initializes every cell from the generator function
func (g *Grid) Fill(next func() Symbol) {
	for i := range g.cells {
		g.cells[i] = next()
	}
}

// Column returns the symbols of one column, top to bottom
func (g *Grid) Column(col int) []Symbol {
	out := make([]Symbol, g.rows)
	for row := 0; row < g.rows; row++ {
		out[row] = g.At(row, col)
	}
	return out
}

// SetColumn overwrites one column, top to bottom. The slice length must
// match the row count
func (g *Grid) SetColumn(col int, symbols []Symbol) error {
	if col < 0 || col >= g.cols {
		return fmt.Errorf("%w: column %d of %d", ErrGridMismatch, col, g.cols)
	}
	if len(symbols) != g.rows {
		return fmt.Errorf("%w: %d symbols for %d rows", ErrGridMismatch, len(symbols), g.rows)
	}
	for row, s := range symbols {
		g.set(row, col, s)
	}
	return nil
}

// Row returns the symbols of one row, left to right
func (g *Grid) Row(row int) []Symbol {
	out := make([]Symbol, g.cols)
	copy(out, g.cells[row*g.cols:(row+1)*g.cols])
	return out
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.cells, g.cells)
	return c
}

// Equal reports cell-by-cell equality
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
