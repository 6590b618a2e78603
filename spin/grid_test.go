package spin

import (
	"errors"
	"testing"
)

func TestGridInitAndAccess(t *testing.T) {
	g := NewGrid(3, 5)

	if g.Rows() != 3 || g.Columns() != 5 {
		t.Fatalf("Expected 3x5 grid, got %dx%d", g.Rows(), g.Columns())
	}

	n := Symbol(0)
	g.Fill(func() Symbol {
		n++
		return n % 6
	})

	// Every cell holds a symbol in range after initialization
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			if s := g.At(row, col); !s.Valid(6) {
				t.Errorf("Expected valid symbol at (%d,%d), got %d", row, col, s)
			}
		}
	}
}

func TestGridSetColumn(t *testing.T) {
	g := NewGrid(3, 5)

	if err := g.SetColumn(2, []Symbol{4, 5, 1}); err != nil {
		t.Fatalf("SetColumn failed: %v", err)
	}
	want := []Symbol{4, 5, 1}
	for row, s := range g.Column(2) {
		if s != want[row] {
			t.Errorf("Expected column cell %d to be %d, got %d", row, want[row], s)
		}
	}

	if err := g.SetColumn(2, []Symbol{1, 2}); !errors.Is(err, ErrGridMismatch) {
		t.Errorf("Expected ErrGridMismatch for short column, got %v", err)
	}
	if err := g.SetColumn(7, []Symbol{1, 2, 3}); !errors.Is(err, ErrGridMismatch) {
		t.Errorf("Expected ErrGridMismatch for out-of-range column, got %v", err)
	}
}

func TestGridCloneEqual(t *testing.T) {
	g := NewGrid(3, 5)
	g.Fill(func() Symbol { return 3 })

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("Expected clone to equal source")
	}

	_ = c.SetColumn(0, []Symbol{1, 1, 1})
	if g.Equal(c) {
		t.Error("Expected mutated clone to differ from source")
	}
	if g.At(0, 0) != 3 {
		t.Error("Expected source untouched by clone mutation")
	}
	if g.Equal(nil) {
		t.Error("Expected inequality with nil grid")
	}
}
