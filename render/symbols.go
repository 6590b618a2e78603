package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reelspin/spin"
)

// symbolGlyphs maps symbol identifiers to their terminal presentation.
// The engine never sees these; it deals in identifiers only
var symbolGlyphs = []struct {
	glyph rune
	color tcell.Color
}{
	{'♦', tcell.ColorRed},
	{'♥', tcell.ColorFuchsia},
	{'♠', tcell.ColorWhite},
	{'♣', tcell.ColorGreen},
	{'★', tcell.ColorYellow},
	{'7', tcell.ColorAqua},
}

// glyphFor returns the rune and style for a symbol; unknown identifiers
// render as a placeholder so a bad mapping is visible, not invisible
func glyphFor(s spin.Symbol) (rune, tcell.Style) {
	if int(s) < 0 || int(s) >= len(symbolGlyphs) {
		return '?', tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	g := symbolGlyphs[s]
	return g.glyph, tcell.StyleDefault.Foreground(g.color)
}
