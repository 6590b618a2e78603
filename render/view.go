// Package render draws the machine: five reel columns scrolling over a
// duplicated symbol strip, a status line, and pooled win highlights.
// It owns the screen; the spin engine only ever hands it offsets and
// symbols
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reelspin/constant"
	"github.com/lixenwraith/reelspin/credit"
	"github.com/lixenwraith/reelspin/engine"
	"github.com/lixenwraith/reelspin/event"
	"github.com/lixenwraith/reelspin/spin"
)

// Cell layout in terminal cells
const (
	cellWidth   = 6
	cellHeight  = int(constant.RowHeight)
	reelGap     = 1
	windowRows  = constant.GridRows * cellHeight
	borderPad   = 1
	statusLines = 2
)

// View renders the machine every frame and consumes resolve events to
// light up winning cells
type View struct {
	screen tcell.Screen
	coord  *spin.Coordinator
	wallet *credit.Wallet
	pool   *spin.SpritePool

	highlights   []*spin.HighlightSprite
	highlightEnd time.Time
	lastPayout   int64
	lastWin      bool

	originX, originY int
}

// NewView creates the view. The screen must already be initialized;
// without a bound screen the machine cannot start, so that failure is
// the caller's to surface
func NewView(screen tcell.Screen, coord *spin.Coordinator, wallet *credit.Wallet, pool *spin.SpritePool) *View {
	return &View{
		screen: screen,
		coord:  coord,
		wallet: wallet,
		pool:   pool,
	}
}

// EventTypes implements event.Handler
func (v *View) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpinStarted,
		event.EventSpinResolved,
	}
}

// HandleEvent tracks resolve outcomes for the highlight overlay
func (v *View) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSpinStarted:
		v.releaseHighlights()
		v.lastPayout = 0
		v.lastWin = false

	case event.EventSpinResolved:
		payload, ok := ev.Payload.(*event.SpinResolvedPayload)
		if !ok {
			return
		}
		v.lastPayout = payload.Payout
		v.lastWin = payload.HasWin
		for _, pos := range payload.Positions {
			sprite, err := v.pool.Acquire()
			if err != nil {
				break // pool sized for the full grid; break just in case
			}
			sprite.Row = pos.Row
			sprite.Col = pos.Column
			v.highlights = append(v.highlights, sprite)
		}
	}
}

// Update implements engine.Updater: one full redraw per frame. All
// machine state is read through a locked snapshot; a Spin call on the
// input goroutine mutates grid and strip memory, so the renderer never
// touches the live structures
func (v *View) Update(frame engine.FrameContext) {
	if v.highlightEnd.IsZero() && len(v.highlights) > 0 {
		v.highlightEnd = frame.GameNow.Add(constant.WinHoldDuration)
	}
	if !v.highlightEnd.IsZero() && frame.GameNow.After(v.highlightEnd) {
		v.releaseHighlights()
	}

	snap := v.coord.Snapshot()

	v.screen.Clear()
	v.layout()
	v.drawFrame()
	v.drawReels(snap)
	v.drawHighlights(snap)
	v.drawStatus(snap, frame.Paused)
	v.screen.Show()
}

// releaseHighlights returns every sprite to the pool
func (v *View) releaseHighlights() {
	for _, s := range v.highlights {
		v.pool.Release(s)
	}
	v.highlights = v.highlights[:0]
	v.highlightEnd = time.Time{}
}

// layout centers the reel window on the current screen size
func (v *View) layout() {
	w, h := v.screen.Size()
	totalWidth := constant.GridColumns*cellWidth + (constant.GridColumns-1)*reelGap
	v.originX = (w - totalWidth) / 2
	v.originY = (h - windowRows - statusLines) / 2
	if v.originX < borderPad {
		v.originX = borderPad
	}
	if v.originY < borderPad {
		v.originY = borderPad
	}
}

// drawFrame draws the cabinet border around the reel window
func (v *View) drawFrame() {
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkGoldenrod)
	totalWidth := constant.GridColumns*cellWidth + (constant.GridColumns-1)*reelGap

	for x := v.originX - 1; x <= v.originX+totalWidth; x++ {
		v.screen.SetContent(x, v.originY-1, tcell.RuneHLine, nil, style)
		v.screen.SetContent(x, v.originY+windowRows, tcell.RuneHLine, nil, style)
	}
	for y := v.originY - 1; y <= v.originY+windowRows; y++ {
		v.screen.SetContent(v.originX-1, y, tcell.RuneVLine, nil, style)
		v.screen.SetContent(v.originX+totalWidth, y, tcell.RuneVLine, nil, style)
	}
}

// drawReels samples each column's strip at its wrapped offset. The
// strip is the column's symbols duplicated, so any shift inside one
// cycle stays in bounds
func (v *View) drawReels(snap spin.Snapshot) {
	for i, strip := range snap.Strips {
		x := v.originX + i*(cellWidth+reelGap)
		shift := int(math.Floor(snap.Offsets[i]))

		for row := 0; row < windowRows; row++ {
			stripRow := row + shift
			symbolIdx := stripRow / cellHeight
			if len(strip) == 0 || symbolIdx >= len(strip) {
				continue
			}
			if stripRow%cellHeight != 0 {
				continue // glyph sits on the first line of its cell
			}
			glyph, style := glyphFor(strip[symbolIdx])
			v.screen.SetContent(x+cellWidth/2, v.originY+row, glyph, nil, style)
		}
	}
}

// drawHighlights overlays winning cells in reverse video
func (v *View) drawHighlights(snap spin.Snapshot) {
	for _, s := range v.highlights {
		glyph, style := glyphFor(snap.Grid.At(s.Row, s.Col))
		x := v.originX + s.Col*(cellWidth+reelGap) + cellWidth/2
		y := v.originY + s.Row*cellHeight
		v.screen.SetContent(x, y, glyph, nil, style.Reverse(true).Bold(true))
	}
}

// drawStatus renders balance, bet, outcome and key help
func (v *View) drawStatus(snap spin.Snapshot, paused bool) {
	y := v.originY + windowRows + 1

	status := fmt.Sprintf("balance %s  bet %s", v.wallet.Balance(), v.wallet.Bet())
	switch {
	case paused:
		status += "  [PAUSED]"
	case snap.Spinning:
		status += "  spinning..."
	case v.lastWin:
		status += fmt.Sprintf("  WIN +%d", v.lastPayout)
	}
	v.drawText(v.originX-1, y, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	help := "space spin  p pause  i instant  m mute  q quit"
	v.drawText(v.originX-1, y+1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (v *View) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
