package survival

import (
	"math"

	"github.com/vovakirdan/tui-survival/internal/core"
	"github.com/vovakirdan/tui-survival/internal/games/survival/sim"
)

// Screen layout: HUD on the first row, hotbar and help on the last two.
const (
	hudRows    = 1
	footerRows = 2
)

// viewport maps world tiles to screen cells, one tile per cell. The origin
// is the world tile drawn at the top-left of the play area.
type viewport struct {
	screenW, screenH int
	cols, rows       int // Visible tiles
	originX, originY int
}

func newViewport(screenW, screenH int) viewport {
	return viewport{
		screenW: screenW,
		screenH: screenH,
		cols:    max(screenW, 1),
		rows:    max(screenH-hudRows-footerRows, 1),
	}
}

// follow centers the view on the given tile, clamped to the world so that
// no space outside it is shown unless the world is smaller than the view.
func (v *viewport) follow(c sim.TileCoord, worldW, worldH int) {
	v.originX = followAxis(c.X, v.cols, worldW)
	v.originY = followAxis(c.Y, v.rows, worldH)
}

func followAxis(center, span, world int) int {
	if world <= span {
		return -(span - world) / 2
	}
	return core.Clamp(center-span/2, 0, world-span)
}

// tileToScreen returns the screen cell of a tile.
func (v viewport) tileToScreen(c sim.TileCoord) (int, int) {
	return c.X - v.originX, c.Y - v.originY + hudRows
}

// screenToTile returns the tile drawn at a screen cell, if the cell lies
// inside the play area.
func (v viewport) screenToTile(sx, sy int) (sim.TileCoord, bool) {
	if sx < 0 || sx >= v.cols || sy < hudRows || sy >= hudRows+v.rows {
		return sim.TileCoord{}, false
	}
	return sim.TileCoord{X: v.originX + sx, Y: v.originY + sy - hudRows}, true
}

// aimCursor is the tile the player points at, either relative to the player
// (keyboard) or under the mouse pointer.
type aimCursor struct {
	dx, dy     int
	reach      int
	usePointer bool
	pointer    core.Pointer
}

func newAimCursor(rangeTiles float64) aimCursor {
	return aimCursor{dx: 1, reach: max(int(math.Floor(rangeTiles)), 1)}
}

// update applies aim keys and pointer motion. A moved pointer takes over;
// an aim key hands control back to the keyboard.
func (a *aimCursor) update(in core.InputFrame) {
	if in.Pointer.Valid && in.Pointer != a.pointer {
		a.pointer = in.Pointer
		a.usePointer = true
	}

	dx, dy := 0, 0
	if in.Has(core.ActionAimLeft) {
		dx--
	}
	if in.Has(core.ActionAimRight) {
		dx++
	}
	if in.Has(core.ActionAimUp) {
		dy--
	}
	if in.Has(core.ActionAimDown) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return
	}
	a.usePointer = false
	a.dx = core.Clamp(a.dx+dx, -a.reach, a.reach)
	a.dy = core.Clamp(a.dy+dy, -a.reach, a.reach)
}
