package survival

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-survival/internal/core"
	"github.com/vovakirdan/tui-survival/internal/games/survival/sim"
)

// Rendering characters.
const (
	PlayerHeadChar = '☻'
	PlayerBodyChar = '█'
	AimChar        = '✚'
	BarFull        = '█'
	BarEmpty       = '░'
)

// Light radius in tiles around the player at full night and in daylight.
const (
	nightLight = 5.0
	dayLight   = 30.0
	maxDark    = 190.0 / 255
)

const helpText = "A/D move  Space jump  F mine  E use  JKL, aim  I bag  1-9 slot  P pause  Q quit"

// Render draws the world window, HUD, hotbar and any open panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	g.view = newViewport(dst.Width(), dst.Height())
	g.view.follow(g.playerTile(), g.cfg.World.Width, g.cfg.World.Height)
	snap := g.sim.Snapshot(g.view.originX, g.view.originY, g.view.cols, g.view.rows)

	g.drawTiles(dst, snap)
	g.drawPlayer(dst, snap)
	g.drawAim(dst, snap)
	g.drawHUD(dst, snap)
	g.drawHotbar(dst, snap)
	g.drawFooter(dst)

	if snap.PanelOpen {
		g.drawPanel(dst, snap)
	}

	switch {
	case snap.Outcome == sim.OutcomeWon:
		g.drawCenteredMessage(dst, "YOU SURVIVED",
			fmt.Sprintf("Days: %d  |  Press R to restart", g.State().Score), core.ColorBrightGreen)
	case snap.Outcome == sim.OutcomeDied:
		g.drawCenteredMessage(dst, "YOU STARVED",
			fmt.Sprintf("Days: %d  |  Press R to restart", g.State().Score), core.ColorBrightRed)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
}

// lightRadius shrinks the visible area as darkness rises.
func lightRadius(darkness float64) float64 {
	t := core.ClampF(darkness/maxDark, 0, 1)
	return dayLight + (nightLight-dayLight)*t
}

func (g *Game) drawTiles(dst *core.Screen, snap sim.Snapshot) {
	pc := g.playerTile()
	radius := lightRadius(snap.Darkness)
	tw := snap.Window

	for dy := 0; dy < tw.H; dy++ {
		for dx := 0; dx < tw.W; dx++ {
			c := sim.TileCoord{X: tw.X0 + dx, Y: tw.Y0 + dy}
			b, _ := tw.At(c.X, c.Y)
			def := sim.Block(b)
			if b == sim.BlockAir || !def.Known {
				continue
			}
			color := def.Color
			if snap.Darkness > 0 && math.Hypot(float64(c.X-pc.X), float64(c.Y-pc.Y)) > radius {
				color = core.ColorDarkGray
			}
			sx, sy := g.view.tileToScreen(c)
			dst.SetColored(sx, sy, def.Glyph, color)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, snap sim.Snapshot) {
	tile := snap.TileSize
	p := snap.Player
	tx := core.FloorDiv(p.X+p.W/2, tile)
	top := core.FloorDiv(p.Y, tile)
	bottom := core.FloorDiv(p.Y+p.H-1e-6, tile)

	color := core.ColorBrightCyan
	if p.HP < p.MaxHP/4 {
		color = core.ColorBrightRed
	}
	for ty := top; ty <= bottom; ty++ {
		sx, sy := g.view.tileToScreen(sim.TileCoord{X: tx, Y: ty})
		if !g.inPlayArea(sx, sy) {
			continue
		}
		ch := PlayerBodyChar
		if ty == top {
			ch = PlayerHeadChar
		}
		dst.SetColored(sx, sy, ch, color)
	}
}

// drawAim marks the aimed tile. While mining it shows the break progress.
func (g *Game) drawAim(dst *core.Screen, snap sim.Snapshot) {
	if snap.PanelOpen || snap.Outcome != sim.OutcomeNone {
		return
	}
	c := g.aimTile()
	sx, sy := g.view.tileToScreen(c)
	if !g.inPlayArea(sx, sy) {
		return
	}

	ch, color := AimChar, core.ColorBrightYellow
	if snap.Mining.Active && snap.Mining.Target == c {
		ch, color = progressGlyph(snap.Mining.Fraction), core.ColorBrightWhite
	}
	if !g.sim.InReach(c) {
		color = core.ColorRed
	}
	dst.SetColored(sx, sy, ch, color)
}

func progressGlyph(f float64) rune {
	switch {
	case f < 1.0/3:
		return '░'
	case f < 2.0/3:
		return '▒'
	default:
		return '▓'
	}
}

func (g *Game) inPlayArea(sx, sy int) bool {
	return sx >= 0 && sx < g.view.cols && sy >= hudRows && sy < hudRows+g.view.rows
}

// textWriter appends colored text along one screen row.
type textWriter struct {
	dst *core.Screen
	x   int
	y   int
}

func (w *textWriter) put(text string, c core.Color) {
	w.dst.DrawTextColored(w.x, w.y, text, c)
	w.x += len([]rune(text))
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	w := &textWriter{dst: dst, x: 1}

	phase, phaseColor := "Day", core.ColorBrightYellow
	if snap.Night {
		phase, phaseColor = "Night", core.ColorBlue
	}
	w.put(fmt.Sprintf("Day %d ", snap.Day), core.ColorBrightWhite)
	w.put(fmt.Sprintf("%s %2.0f%% ", phase, snap.Phase*100), phaseColor)

	w.put(" HP ", core.ColorDefault)
	w.put(bar(snap.Player.HP, snap.Player.MaxHP, 10), core.ColorRed)
	w.put(fmt.Sprintf(" %3.0f ", snap.Player.HP), core.ColorDefault)

	w.put(" Food ", core.ColorDefault)
	w.put(bar(snap.Player.Hunger, snap.Player.MaxHunger, 10), core.ColorOrange)
	w.put(fmt.Sprintf(" %3.0f", snap.Player.Hunger), core.ColorDefault)

	goal := "endless"
	if win := g.cfg.Progression.WinDays; win > 0 {
		goal = fmt.Sprintf("survive %d days", win)
	}
	dst.DrawTextColored(dst.Width()-len(goal)-1, 0, goal, core.ColorGray)
}

// bar renders value/maxValue as a fixed-width gauge.
func bar(value, maxValue float64, width int) string {
	filled := 0
	if maxValue > 0 {
		filled = core.Clamp(int(math.Round(value/maxValue*float64(width))), 0, width)
	}
	return strings.Repeat(string(BarFull), filled) + strings.Repeat(string(BarEmpty), width-filled)
}

func (g *Game) drawHotbar(dst *core.Screen, snap sim.Snapshot) {
	reg := g.sim.Registry()
	w := &textWriter{dst: dst, x: 1, y: dst.Height() - 2}

	n := min(snap.Hotbar, len(snap.Slots))
	for i := 0; i < n; i++ {
		bracket := core.ColorGray
		if i == snap.Selected {
			bracket = core.ColorBrightYellow
		}
		w.put(fmt.Sprintf("%d[", i+1), bracket)
		g.drawStack(w, snap.Slots[i])
		w.put("] ", bracket)
	}

	if s := snap.Slots[snap.Selected]; !s.Empty() {
		w.put(" "+stackLabel(reg, s), core.ColorBrightWhite)
	} else if snap.Selected >= n {
		w.put(fmt.Sprintf(" slot %d", snap.Selected+1), core.ColorGray)
	}
}

// drawStack writes a three-cell slot: glyph and a two-digit count.
func (g *Game) drawStack(w *textWriter, s sim.Stack) {
	if s.Empty() {
		w.put("   ", core.ColorDefault)
		return
	}
	def, _ := g.sim.Registry().Item(s.Item)
	w.put(string(def.Glyph), def.Color)
	if s.Count > 99 {
		w.put("99", core.ColorDefault)
		return
	}
	w.put(fmt.Sprintf("%2d", s.Count), core.ColorDefault)
}

func (g *Game) drawFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.toast != "" {
		dst.DrawTextColored(1, y, g.toast, core.ColorBrightYellow)
		return
	}
	dst.DrawTextColored(1, y, helpText, core.ColorGray)
}

// drawPanel draws the inventory panel with the craft or smelt tab.
func (g *Game) drawPanel(dst *core.Screen, snap sim.Snapshot) {
	boxW := min(dst.Width()-2, 46)
	boxH := min(dst.Height()-2, 20)
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawPanel(box, core.ColorTan)

	w := &textWriter{dst: dst, x: box.X + 2, y: box.Y + 1}
	for _, t := range []sim.Tab{sim.TabCraft, sim.TabSmelt} {
		color := core.ColorGray
		label := " " + strings.ToUpper(t.String()) + " "
		if t == snap.Tab {
			color = core.ColorBrightYellow
			label = "[" + strings.ToUpper(t.String()) + "]"
		}
		w.put(label, color)
		w.put(" ", core.ColorDefault)
	}

	y := box.Y + 3
	if snap.Tab == sim.TabSmelt {
		y = g.drawSmeltTab(dst, box, y, snap)
	} else {
		y = g.drawCraftTab(dst, box, y)
	}

	g.drawInventoryGrid(dst, box, y+1, snap)
	dst.DrawTextColored(box.X+2, box.Bottom()-1, " K/, select  Enter ok  J/L tab  I close ", core.ColorGray)
}

func (g *Game) drawCraftTab(dst *core.Screen, box core.Rect, y int) int {
	reg := g.sim.Registry()
	inv := g.sim.Player().Inv
	for i, r := range sim.Recipes() {
		color := core.ColorGray
		if inv.HasNeed(r.Need) {
			color = core.ColorBrightGreen
		}
		marker := "  "
		if i == g.panelCursor {
			marker = "> "
		}
		need := make([]string, 0, len(r.Need))
		for _, s := range r.Need {
			need = append(need, stackLabel(reg, s))
		}
		line := fmt.Sprintf("%s%-14s <- %s", marker, stackLabel(reg, r.Output()), strings.Join(need, ", "))
		dst.DrawTextColored(box.X+2, y, clip(line, box.W-4), color)
		y++
	}
	return y
}

func (g *Game) drawSmeltTab(dst *core.Screen, box core.Rect, y int, snap sim.Snapshot) int {
	f := snap.Furnace
	dst.DrawText(box.X+2, y, clip(fmt.Sprintf("In: %-10s Out: %s", orDash(f.Input), orDash(f.Output)), box.W-4))
	y++
	w := &textWriter{dst: dst, x: box.X + 2, y: y}
	w.put(fmt.Sprintf("Fuel %4.1fs  ", f.Fuel), core.ColorOrange)
	w.put(bar(f.Progress, 1, 10), core.ColorBrightYellow)
	w.put(fmt.Sprintf(" %3.0f%%", f.Progress*100), core.ColorDefault)
	y += 2

	for i, a := range smeltActions {
		marker, color := "  ", core.ColorDefault
		if i == g.panelCursor {
			marker, color = "> ", core.ColorBrightYellow
		}
		dst.DrawTextColored(box.X+2, y, marker+a.label, color)
		y++
	}
	return y
}

// drawInventoryGrid lists every slot, five per row, up to the box bottom.
func (g *Game) drawInventoryGrid(dst *core.Screen, box core.Rect, y int, snap sim.Snapshot) {
	const perRow = 5
	for i, s := range snap.Slots {
		row, col := i/perRow, i%perRow
		if y+row >= box.Bottom()-1 {
			return
		}
		bracket := core.ColorGray
		if i == snap.Selected {
			bracket = core.ColorBrightYellow
		}
		w := &textWriter{dst: dst, x: box.X + 2 + col*7, y: y + row}
		w.put("[", bracket)
		g.drawStack(w, s)
		w.put("]", bracket)
	}
}

// drawCenteredMessage draws a boxed two-line message in the middle of the
// screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(len(title), len(subtitle)) + 4
	boxY := (dst.Height() - 5) / 2
	dst.DrawPanel(core.NewRect((dst.Width()-boxW)/2, boxY, boxW, 5), c)
	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}

func itemLabel(reg *sim.Registry, code sim.ItemCode) string {
	return strings.ReplaceAll(reg.Name(code), "_", " ")
}

func stackLabel(reg *sim.Registry, s sim.Stack) string {
	return fmt.Sprintf("%s x%d", itemLabel(reg, s.Item), s.Count)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "_", " ")
}

func clip(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
