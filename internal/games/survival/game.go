// Package survival adapts the survival simulation to the platform's
// Game interface: it turns input frames into per-tick intents, keeps the
// camera and aim cursor, and draws the world, HUD and inventory panel.
package survival

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survival/internal/config"
	"github.com/vovakirdan/tui-survival/internal/core"
	"github.com/vovakirdan/tui-survival/internal/games/survival/sim"
	"github.com/vovakirdan/tui-survival/internal/registry"
)

// Game IDs registered by this package.
const (
	ModeSurvival = "survival"
	ModeEndless  = "survival_endless"
)

// toastSeconds is how long a feedback message stays on the help row.
const toastSeconds = 2.5

// Game implements registry.Game on top of sim.Sim.
type Game struct {
	mode    string
	sim     *sim.Sim
	cfg     config.SurvivalConfig
	runtime core.RuntimeConfig
	dt      float64
	paused  bool

	aim         aimCursor
	view        viewport // Layout of the last rendered frame
	panelCursor int

	toast      string
	toastTicks int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset) // "" keeps the config as loaded
}

// SetLogger routes simulation events of new runs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a survival game that is won after the configured number of days.
func New() *Game {
	return &Game{mode: ModeSurvival}
}

// NewEndless creates a survival game without a win condition.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Survival (endless)"
	}
	return "Survival"
}

// Reset generates a new world from the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime.Normalized(nil)
	g.dt = g.runtime.Step()

	cfg, err := config.LoadSurvival(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}
	if difficultyPreset != "" {
		config.ApplySurvivalPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeEndless {
		config.ApplySurvivalPreset(&cfg, config.DifficultyEndless)
	}
	g.cfg = cfg

	g.sim = sim.New(cfg, runtime.Seed, sim.WithLogger(logger))
	g.paused = false
	g.aim = newAimCursor(cfg.Mining.RangeTiles)
	g.view = newViewport(runtime.ScreenW, runtime.ScreenH)
	g.view.follow(g.playerTile(), cfg.World.Width, cfg.World.Height)
	g.panelCursor = 0
	g.toast = ""
	g.toastTicks = 0

	logger.Info("run started", "mode", g.mode, "seed", runtime.Seed, "win_days", cfg.Progression.WinDays)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim.Outcome() != sim.OutcomeNone {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickToast()
	g.handlePanelToggle(in)
	for _, cmd := range in.Commands {
		g.runCommand(cmd)
	}

	if g.sim.PanelOpen() {
		g.handlePanelNav(in)
	} else {
		g.aim.update(in)
	}

	res := g.sim.Tick(g.dt, g.intent(in))
	g.report(res)

	return core.StepResult{State: g.State()}
}

// intent converts the frame into the per-tick simulation input.
func (g *Game) intent(in core.InputFrame) sim.Intent {
	move := 0
	if in.Has(core.ActionLeft) {
		move--
	}
	if in.Has(core.ActionRight) {
		move++
	}
	ax, ay := g.aimWorld()
	return sim.Intent{
		Move: move,
		Jump: in.Has(core.ActionJump),
		Run:  in.Has(core.ActionRun),
		Hit:  in.Has(core.ActionHit),
		Use:  in.Has(core.ActionUse),
		AimX: ax,
		AimY: ay,
	}
}

// aimTile returns the tile under the aim cursor.
func (g *Game) aimTile() sim.TileCoord {
	if g.aim.usePointer {
		if c, ok := g.view.screenToTile(g.aim.pointer.X, g.aim.pointer.Y); ok {
			return c
		}
	}
	pc := g.playerTile()
	return sim.TileCoord{X: pc.X + g.aim.dx, Y: pc.Y + g.aim.dy}
}

// aimWorld returns the world coordinates of the aimed tile center.
func (g *Game) aimWorld() (float64, float64) {
	c := g.aimTile()
	tile := g.cfg.World.TileSize
	return float64(c.X)*tile + tile/2, float64(c.Y)*tile + tile/2
}

// playerTile is the tile holding the player's center.
func (g *Game) playerTile() sim.TileCoord {
	cx, cy := g.sim.Player().Center()
	tile := g.cfg.World.TileSize
	return sim.TileCoord{X: core.FloorDiv(cx, tile), Y: core.FloorDiv(cy, tile)}
}

func (g *Game) handlePanelToggle(in core.InputFrame) {
	switch {
	case in.Has(core.ActionInventory):
		g.sim.SetPanelOpen(!g.sim.PanelOpen())
		g.panelCursor = 0
	case in.Has(core.ActionBack) && g.sim.PanelOpen():
		g.sim.SetPanelOpen(false)
	}
}

// smeltActions are the rows of the smelt tab, in display order.
var smeltActions = []struct {
	label string
	kind  core.CommandKind
}{
	{"Load selected item", core.CommandFurnaceLoad},
	{"Add selected as fuel", core.CommandFurnaceFuel},
	{"Take output", core.CommandFurnaceTake},
}

// handlePanelNav moves the panel cursor and runs the highlighted entry.
func (g *Game) handlePanelNav(in core.InputFrame) {
	snap := g.sim.Snapshot(0, 0, 0, 0)
	rows := len(sim.Recipes())
	if snap.Tab == sim.TabSmelt {
		rows = len(smeltActions)
	}

	switch {
	case in.Has(core.ActionAimUp):
		g.panelCursor = (g.panelCursor + rows - 1) % rows
	case in.Has(core.ActionAimDown):
		g.panelCursor = (g.panelCursor + 1) % rows
	case in.Has(core.ActionAimLeft), in.Has(core.ActionAimRight):
		next := sim.TabSmelt
		if snap.Tab == sim.TabSmelt {
			next = sim.TabCraft
		}
		g.runCommand(core.Command{Kind: core.CommandSetTab, Index: int(next)})
	}
	g.panelCursor = min(g.panelCursor, rows-1)

	if !in.Has(core.ActionConfirm) {
		return
	}
	if snap.Tab == sim.TabSmelt {
		g.runCommand(core.Command{Kind: smeltActions[g.panelCursor].kind})
		return
	}
	g.runCommand(core.Command{Kind: core.CommandCraft, Index: g.panelCursor})
}

// runCommand applies a UI command and reports failures on the help row.
func (g *Game) runCommand(cmd core.Command) {
	reg := g.sim.Registry()
	switch cmd.Kind {
	case core.CommandSelectSlot:
		g.sim.SelectSlot(cmd.Index)
	case core.CommandSetTab:
		if g.sim.SetTab(sim.Tab(cmd.Index)) {
			g.panelCursor = 0
		}
	case core.CommandCraft:
		recipes := sim.Recipes()
		if cmd.Index < 0 || cmd.Index >= len(recipes) {
			return
		}
		out := recipes[cmd.Index].Output()
		if g.sim.Craft(cmd.Index) {
			g.flash(fmt.Sprintf("Crafted %s", stackLabel(reg, out)))
		} else {
			g.flash(fmt.Sprintf("Cannot craft %s", itemLabel(reg, out.Item)))
		}
	case core.CommandFurnaceLoad:
		if !g.sim.FurnaceLoad() {
			g.flash("Furnace: select a smeltable item and empty the input")
		}
	case core.CommandFurnaceFuel:
		if !g.sim.FurnaceFuel() {
			g.flash("Furnace: select wood, plank or coal")
		}
	case core.CommandFurnaceTake:
		if !g.sim.FurnaceTake() {
			g.flash("Furnace: nothing to take or inventory full")
		}
	}
}

// report turns notable tick events into feedback messages.
func (g *Game) report(res sim.TickResult) {
	reg := g.sim.Registry()
	switch {
	case res.NewDay:
		g.flash(fmt.Sprintf("Day %d begins", g.sim.Clock().Day))
	case res.Smelt.Done:
		g.flash(fmt.Sprintf("Furnace: %s ready", itemLabel(reg, res.Smelt.Output)))
	case res.Mine.Broken && res.Mine.Drop != sim.ItemNone && !res.Mine.Dropped:
		g.flash("Inventory full, drop lost")
	}
}

func (g *Game) flash(msg string) {
	g.toast = msg
	g.toastTicks = int(toastSeconds * float64(g.runtime.TickRate))
}

func (g *Game) tickToast() {
	if g.toastTicks > 0 {
		g.toastTicks--
		if g.toastTicks == 0 {
			g.toast = ""
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	outcome := g.sim.Outcome()
	return core.GameState{
		Score:    g.sim.Clock().DaysSurvived(),
		GameOver: outcome != sim.OutcomeNone,
		Won:      outcome == sim.OutcomeWon,
		Paused:   g.paused,
	}
}

// Elapsed returns the simulated seconds of the current run.
func (g *Game) Elapsed() float64 {
	if g.sim == nil {
		return 0
	}
	return g.sim.Elapsed()
}

// Register the game modes with the registry
func init() {
	registry.Register(ModeSurvival, func() registry.Game {
		return New()
	}, registry.WithSummary("Survive the configured number of days"))
	registry.Register(ModeEndless, func() registry.Game {
		return NewEndless()
	}, registry.WithSummary("No day goal, play until you starve"))
}
