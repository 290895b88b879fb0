package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survival/internal/config"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeDied
)

// String returns the outcome name used in logs and run history.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeDied:
		return "died"
	default:
		return "none"
	}
}

// Tab is the selected page of the inventory panel.
type Tab int

const (
	TabCraft Tab = iota
	TabSmelt
)

// String returns the tab name.
func (t Tab) String() string {
	if t == TabSmelt {
		return "smelt"
	}
	return "craft"
}

// Intent is the per-tick input consumed by Tick. Use is a tap and is acted
// on at most once per tick; the other flags are held states.
type Intent struct {
	Move       int // -1 left, 0 none, 1 right
	Jump       bool
	Run        bool
	Hit        bool
	Use        bool
	AimX, AimY float64 // World coordinates
}

// TickResult reports what happened during a tick.
type TickResult struct {
	NewDay  bool
	Smelt   SmeltEvent
	Mine    MineEvent
	Use     UseKind
	Outcome Outcome
}

// Sim is the complete state of one run. It is not safe for concurrent use;
// the host drives it from a single loop.
type Sim struct {
	cfg    config.SurvivalConfig
	reg    *Registry
	rng    *rand.Rand
	logger *log.Logger

	world   *World
	player  *Player
	furnace Furnace
	clock   Clock
	mining  MiningSession

	panelOpen bool
	tab       Tab
	outcome   Outcome
	ticks     uint64
	elapsed   float64
}

// Option customizes a Sim.
type Option func(*Sim)

// WithLogger routes simulation events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Sim) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry replaces the item catalog used for name lookups.
func WithRegistry(reg *Registry) Option {
	return func(s *Sim) {
		if reg != nil {
			s.reg = reg
		}
	}
}

// New generates a world from seed and places the player at spawn with the
// configured starting items.
func New(cfg config.SurvivalConfig, seed int64, opts ...Option) *Sim {
	s := &Sim{
		cfg:    cfg,
		reg:    DefaultRegistry(),
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard),
		clock:  NewClock(cfg.Progression.DayCycleSec),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.world = NewWorld(cfg.World.Width, cfg.World.Height, cfg.Chest.Slots)
	Generate(s.world, s.rng, cfg.World)
	PlaceVillages(s.world, s.rng, cfg.World)

	s.player = NewPlayer(cfg.Player, cfg.World.TileSize)
	for _, it := range cfg.Player.StartItems {
		code, ok := s.reg.Code(it.Item)
		if !ok {
			s.logger.Warn("unknown start item", "item", it.Item)
			continue
		}
		s.player.Inv.Add(code, it.Count)
	}

	s.logger.Debug("world generated", "seed", seed, "width", cfg.World.Width, "height", cfg.World.Height, "chests", s.world.chests.Len())
	return s
}

// Tick advances the simulation by dt seconds. dt is clamped to the
// configured maximum. Nothing advances once an outcome is reached.
//
// Order per tick:
//  1. Clock; past the win day the run is won
//  2. Hunger and health; at zero health the run is lost
//  3. Furnace
//  4. Unless the inventory panel is open: physics, mining, use
func (s *Sim) Tick(dt float64, in Intent) TickResult {
	if s.outcome != OutcomeNone {
		return TickResult{Outcome: s.outcome}
	}
	dt = min(max(dt, 0), s.cfg.Physics.MaxDT)
	s.ticks++
	s.elapsed += dt

	var res TickResult
	if s.clock.Advance(dt) {
		res.NewDay = true
		s.logger.Info("new day", "day", s.clock.Day)
	}
	if s.clock.Won(s.cfg.Progression.WinDays) {
		s.finish(OutcomeWon)
		res.Outcome = s.outcome
		return res
	}

	s.player.updateVitals(dt, s.cfg.Player)
	if !s.player.Alive() {
		s.finish(OutcomeDied)
		res.Outcome = s.outcome
		return res
	}

	res.Smelt = s.furnace.Update(dt)
	if res.Smelt.Done {
		s.logger.Debug("smelt finished", "output", s.reg.Name(res.Smelt.Output), "overwrote", res.Smelt.Overwrote)
	}

	if !s.panelOpen {
		StepBody(s.world, &s.player.Body, clampMove(in.Move), in.Jump, in.Run, dt, s.cfg.Physics, s.cfg.World.TileSize)

		if in.Hit {
			res.Mine = s.mineTick(dt, in.AimX, in.AimY)
			if res.Mine.Broken {
				s.logger.Debug("block broken",
					"block", Block(res.Mine.Block).Name,
					"x", res.Mine.At.X, "y", res.Mine.At.Y,
					"drop", s.reg.Name(res.Mine.Drop), "kept", res.Mine.Dropped)
			}
		} else {
			s.mining.Reset()
		}

		if in.Use {
			res.Use, _ = s.use(in.AimX, in.AimY)
		}
	}

	return res
}

func (s *Sim) finish(o Outcome) {
	s.outcome = o
	s.mining.Reset()
	s.logger.Info("run finished", "outcome", o, "day", s.clock.Day, "elapsed", s.elapsed)
}

func clampMove(m int) int {
	return min(max(m, -1), 1)
}

// SelectSlot changes the wielded inventory slot.
func (s *Sim) SelectSlot(i int) bool {
	if s.outcome != OutcomeNone {
		return false
	}
	return s.player.Inv.Select(i)
}

// Craft applies recipe i of Recipes to the player inventory.
func (s *Sim) Craft(i int) bool {
	if s.outcome != OutcomeNone || i < 0 || i >= len(recipes) {
		return false
	}
	r := recipes[i]
	if !s.player.Inv.Craft(r.Need, r.Give) {
		return false
	}
	s.logger.Debug("crafted", "item", s.reg.Name(r.Output().Item), "count", r.Output().Count)
	return true
}

// FurnaceLoad moves one wielded smeltable item into the furnace.
func (s *Sim) FurnaceLoad() bool {
	if s.outcome != OutcomeNone {
		return false
	}
	return s.furnace.Load(s.player.Inv)
}

// FurnaceFuel burns one wielded fuel item into the furnace reserve.
func (s *Sim) FurnaceFuel() bool {
	if s.outcome != OutcomeNone {
		return false
	}
	return s.furnace.AddFuel(s.player.Inv)
}

// FurnaceTake collects the finished furnace output.
func (s *Sim) FurnaceTake() bool {
	if s.outcome != OutcomeNone {
		return false
	}
	return s.furnace.Take(s.player.Inv)
}

// SetTab selects the inventory panel page.
func (s *Sim) SetTab(t Tab) bool {
	if t != TabCraft && t != TabSmelt {
		return false
	}
	s.tab = t
	return true
}

// SetPanelOpen opens or closes the inventory panel. While it is open the
// player neither moves nor interacts with the world.
func (s *Sim) SetPanelOpen(open bool) {
	s.panelOpen = open
}

// PanelOpen reports whether the inventory panel is open.
func (s *Sim) PanelOpen() bool {
	return s.panelOpen
}

// Outcome returns the terminal state.
func (s *Sim) Outcome() Outcome {
	return s.outcome
}

// Config returns the configuration the run was created with.
func (s *Sim) Config() config.SurvivalConfig {
	return s.cfg
}

// Registry returns the item catalog in use.
func (s *Sim) Registry() *Registry {
	return s.reg
}

// World returns the tile world. Callers must treat it as read-only.
func (s *Sim) World() *World {
	return s.world
}

// Player returns the player. Callers must treat it as read-only.
func (s *Sim) Player() *Player {
	return s.player
}

// Clock returns the progression clock.
func (s *Sim) Clock() Clock {
	return s.clock
}

// Elapsed returns the simulated seconds of the run.
func (s *Sim) Elapsed() float64 {
	return s.elapsed
}
