package sim

// TileWindow is a rectangular copy of world cells starting at (X0, Y0).
type TileWindow struct {
	X0, Y0 int
	W, H   int
	Tiles  [][]BlockCode // Tiles[dy][dx]
}

// At returns the block at world coordinates (x, y) if it lies inside the
// window.
func (tw TileWindow) At(x, y int) (BlockCode, bool) {
	dx, dy := x-tw.X0, y-tw.Y0
	if dx < 0 || dy < 0 || dx >= tw.W || dy >= tw.H {
		return BlockAir, false
	}
	return tw.Tiles[dy][dx], true
}

// PlayerView is the rendered state of the player.
type PlayerView struct {
	X, Y, W, H float64
	VX, VY     float64
	OnGround   bool
	HP         float64
	Hunger     float64
	MaxHP      float64
	MaxHunger  float64
}

// FurnaceView is the furnace status for the smelt panel.
type FurnaceView struct {
	Input    string // "" when empty
	Output   string
	Fuel     float64 // Seconds of burn left
	Progress float64 // Fraction of the current smelt in [0,1]
}

// MiningView is the crosshair feedback of the mining session.
type MiningView struct {
	Active   bool
	Target   TileCoord
	Fraction float64
}

// Snapshot is a read-only copy of the state a renderer needs.
type Snapshot struct {
	Tick     uint64
	Elapsed  float64
	WorldW   int
	WorldH   int
	TileSize float64

	Window TileWindow
	Player PlayerView

	Day      int
	Phase    float64
	Night    bool
	Darkness float64

	Slots    []Stack
	Selected int
	Hotbar   int

	Furnace FurnaceView
	Mining  MiningView

	PanelOpen bool
	Tab       Tab
	Outcome   Outcome
}

// Snapshot captures the current state with the tile window
// [x0, x0+w) x [y0, y0+h).
func (s *Sim) Snapshot(x0, y0, w, h int) Snapshot {
	p := s.player
	return Snapshot{
		Tick:     s.ticks,
		Elapsed:  s.elapsed,
		WorldW:   s.world.W,
		WorldH:   s.world.H,
		TileSize: s.cfg.World.TileSize,
		Window: TileWindow{
			X0: x0, Y0: y0, W: max(w, 0), H: max(h, 0),
			Tiles: s.world.Window(x0, y0, w, h),
		},
		Player: PlayerView{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			VX: p.VX, VY: p.VY,
			OnGround:  p.OnGround,
			HP:        p.HP,
			Hunger:    p.Hunger,
			MaxHP:     p.MaxHP,
			MaxHunger: p.MaxHunger,
		},
		Day:      s.clock.Day,
		Phase:    s.clock.Phase(),
		Night:    s.clock.IsNight(),
		Darkness: s.clock.Darkness(),
		Slots:    p.Inv.Stacks(),
		Selected: p.Inv.Selected(),
		Hotbar:   s.cfg.Player.HotbarSlots,
		Furnace: FurnaceView{
			Input:    s.reg.Name(s.furnace.Input),
			Output:   s.reg.Name(s.furnace.Output),
			Fuel:     s.furnace.Fuel,
			Progress: s.furnace.ProgressFraction(),
		},
		Mining: MiningView{
			Active:   s.mining.Active,
			Target:   s.mining.Target,
			Fraction: s.MiningFraction(),
		},
		PanelOpen: s.panelOpen,
		Tab:       s.tab,
		Outcome:   s.outcome,
	}
}
