package sim

import "github.com/vovakirdan/tui-survival/internal/core"

// MiningSession tracks progress towards breaking one tile. Active is false
// while idle; Target is kept so the next hit on the same tile can resume
// from zero without a retarget.
type MiningSession struct {
	Active   bool
	Target   TileCoord
	Progress float64 // Seconds of effective mining on Target
}

// Reset returns the session to idle.
func (m *MiningSession) Reset() {
	m.Active = false
	m.Progress = 0
}

// MineEvent describes a tile broken during a tick.
type MineEvent struct {
	Broken  bool
	At      TileCoord
	Block   BlockCode
	Drop    ItemCode // ItemNone when the block drops nothing
	Dropped bool     // False when the inventory could not take the drop
}

// aimTile converts a world position to the tile under it.
func (s *Sim) aimTile(ax, ay float64) TileCoord {
	tile := s.cfg.World.TileSize
	return TileCoord{core.FloorDiv(ax, tile), core.FloorDiv(ay, tile)}
}

// InReach reports whether the tile center lies within mining range of the
// player center.
func (s *Sim) InReach(c TileCoord) bool {
	tile := s.cfg.World.TileSize
	px, py := s.player.Center()
	bx := float64(c.X)*tile + tile/2
	by := float64(c.Y)*tile + tile/2
	reach := s.cfg.Mining.RangeTiles * tile
	dx, dy := px-bx, py-by
	return dx*dx+dy*dy <= reach*reach
}

// toolMultiplier returns the mining speed factor of the wielded item.
func (s *Sim) toolMultiplier() float64 {
	if st, ok := s.player.Inv.SelectedStack(); ok && st.Item == ItemPickaxe {
		return s.cfg.Mining.PickaxeMultiplier
	}
	return 1
}

// mineTick advances the mining session while hit is held.
func (s *Sim) mineTick(dt, ax, ay float64) MineEvent {
	c := s.aimTile(ax, ay)
	if !s.world.InBounds(c.X, c.Y) {
		s.mining.Reset()
		return MineEvent{}
	}
	b := s.world.Tile(c.X, c.Y)
	def := Block(b)
	if !def.Minable() || !s.InReach(c) {
		s.mining.Reset()
		return MineEvent{}
	}

	if s.mining.Target != c {
		s.mining.Target = c
		s.mining.Progress = 0
	}
	s.mining.Active = true
	s.mining.Progress += dt * s.toolMultiplier()
	if s.mining.Progress < def.MineTime {
		return MineEvent{}
	}

	s.world.SetTile(c.X, c.Y, BlockAir)
	if b == BlockChest && s.cfg.Chest.PurgeOnBreak {
		s.world.chests.Remove(c)
	}
	ev := MineEvent{Broken: true, At: c, Block: b}
	if drop, ok := s.dropFor(b, def); ok {
		ev.Drop = drop
		ev.Dropped = s.player.Inv.Add(drop, 1)
	}
	s.mining.Reset()
	return ev
}

// dropFor rolls the item granted for breaking b. Stone yields iron ore or
// coal 10% of the time each.
func (s *Sim) dropFor(b BlockCode, def BlockDef) (ItemCode, bool) {
	if b == BlockStone {
		return rollStoneDrop(s.rng.Float64()), true
	}
	return def.Drop, def.HasDrop
}

func rollStoneDrop(r float64) ItemCode {
	switch {
	case r < 0.10:
		return ItemIronOre
	case r < 0.20:
		return ItemCoal
	default:
		return ItemStone
	}
}

// MiningFraction returns progress towards breaking the current target in
// [0,1], or 0 while idle.
func (s *Sim) MiningFraction() float64 {
	if !s.mining.Active {
		return 0
	}
	def := Block(s.world.Tile(s.mining.Target.X, s.mining.Target.Y))
	if def.MineTime <= 0 {
		return 0
	}
	return min(s.mining.Progress/def.MineTime, 1)
}
