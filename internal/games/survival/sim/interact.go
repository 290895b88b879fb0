package sim

import "github.com/vovakirdan/tui-survival/internal/core"

// UseKind tells what a use action did.
type UseKind int

const (
	UseNothing UseKind = iota
	UseChest
	UseEat
	UsePlace
)

// use resolves a use tap at the aim position: chest transfer, then eating
// the wielded food, then placing the wielded block.
func (s *Sim) use(ax, ay float64) (UseKind, bool) {
	c := s.aimTile(ax, ay)
	if s.world.Tile(c.X, c.Y) == BlockChest {
		if chest, ok := s.world.chests.Get(c); ok {
			return UseChest, TransferOne(chest, s.player.Inv)
		}
	}
	if s.eatSelected() {
		return UseEat, true
	}
	if s.placeSelected(c) {
		return UsePlace, true
	}
	return UseNothing, false
}

// eatSelected consumes one unit of the wielded item if it is food.
func (s *Sim) eatSelected() bool {
	st, ok := s.player.Inv.SelectedStack()
	if !ok {
		return false
	}
	def, known := s.reg.Item(st.Item)
	if !known || def.Category != CategoryFood {
		return false
	}
	effect, edible := Food(st.Item)
	if !edible {
		return false
	}
	s.player.applyFood(effect)
	s.player.Inv.RemoveOneSelected()
	return true
}

// placeSelected puts the wielded block item into an empty tile that does
// not overlap the player.
func (s *Sim) placeSelected(c TileCoord) bool {
	st, ok := s.player.Inv.SelectedStack()
	if !ok {
		return false
	}
	def, known := s.reg.Item(st.Item)
	if !known || def.Category != CategoryBlock {
		return false
	}
	if s.world.Tile(c.X, c.Y) != BlockAir {
		return false
	}
	x, y, size := tileRect(c.X, c.Y, s.cfg.World.TileSize)
	if s.player.Box().Intersects(core.NewRectF(x, y, size, size)) {
		return false
	}

	s.world.SetTile(c.X, c.Y, def.Block)
	s.player.Inv.RemoveOneSelected()
	if def.Block == BlockChest {
		if _, exists := s.world.chests.Get(c); !exists {
			s.world.chests.Put(c, RollChestLoot(s.rng, s.world.chests.Slots()))
		}
	}
	return true
}
