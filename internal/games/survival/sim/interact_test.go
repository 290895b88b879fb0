package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-survival/internal/config"
)

func useAt(tx, ty int) Intent {
	ax, ay := tileCenter(tx, ty)
	return Intent{Use: true, AimX: ax, AimY: ay}
}

func TestEatFourApplesAtSpawn(t *testing.T) {
	tests := []struct {
		name               string
		hunger, hp         float64
		wantHunger, wantHP []float64
	}{
		{
			name:   "unclamped",
			hunger: 10, hp: 50,
			wantHunger: []float64{32, 54, 76, 98},
			wantHP:     []float64{53, 56, 59, 62},
		},
		{
			name:   "clamped at max",
			hunger: 60, hp: 95,
			wantHunger: []float64{82, 100, 100, 100},
			wantHP:     []float64{98, 100, 100, 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(config.DefaultSurvivalConfig(), 5)
			require.Equal(t, 4, s.player.Inv.Count(ItemApple))
			require.Equal(t, ItemApple, s.player.Inv.Slot(0).Item)
			s.player.Hunger, s.player.HP = tt.hunger, tt.hp
			px, py := s.player.Center()

			for i := 0; i < 4; i++ {
				kind, ok := s.use(px, py)
				require.True(t, ok)
				require.Equal(t, UseEat, kind)
				assert.InDelta(t, tt.wantHunger[i], s.player.Hunger, 1e-9)
				assert.InDelta(t, tt.wantHP[i], s.player.HP, 1e-9)
			}

			assert.Zero(t, s.player.Inv.Count(ItemApple))
			kind, ok := s.use(px, py)
			assert.False(t, ok)
			assert.Equal(t, UseNothing, kind)
		})
	}
}

func TestEatFoodEffects(t *testing.T) {
	tests := []struct {
		item       ItemCode
		wantHunger float64
		wantHP     float64
	}{
		{ItemApple, 72, 53},
		{ItemMeatRaw, 62, 48},
		{ItemMeatCooked, 85, 56},
	}

	for _, tt := range tests {
		s := newFlatSim(t)
		s.player.Inv = invWith(3, Stack{tt.item, 1})
		s.player.Hunger, s.player.HP = 50, 50

		require.True(t, s.eatSelected())
		assert.InDelta(t, tt.wantHunger, s.player.Hunger, 1e-9, "item %d", tt.item)
		assert.InDelta(t, tt.wantHP, s.player.HP, 1e-9, "item %d", tt.item)
	}
}

func TestRawMeatCannotGoBelowZero(t *testing.T) {
	s := newFlatSim(t)
	s.player.Inv = invWith(1, Stack{ItemMeatRaw, 1})
	s.player.HP = 1

	require.True(t, s.eatSelected())
	assert.Zero(t, s.player.HP)
}

func TestUseChestTransfersOneUnit(t *testing.T) {
	s := newFlatSim(t)
	at := TileCoord{12, 19}
	s.world.SetTile(at.X, at.Y, BlockChest)
	chest := invWith(12, Stack{}, Stack{ItemCoal, 2})
	s.world.chests.Put(at, chest)

	res := s.Tick(0.02, useAt(at.X, at.Y))

	assert.Equal(t, UseChest, res.Use)
	assert.Equal(t, 1, s.player.Inv.Count(ItemCoal))
	assert.Equal(t, 1, chest.Count(ItemCoal))
	assert.Equal(t, 4, s.player.Inv.Count(ItemApple), "chest use does not eat")
}

func TestUseChestStopsEvenWhenRejected(t *testing.T) {
	s := newFlatSim(t)
	at := TileCoord{12, 19}
	s.world.SetTile(at.X, at.Y, BlockChest)
	s.world.chests.Put(at, NewInventory(12))

	res := s.Tick(0.02, useAt(at.X, at.Y))

	assert.Equal(t, UseChest, res.Use)
	assert.Equal(t, 4, s.player.Inv.Count(ItemApple), "empty chest still consumes the use")
}

func TestPlaceBlock(t *testing.T) {
	s := newFlatSim(t)
	require.True(t, s.SelectSlot(1))
	require.Equal(t, ItemPlank, s.player.Inv.Slot(1).Item)

	res := s.Tick(0.02, useAt(14, 19))
	assert.Equal(t, UsePlace, res.Use)
	assert.Equal(t, BlockPlank, s.world.Tile(14, 19))
	assert.Equal(t, 11, s.player.Inv.Count(ItemPlank))

	// Occupied tile.
	res = s.Tick(0.02, useAt(14, 19))
	assert.Equal(t, UseNothing, res.Use)
	assert.Equal(t, 11, s.player.Inv.Count(ItemPlank))

	// Tile overlapping the player.
	res = s.Tick(0.02, useAt(10, 19))
	assert.Equal(t, UseNothing, res.Use)
	assert.Equal(t, BlockAir, s.world.Tile(10, 19))

	// Outside the world reads as solid.
	res = s.Tick(0.02, useAt(-1, 19))
	assert.Equal(t, UseNothing, res.Use)
	assert.Equal(t, 11, s.player.Inv.Count(ItemPlank))
}

func TestPlaceNonBlockFails(t *testing.T) {
	s := newFlatSim(t)
	s.player.Inv = invWith(2, Stack{ItemCoal, 1})

	kind, ok := s.use(tileCenter(14, 19))

	assert.False(t, ok)
	assert.Equal(t, UseNothing, kind)
	assert.Equal(t, BlockAir, s.world.Tile(14, 19))
}

func TestPlaceChestRollsLootOnce(t *testing.T) {
	s := newFlatSim(t)
	s.player.Inv = invWith(3, Stack{ItemChest, 2})
	at := TileCoord{14, 19}

	_, ok := s.use(tileCenter(at.X, at.Y))
	require.True(t, ok)
	loot, ok := s.world.chests.Get(at)
	require.True(t, ok, "placed chest gets loot")

	// Break and re-place: the existing inventory is kept.
	s.world.SetTile(at.X, at.Y, BlockAir)
	_, ok = s.use(tileCenter(at.X, at.Y))
	require.True(t, ok)
	again, _ := s.world.chests.Get(at)
	assert.Same(t, loot, again)
}

func TestUseIgnoredWhilePanelOpen(t *testing.T) {
	s := newFlatSim(t)
	s.SetPanelOpen(true)

	res := s.Tick(0.02, useAt(14, 19))

	assert.Equal(t, UseNothing, res.Use)
	assert.Equal(t, 4, s.player.Inv.Count(ItemApple))
}
