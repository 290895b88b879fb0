package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-survival/internal/config"
)

func hitAt(tx, ty int) Intent {
	ax, ay := tileCenter(tx, ty)
	return Intent{Hit: true, AimX: ax, AimY: ay}
}

func TestMiningRetargetResetsProgress(t *testing.T) {
	s := newFlatSim(t)
	const dt = 0.02

	s.Tick(dt, hitAt(10, 21))
	s.Tick(dt, hitAt(10, 21))
	require.True(t, s.mining.Active)
	assert.InDelta(t, 2*dt, s.mining.Progress, 1e-9)

	s.Tick(dt, hitAt(11, 21))
	assert.Equal(t, TileCoord{11, 21}, s.mining.Target)
	assert.InDelta(t, dt, s.mining.Progress, 1e-9, "progress restarts on the new target")
	assert.Equal(t, BlockDirt, s.world.Tile(10, 21), "abandoned tile stays intact")
}

func TestMiningReleaseResets(t *testing.T) {
	s := newFlatSim(t)

	s.Tick(0.02, hitAt(10, 21))
	require.True(t, s.mining.Active)

	s.Tick(0.02, Intent{})
	assert.False(t, s.mining.Active)
	assert.Zero(t, s.mining.Progress)
	assert.Zero(t, s.MiningFraction())
}

func TestMiningIdleTargets(t *testing.T) {
	tests := []struct {
		name   string
		px     int // Player column
		tx, ty int
		setup  func(w *World)
	}{
		{name: "air", px: 10, tx: 10, ty: 17},
		{name: "water", px: 10, tx: 12, ty: 19, setup: func(w *World) { w.SetTile(12, 19, BlockWater) }},
		{name: "out of range", px: 10, tx: 30, ty: 25},
		{name: "outside world", px: 2, tx: -1, ty: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFlatSim(t)
			if tt.setup != nil {
				tt.setup(s.world)
			}
			s.player.X = float64(tt.px) * testTile
			before := s.world.Tile(tt.tx, tt.ty)

			for i := 0; i < 100; i++ {
				res := s.Tick(0.05, hitAt(tt.tx, tt.ty))
				require.False(t, res.Mine.Broken)
			}

			assert.False(t, s.mining.Active)
			assert.Zero(t, s.mining.Progress)
			assert.Equal(t, before, s.world.Tile(tt.tx, tt.ty))
		})
	}
}

// ticksToBreak holds hit on a tile until it breaks and returns the
// accumulated hold time.
func ticksToBreak(t *testing.T, s *Sim, tx, ty int, dt float64) float64 {
	t.Helper()
	held := 0.0
	for i := 0; i < 10000; i++ {
		res := s.Tick(dt, hitAt(tx, ty))
		held += dt
		if res.Mine.Broken {
			return held
		}
	}
	t.Fatalf("tile (%d,%d) never broke", tx, ty)
	return 0
}

func TestMiningTimeByTool(t *testing.T) {
	const dt = 0.01
	mineTime := Block(BlockDirt).MineTime

	bare := newFlatSim(t)
	held := ticksToBreak(t, bare, 10, 21, dt)
	assert.InDelta(t, mineTime, held, dt+1e-9)

	withPick := newFlatSim(t)
	require.True(t, withPick.player.Inv.Add(ItemPickaxe, 1))
	require.True(t, withPick.SelectSlot(2))
	held = ticksToBreak(t, withPick, 10, 21, dt)
	want := mineTime / withPick.cfg.Mining.PickaxeMultiplier
	assert.GreaterOrEqual(t, held, want-1e-9)
	assert.Less(t, held, want+dt)
}

func TestMiningGrantsDrop(t *testing.T) {
	s := newFlatSim(t)

	ticksToBreak(t, s, 11, 20, 0.05)

	assert.Equal(t, BlockAir, s.world.Tile(11, 20))
	assert.Equal(t, 1, s.player.Inv.Count(ItemGrass))
	assert.False(t, s.mining.Active)
	assert.Zero(t, s.mining.Progress)
}

func TestMiningDropLostWhenInventoryFull(t *testing.T) {
	s := newFlatSim(t, func(c *config.SurvivalConfig) { c.Player.InventorySlots = 2 })
	require.False(t, s.player.Inv.Add(ItemCoal, 1), "start kit fills both slots")

	var last TickResult
	for i := 0; i < 100 && !last.Mine.Broken; i++ {
		last = s.Tick(0.05, hitAt(10, 21))
	}

	require.True(t, last.Mine.Broken)
	assert.Equal(t, ItemDirt, last.Mine.Drop)
	assert.False(t, last.Mine.Dropped)
	assert.Equal(t, BlockAir, s.world.Tile(10, 21))
	assert.Zero(t, s.player.Inv.Count(ItemDirt))
}

func TestStoneDropDistribution(t *testing.T) {
	s := newFlatSim(t)
	ax, ay := tileCenter(10, 22)
	counts := make(map[ItemCode]int)

	const trials = 1000
	for i := 0; i < trials; i++ {
		s.world.SetTile(10, 22, BlockStone)
		var ev MineEvent
		for j := 0; j < 100 && !ev.Broken; j++ {
			ev = s.mineTick(0.05, ax, ay)
		}
		require.True(t, ev.Broken)
		counts[ev.Drop]++
	}

	assert.Equal(t, trials, counts[ItemIronOre]+counts[ItemCoal]+counts[ItemStone])
	assert.InDelta(t, 100, counts[ItemIronOre], 40)
	assert.InDelta(t, 100, counts[ItemCoal], 40)
	assert.InDelta(t, 800, counts[ItemStone], 60)
}

func TestRollStoneDropThresholds(t *testing.T) {
	assert.Equal(t, ItemIronOre, rollStoneDrop(0))
	assert.Equal(t, ItemIronOre, rollStoneDrop(0.0999))
	assert.Equal(t, ItemCoal, rollStoneDrop(0.1))
	assert.Equal(t, ItemCoal, rollStoneDrop(0.1999))
	assert.Equal(t, ItemStone, rollStoneDrop(0.2))
	assert.Equal(t, ItemStone, rollStoneDrop(0.9999))
}

func TestChestLifecycleOnBreak(t *testing.T) {
	tests := []struct {
		name      string
		purge     bool
		wantChest bool
	}{
		{name: "stale loot kept", purge: false, wantChest: true},
		{name: "purged", purge: true, wantChest: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFlatSim(t, func(c *config.SurvivalConfig) { c.Chest.PurgeOnBreak = tt.purge })
			at := TileCoord{12, 19}
			s.world.SetTile(at.X, at.Y, BlockChest)
			s.world.chests.Put(at, NewInventory(12))

			ticksToBreak(t, s, at.X, at.Y, 0.05)

			_, ok := s.world.chests.Get(at)
			assert.Equal(t, tt.wantChest, ok)
			assert.Equal(t, 1, s.player.Inv.Count(ItemChest))
		})
	}
}
