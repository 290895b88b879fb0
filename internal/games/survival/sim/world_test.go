package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-survival/internal/config"
)

func TestTileOutOfBounds(t *testing.T) {
	w := flatWorld(10, 8, 4)
	before := w.Window(0, 0, w.W, w.H)

	coords := []TileCoord{
		{-1, 0}, {0, -1}, {10, 0}, {0, 8}, {-5, -5}, {100, 100}, {9, 8}, {10, 7},
	}
	for _, c := range coords {
		if got := w.Tile(c.X, c.Y); got != BoundaryBlock {
			t.Errorf("Tile(%d,%d) = %d, want boundary %d", c.X, c.Y, got, BoundaryBlock)
		}
		w.SetTile(c.X, c.Y, BlockWater)
	}

	assert.Equal(t, before, w.Window(0, 0, w.W, w.H), "out-of-bounds writes must not change the grid")
}

func TestTileRoundTrip(t *testing.T) {
	w := NewWorld(5, 5, 12)
	w.SetTile(2, 3, BlockPlank)

	assert.Equal(t, BlockPlank, w.Tile(2, 3))
	assert.Equal(t, BlockAir, w.Tile(3, 2))
}

func TestWindowPadsWithBoundary(t *testing.T) {
	w := NewWorld(3, 3, 12)
	w.SetTile(0, 0, BlockWood)

	win := w.Window(-1, -1, 3, 3)
	require.Len(t, win, 3)
	assert.Equal(t, BoundaryBlock, win[0][0])
	assert.Equal(t, BoundaryBlock, win[1][0])
	assert.Equal(t, BlockWood, win[1][1])
	assert.Equal(t, BlockAir, win[2][2])

	assert.Nil(t, w.Window(0, 0, 0, 3))
}

func TestGenerateTerrainColumns(t *testing.T) {
	cfg := config.DefaultSurvivalConfig().World

	for seed := int64(1); seed <= 5; seed++ {
		w := NewWorld(cfg.Width, cfg.Height, 12)
		generateTerrain(w, rand.New(rand.NewSource(seed)), cfg)

		for x := 0; x < w.W; x++ {
			h := w.Height(x)
			if h < cfg.SurfaceMin || h > cfg.SurfaceMax {
				t.Fatalf("seed %d: column %d height %d outside [%d,%d]", seed, x, h, cfg.SurfaceMin, cfg.SurfaceMax)
			}
			for y := 0; y < h; y++ {
				if w.Tile(x, y) != BlockAir {
					t.Fatalf("seed %d: column %d row %d above surface is %d", seed, x, y, w.Tile(x, y))
				}
			}
			if w.Tile(x, h) != BlockGrass {
				t.Fatalf("seed %d: column %d top tile is %d, want grass", seed, x, w.Tile(x, h))
			}
			for y := h + 1; y <= h+cfg.DirtDepth; y++ {
				if w.Tile(x, y) != BlockDirt {
					t.Fatalf("seed %d: column %d row %d is %d, want dirt", seed, x, y, w.Tile(x, y))
				}
			}
			for y := h + cfg.DirtDepth + 1; y < w.H; y++ {
				if w.Tile(x, y) != BlockStone {
					t.Fatalf("seed %d: column %d row %d is %d, want stone", seed, x, y, w.Tile(x, y))
				}
			}
		}
	}
}

func TestGenerateHeightSteps(t *testing.T) {
	cfg := config.DefaultSurvivalConfig().World
	w := NewWorld(cfg.Width, cfg.Height, 12)
	generateTerrain(w, rand.New(rand.NewSource(42)), cfg)

	prev := cfg.SurfaceStart
	for x := 0; x < w.W; x++ {
		d := w.Height(x) - prev
		if d < -1 || d > 1 {
			t.Fatalf("column %d: height jumped by %d", x, d)
		}
		prev = w.Height(x)
	}
}

func TestCarvePondFillsOnlyAir(t *testing.T) {
	cfg := config.DefaultSurvivalConfig().World
	w := NewWorld(cfg.Width, cfg.Height, 12)
	generateTerrain(w, rand.New(rand.NewSource(7)), cfg)
	before := w.Window(0, 0, w.W, w.H)

	carvePond(w, cfg.Pond)

	p := cfg.Pond
	for y := 0; y < w.H; y++ {
		for x := 0; x < w.W; x++ {
			old := before[y][x]
			got := w.Tile(x, y)
			inPond := x >= p.X0 && x < p.X1 && y >= p.Y0 && y < p.Y1
			switch {
			case inPond && old == BlockAir:
				assert.Equal(t, BlockWater, got, "(%d,%d)", x, y)
			default:
				assert.Equal(t, old, got, "(%d,%d)", x, y)
			}
		}
	}
}

func TestPlantTreesStandOnSurface(t *testing.T) {
	cfg := config.DefaultSurvivalConfig().World
	w := NewWorld(cfg.Width, cfg.Height, 12)
	rng := rand.New(rand.NewSource(3))
	generateTerrain(w, rng, cfg)
	plantTrees(w, rng, cfg.Trees)

	trunks := 0
	for x := 0; x < w.W; x++ {
		if w.Tile(x, w.Height(x)-1) == BlockWood {
			trunks++
			if x < cfg.Trees.EdgeMargin || x >= w.W-cfg.Trees.EdgeMargin {
				t.Errorf("trunk at edge column %d", x)
			}
		}
		// Trees never replace the surface.
		assert.Equal(t, BlockGrass, w.Tile(x, w.Height(x)))
	}
	assert.Positive(t, trunks)
	assert.LessOrEqual(t, trunks, cfg.Trees.Count)
}

func TestPlaceHouse(t *testing.T) {
	w := flatWorld(40, 30, 20)
	rng := rand.New(rand.NewSource(1))
	house := config.HouseConfig{Width: 10, Height: 6}

	PlaceHouse(w, rng, 10, house)

	groundY := 19
	baseY := groundY - house.Height
	doorX := 15
	for x := 10; x < 20; x++ {
		for y := baseY; y < groundY; y++ {
			want := BlockAir
			border := x == 10 || x == 19 || y == baseY || y == groundY-1
			if border {
				want = BlockPlank
			}
			switch {
			case x == doorX && (y == groundY-2 || y == groundY-3):
				want = BlockAir
			case x == 12 && y == groundY-2:
				want = BlockChest
			case x == 17 && y == groundY-2:
				want = BlockFurnace
			}
			assert.Equal(t, want, w.Tile(x, y), "(%d,%d)", x, y)
		}
		assert.Equal(t, BlockAir, w.Tile(x, groundY), "ground row stays open at column %d", x)
	}

	chest, ok := w.Chests().Get(TileCoord{12, groundY - 2})
	require.True(t, ok, "house chest must have loot")
	assert.Equal(t, 12, chest.Len())
}

func TestPlaceHouseKeepsExistingBlocks(t *testing.T) {
	w := flatWorld(40, 30, 20)
	w.SetTile(10, 16, BlockWood)

	PlaceHouse(w, rand.New(rand.NewSource(1)), 10, config.HouseConfig{Width: 10, Height: 6})

	assert.Equal(t, BlockWood, w.Tile(10, 16))
}

func TestPlaceHouseOutsideWorldIsNoop(t *testing.T) {
	w := flatWorld(20, 30, 20)
	before := w.Window(0, 0, w.W, w.H)

	PlaceHouse(w, rand.New(rand.NewSource(1)), -3, config.HouseConfig{Width: 10, Height: 6})
	PlaceHouse(w, rand.New(rand.NewSource(1)), 25, config.HouseConfig{Width: 10, Height: 6})

	assert.Equal(t, before, w.Window(0, 0, w.W, w.H))
	assert.Zero(t, w.Chests().Len())
}

func TestPlaceVillagesCreatesChests(t *testing.T) {
	cfg := config.DefaultSurvivalConfig()
	s := New(cfg, 99)

	assert.Equal(t, len(cfg.World.Villages), s.World().Chests().Len())
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := config.DefaultSurvivalConfig()
	a := New(cfg, 1234)
	b := New(cfg, 1234)
	c := New(cfg, 4321)

	full := func(s *Sim) [][]BlockCode {
		return s.World().Window(0, 0, cfg.World.Width, cfg.World.Height)
	}
	assert.Equal(t, full(a), full(b))
	assert.NotEqual(t, full(a), full(c))
}
