package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-survival/internal/config"
)

// heightSteps is the random-walk step distribution of the surface line.
var heightSteps = [...]int{-1, 0, 0, 0, 1}

// Generate fills the world with terrain, the pond and trees.
// Villages are placed separately by PlaceVillages since they also
// create chests.
func Generate(w *World, rng *rand.Rand, cfg config.WorldConfig) {
	generateTerrain(w, rng, cfg)
	carvePond(w, cfg.Pond)
	plantTrees(w, rng, cfg.Trees)
}

// generateTerrain lays out grass, dirt and stone columns beneath a
// clamped random-walk surface.
func generateTerrain(w *World, rng *rand.Rand, cfg config.WorldConfig) {
	h := cfg.SurfaceStart
	for x := 0; x < w.W; x++ {
		h += heightSteps[rng.Intn(len(heightSteps))]
		h = min(max(h, cfg.SurfaceMin), cfg.SurfaceMax)
		w.heights[x] = h

		for y := h; y < w.H; y++ {
			switch {
			case y == h:
				w.SetTile(x, y, BlockGrass)
			case y <= h+cfg.DirtDepth:
				w.SetTile(x, y, BlockDirt)
			default:
				w.SetTile(x, y, BlockStone)
			}
		}
	}
}

// carvePond floods the empty cells of the pond rectangle.
func carvePond(w *World, p config.PondConfig) {
	for x := p.X0; x < p.X1; x++ {
		for y := p.Y0; y < p.Y1; y++ {
			if w.Tile(x, y) == BlockAir {
				w.SetTile(x, y, BlockWater)
			}
		}
	}
}

func plantTrees(w *World, rng *rand.Rand, cfg config.TreeConfig) {
	span := w.W - 2*cfg.EdgeMargin - 1
	if span <= 0 || cfg.Count <= 0 {
		return
	}
	trunkSpan := max(cfg.TrunkMax-cfg.TrunkMin+1, 1)
	r := cfg.CanopyRadius

	for i := 0; i < cfg.Count; i++ {
		x := cfg.EdgeMargin + rng.Intn(span)
		y := w.heights[x] - 1
		trunk := cfg.TrunkMin + rng.Intn(trunkSpan)
		for k := 0; k < trunk; k++ {
			w.SetTile(x, y-k, BlockWood)
		}
		// Canopy sits on top of the trunk, rows -r..0 relative to it.
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= 0; dy++ {
				cx, cy := x+dx, y-trunk+dy
				if rng.Float64() < cfg.CanopyChance && w.Tile(cx, cy) == BlockAir {
					w.SetTile(cx, cy, BlockPlank)
				}
			}
		}
	}
}

// PlaceHouse builds a hollow plank house whose left wall stands on column
// x0, with a doorway in the middle, a loot chest and a furnace inside.
func PlaceHouse(w *World, rng *rand.Rand, x0 int, house config.HouseConfig) {
	if x0 < 0 || x0 >= w.W {
		return
	}
	width, height := house.Width, house.Height
	groundY := w.heights[x0] - 1
	baseY := groundY - height

	for x := x0; x < x0+width; x++ {
		for y := baseY; y < groundY; y++ {
			border := x == x0 || x == x0+width-1 || y == baseY || y == groundY-1
			if border && w.Tile(x, y) == BlockAir {
				w.SetTile(x, y, BlockPlank)
			}
		}
	}

	doorX := x0 + width/2
	w.SetTile(doorX, groundY-2, BlockAir)
	w.SetTile(doorX, groundY-3, BlockAir)

	cx, cy := x0+2, groundY-2
	w.SetTile(cx, cy, BlockChest)
	w.chests.Put(TileCoord{cx, cy}, RollChestLoot(rng, w.chests.Slots()))

	w.SetTile(x0+width-3, groundY-2, BlockFurnace)
}

// PlaceVillages places one house at each configured column.
func PlaceVillages(w *World, rng *rand.Rand, cfg config.WorldConfig) {
	for _, x0 := range cfg.Villages {
		PlaceHouse(w, rng, x0, cfg.House)
	}
}
