package sim

import (
	"testing"

	"github.com/vovakirdan/tui-survival/internal/config"
)

const testTile = 24.0

// flatWorld builds a world whose surface is row surface in every column.
func flatWorld(w, h, surface int) *World {
	wd := NewWorld(w, h, 12)
	for x := 0; x < w; x++ {
		wd.heights[x] = surface
		for y := surface; y < h; y++ {
			switch {
			case y == surface:
				wd.SetTile(x, y, BlockGrass)
			case y <= surface+4:
				wd.SetTile(x, y, BlockDirt)
			default:
				wd.SetTile(x, y, BlockStone)
			}
		}
	}
	return wd
}

// newFlatSim returns a sim on a 40x30 flat world with the player standing
// on the surface (row 20) at column 10.
func newFlatSim(t *testing.T, mutate ...func(*config.SurvivalConfig)) *Sim {
	t.Helper()
	cfg := config.DefaultSurvivalConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	s := New(cfg, 1)
	s.world = flatWorld(40, 30, 20)
	s.player.X = 10 * testTile
	s.player.Y = 20*testTile - s.player.H
	s.player.VX, s.player.VY = 0, 0
	s.player.OnGround = true
	return s
}

// tileCenter returns the world coordinates of the center of a tile.
func tileCenter(tx, ty int) (float64, float64) {
	return float64(tx)*testTile + testTile/2, float64(ty)*testTile + testTile/2
}
