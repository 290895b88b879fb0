package sim

// TileCoord addresses a world cell.
type TileCoord struct {
	X, Y int
}

// World is the tile grid together with the surface height of every column
// and the chest inventories placed in it.
type World struct {
	W, H    int
	tiles   []BlockCode
	heights []int
	chests  *ChestStore
}

// NewWorld creates an all-air world of the given size.
func NewWorld(w, h, chestSlots int) *World {
	return &World{
		W:       w,
		H:       h,
		tiles:   make([]BlockCode, w*h),
		heights: make([]int, w),
		chests:  NewChestStore(chestSlots),
	}
}

// InBounds reports whether (x, y) lies inside the grid.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.W && y < w.H
}

// Tile returns the block at (x, y). Cells outside the grid read as
// BoundaryBlock.
func (w *World) Tile(x, y int) BlockCode {
	if !w.InBounds(x, y) {
		return BoundaryBlock
	}
	return w.tiles[y*w.W+x]
}

// SetTile writes a block. Writes outside the grid are ignored.
func (w *World) SetTile(x, y int, b BlockCode) {
	if !w.InBounds(x, y) {
		return
	}
	w.tiles[y*w.W+x] = b
}

// Height returns the surface row of column x, or -1 outside the grid.
func (w *World) Height(x int) int {
	if x < 0 || x >= w.W {
		return -1
	}
	return w.heights[x]
}

// Chests returns the chest store owned by the world.
func (w *World) Chests() *ChestStore {
	return w.chests
}

// Window copies a rectangular region of block codes, row-major.
// Cells outside the grid are filled with BoundaryBlock.
func (w *World) Window(x0, y0, width, height int) [][]BlockCode {
	if width <= 0 || height <= 0 {
		return nil
	}
	rows := make([][]BlockCode, height)
	for dy := range rows {
		row := make([]BlockCode, width)
		for dx := range row {
			row[dx] = w.Tile(x0+dx, y0+dy)
		}
		rows[dy] = row
	}
	return rows
}

// tileRect returns the world-space box of a tile.
func tileRect(tx, ty int, tile float64) (x, y, size float64) {
	return float64(tx) * tile, float64(ty) * tile, tile
}
