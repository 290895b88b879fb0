// Package sim is the survival simulation core: the tile world and its
// generation, inventories and production stations, player physics, the
// mining/interaction state machine and the day/night clock. Everything is
// advanced by Sim.Tick and read back through Snapshot; nothing here knows
// about terminals or key presses.
package sim

import "github.com/vovakirdan/tui-survival/internal/core"

// BlockCode identifies the material of a world cell. Zero is air.
type BlockCode uint16

// Block codes. Gaps are intentional; item codes reuse the same numbers for
// the blocks they place.
const (
	BlockAir     BlockCode = 0
	BlockGrass   BlockCode = 1
	BlockDirt    BlockCode = 2
	BlockStone   BlockCode = 3
	BlockWood    BlockCode = 4
	BlockPlank   BlockCode = 5
	BlockWater   BlockCode = 7
	BlockChest   BlockCode = 8
	BlockFurnace BlockCode = 9
)

// BoundaryBlock is returned for every read outside the world.
const BoundaryBlock = BlockStone

// BlockDef describes the static properties of a block type.
type BlockDef struct {
	Name     string
	Glyph    rune
	Color    core.Color
	Solid    bool
	Liquid   bool
	MineTime float64  // Seconds of bare-handed mining
	Drop     ItemCode // Valid only when HasDrop
	HasDrop  bool
	Known    bool
}

// Minable reports whether the block can be targeted by a mining session.
// Air and liquids cannot.
func (b BlockDef) Minable() bool {
	return b.Known && b.MineTime > 0 && !b.Liquid
}

// blockTable is indexed by BlockCode and never modified after init.
var blockTable = func() [16]BlockDef {
	var t [16]BlockDef
	def := func(code BlockCode, d BlockDef) {
		d.Known = true
		t[code] = d
	}
	def(BlockAir, BlockDef{Name: "air", Glyph: ' '})
	def(BlockGrass, BlockDef{Name: "grass", Glyph: '▀', Color: core.ColorBrightGreen, Solid: true, MineTime: 0.45, Drop: ItemGrass, HasDrop: true})
	def(BlockDirt, BlockDef{Name: "dirt", Glyph: '█', Color: core.ColorBrown, Solid: true, MineTime: 0.40, Drop: ItemDirt, HasDrop: true})
	def(BlockStone, BlockDef{Name: "stone", Glyph: '█', Color: core.ColorGray, Solid: true, MineTime: 0.85, Drop: ItemStone, HasDrop: true})
	def(BlockWood, BlockDef{Name: "wood", Glyph: '║', Color: core.ColorOrange, Solid: true, MineTime: 0.65, Drop: ItemWood, HasDrop: true})
	def(BlockPlank, BlockDef{Name: "plank", Glyph: '▒', Color: core.ColorTan, Solid: true, MineTime: 0.55, Drop: ItemPlank, HasDrop: true})
	def(BlockWater, BlockDef{Name: "water", Glyph: '≈', Color: core.ColorBlue, Liquid: true})
	def(BlockChest, BlockDef{Name: "chest", Glyph: '▣', Color: core.ColorYellow, Solid: true, MineTime: 0.35, Drop: ItemChest, HasDrop: true})
	def(BlockFurnace, BlockDef{Name: "furnace", Glyph: '▤', Color: core.ColorDarkGray, Solid: true, MineTime: 0.65, Drop: ItemFurnace, HasDrop: true})
	return t
}()

// Block returns the definition of a block code.
// Unknown codes yield a zero definition with Known false.
func Block(code BlockCode) BlockDef {
	if int(code) >= len(blockTable) {
		return BlockDef{}
	}
	return blockTable[code]
}
