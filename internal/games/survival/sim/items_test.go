package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBijection(t *testing.T) {
	reg := DefaultRegistry()
	codes := reg.Codes()
	require.NotEmpty(t, codes)

	names := make(map[string]bool)
	for _, code := range codes {
		name := reg.Name(code)
		require.NotEmpty(t, name, "code %d", code)
		assert.False(t, names[name], "duplicate name %q", name)
		names[name] = true

		back, ok := reg.Code(name)
		require.True(t, ok)
		assert.Equal(t, code, back)
	}

	_, ok := reg.Code("unobtainium")
	assert.False(t, ok)
	assert.Empty(t, reg.Name(ItemCode(999)))
	assert.Panics(t, func() { reg.MustCode("unobtainium") })
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry([]ItemDef{{Code: 1, Name: "a"}, {Code: 1, Name: "b"}})
	})
	assert.Panics(t, func() {
		NewRegistry([]ItemDef{{Code: 1, Name: "a"}, {Code: 2, Name: "a"}})
	})
}

func TestBlockItemsPlaceTheirBlock(t *testing.T) {
	reg := DefaultRegistry()
	for _, code := range reg.Codes() {
		def, _ := reg.Item(code)
		if def.Category != CategoryBlock {
			assert.Equal(t, BlockAir, def.Block, "%s places nothing", def.Name)
			continue
		}
		assert.Equal(t, BlockCode(code), def.Block, "%s", def.Name)
		assert.True(t, Block(def.Block).Known)
	}
}

func TestBlockTable(t *testing.T) {
	tests := []struct {
		code     BlockCode
		solid    bool
		minable  bool
		mineTime float64
	}{
		{BlockAir, false, false, 0},
		{BlockGrass, true, true, 0.45},
		{BlockDirt, true, true, 0.40},
		{BlockStone, true, true, 0.85},
		{BlockWood, true, true, 0.65},
		{BlockPlank, true, true, 0.55},
		{BlockWater, false, false, 0},
		{BlockChest, true, true, 0.35},
		{BlockFurnace, true, true, 0.65},
	}

	for _, tt := range tests {
		def := Block(tt.code)
		assert.True(t, def.Known, "block %d", tt.code)
		assert.Equal(t, tt.solid, def.Solid, "block %s solid", def.Name)
		assert.Equal(t, tt.minable, def.Minable(), "block %s minable", def.Name)
		assert.InDelta(t, tt.mineTime, def.MineTime, 1e-9)
		if tt.minable {
			// Every minable block drops its own item.
			assert.True(t, def.HasDrop)
			assert.Equal(t, ItemCode(tt.code), def.Drop)
		}
	}

	assert.False(t, Block(6).Known)
	assert.False(t, Block(500).Known)
}

func TestProductionTables(t *testing.T) {
	r := Recipes()
	require.Len(t, r, 4)
	assert.Equal(t, []Stack{{ItemWood, 1}}, r[0].Need)
	assert.Equal(t, Stack{ItemPlank, 4}, r[0].Output())
	assert.Equal(t, []Stack{{ItemPlank, 3}, {ItemStone, 2}}, r[3].Need)
	assert.Equal(t, Stack{ItemPickaxe, 1}, r[3].Output())

	sr, ok := Smelt(ItemIronOre)
	require.True(t, ok)
	assert.Equal(t, SmeltRecipe{Output: ItemIronIngot, Seconds: 8}, sr)
	_, ok = Smelt(ItemStone)
	assert.False(t, ok)

	v, ok := FuelValue(ItemCoal)
	assert.True(t, ok)
	assert.Equal(t, 20.0, v)
	_, ok = FuelValue(ItemIronIngot)
	assert.False(t, ok)

	e, ok := Food(ItemMeatCooked)
	assert.True(t, ok)
	assert.Equal(t, FoodEffect{Hunger: 35, HP: 6}, e)
}
