package sim

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-survival/internal/core"
)

// ItemCode identifies an inventory-holdable item.
type ItemCode uint16

// Item codes. Block items share the number of the block they place.
const (
	ItemNone       ItemCode = 0
	ItemGrass      ItemCode = 1
	ItemDirt       ItemCode = 2
	ItemStone      ItemCode = 3
	ItemWood       ItemCode = 4
	ItemPlank      ItemCode = 5
	ItemChest      ItemCode = 8
	ItemFurnace    ItemCode = 9
	ItemApple      ItemCode = 20
	ItemMeatRaw    ItemCode = 21
	ItemMeatCooked ItemCode = 22
	ItemPickaxe    ItemCode = 30
	ItemCoal       ItemCode = 40
	ItemIronOre    ItemCode = 41
	ItemIronIngot  ItemCode = 42
)

// Category groups items by how they can be used.
type Category string

const (
	CategoryBlock    Category = "block"
	CategoryFood     Category = "food"
	CategoryMaterial Category = "material"
	CategoryTool     Category = "tool"
)

// ItemDef describes an item.
type ItemDef struct {
	Code     ItemCode
	Name     string
	Glyph    rune
	Color    core.Color
	Category Category
	Block    BlockCode // Block placed by a block-category item
}

// Registry is the item catalog with a name <-> code bijection.
// It is built once and only read afterwards.
type Registry struct {
	byCode map[ItemCode]ItemDef
	byName map[string]ItemCode
	codes  []ItemCode
}

// NewRegistry builds a registry from item definitions.
// Panics on duplicate codes or names since the catalog is static.
func NewRegistry(defs []ItemDef) *Registry {
	r := &Registry{
		byCode: make(map[ItemCode]ItemDef, len(defs)),
		byName: make(map[string]ItemCode, len(defs)),
	}
	for _, d := range defs {
		if _, dup := r.byCode[d.Code]; dup {
			panic(fmt.Sprintf("sim: item code %d registered twice", d.Code))
		}
		if _, dup := r.byName[d.Name]; dup {
			panic(fmt.Sprintf("sim: item name %q registered twice", d.Name))
		}
		r.byCode[d.Code] = d
		r.byName[d.Name] = d.Code
		r.codes = append(r.codes, d.Code)
	}
	sort.Slice(r.codes, func(i, j int) bool { return r.codes[i] < r.codes[j] })
	return r
}

// Item returns the definition for a code.
func (r *Registry) Item(code ItemCode) (ItemDef, bool) {
	d, ok := r.byCode[code]
	return d, ok
}

// Code returns the code registered under name.
func (r *Registry) Code(name string) (ItemCode, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// MustCode is Code for static tables; it panics on unknown names.
func (r *Registry) MustCode(name string) ItemCode {
	c, ok := r.byName[name]
	if !ok {
		panic(fmt.Sprintf("sim: unknown item %q", name))
	}
	return c
}

// Name returns the item name for a code, or "" if unknown.
func (r *Registry) Name(code ItemCode) string {
	return r.byCode[code].Name
}

// Codes returns all registered codes in ascending order.
func (r *Registry) Codes() []ItemCode {
	return append([]ItemCode(nil), r.codes...)
}

var defaultRegistry = NewRegistry([]ItemDef{
	{Code: ItemGrass, Name: "grass", Glyph: '▀', Color: core.ColorBrightGreen, Category: CategoryBlock, Block: BlockGrass},
	{Code: ItemDirt, Name: "dirt", Glyph: '█', Color: core.ColorBrown, Category: CategoryBlock, Block: BlockDirt},
	{Code: ItemStone, Name: "stone", Glyph: '█', Color: core.ColorGray, Category: CategoryBlock, Block: BlockStone},
	{Code: ItemWood, Name: "wood", Glyph: '║', Color: core.ColorOrange, Category: CategoryBlock, Block: BlockWood},
	{Code: ItemPlank, Name: "plank", Glyph: '▒', Color: core.ColorTan, Category: CategoryBlock, Block: BlockPlank},
	{Code: ItemChest, Name: "chest", Glyph: '▣', Color: core.ColorYellow, Category: CategoryBlock, Block: BlockChest},
	{Code: ItemFurnace, Name: "furnace", Glyph: '▤', Color: core.ColorDarkGray, Category: CategoryBlock, Block: BlockFurnace},
	{Code: ItemApple, Name: "apple", Glyph: '●', Color: core.ColorRed, Category: CategoryFood},
	{Code: ItemMeatRaw, Name: "meat_raw", Glyph: '▬', Color: core.ColorBrightRed, Category: CategoryFood},
	{Code: ItemMeatCooked, Name: "meat_cooked", Glyph: '▬', Color: core.ColorYellow, Category: CategoryFood},
	{Code: ItemCoal, Name: "coal", Glyph: '◆', Color: core.ColorDarkGray, Category: CategoryMaterial},
	{Code: ItemIronOre, Name: "iron_ore", Glyph: '◇', Color: core.ColorSteel, Category: CategoryMaterial},
	{Code: ItemIronIngot, Name: "iron_ingot", Glyph: '▰', Color: core.ColorBrightWhite, Category: CategoryMaterial},
	{Code: ItemPickaxe, Name: "pickaxe", Glyph: '⛏', Color: core.ColorBrightYellow, Category: CategoryTool},
})

// DefaultRegistry returns the process-wide item catalog.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Recipe consumes Need and produces Give.
type Recipe struct {
	Need []Stack
	Give []Stack
}

// Output returns the first produced stack, used as the recipe's label.
func (r Recipe) Output() Stack {
	if len(r.Give) == 0 {
		return Stack{}
	}
	return r.Give[0]
}

// SmeltRecipe is what a furnace turns one input unit into.
type SmeltRecipe struct {
	Output  ItemCode
	Seconds float64
}

// FoodEffect is applied to the player when an item is eaten.
type FoodEffect struct {
	Hunger float64
	HP     float64
}

type nameCount struct {
	name  string
	count int
}

// stacks translates a name-keyed ingredient list to code-keyed stacks.
func (r *Registry) stacks(list []nameCount) []Stack {
	out := make([]Stack, 0, len(list))
	for _, nc := range list {
		out = append(out, Stack{Item: r.MustCode(nc.name), Count: nc.count})
	}
	return out
}

// Crafting recipes in display order.
var recipes = []Recipe{
	{
		Need: defaultRegistry.stacks([]nameCount{{"wood", 1}}),
		Give: defaultRegistry.stacks([]nameCount{{"plank", 4}}),
	},
	{
		Need: defaultRegistry.stacks([]nameCount{{"plank", 8}}),
		Give: defaultRegistry.stacks([]nameCount{{"chest", 1}}),
	},
	{
		Need: defaultRegistry.stacks([]nameCount{{"stone", 8}}),
		Give: defaultRegistry.stacks([]nameCount{{"furnace", 1}}),
	},
	{
		Need: defaultRegistry.stacks([]nameCount{{"plank", 3}, {"stone", 2}}),
		Give: defaultRegistry.stacks([]nameCount{{"pickaxe", 1}}),
	},
}

var smeltRecipes = map[ItemCode]SmeltRecipe{
	defaultRegistry.MustCode("meat_raw"): {Output: defaultRegistry.MustCode("meat_cooked"), Seconds: 6},
	defaultRegistry.MustCode("iron_ore"): {Output: defaultRegistry.MustCode("iron_ingot"), Seconds: 8},
}

// Seconds of furnace operation granted per consumed unit.
var fuelValues = map[ItemCode]float64{
	defaultRegistry.MustCode("wood"):  10,
	defaultRegistry.MustCode("plank"): 8,
	defaultRegistry.MustCode("coal"):  20,
}

var foodEffects = map[ItemCode]FoodEffect{
	defaultRegistry.MustCode("apple"):       {Hunger: 22, HP: 3},
	defaultRegistry.MustCode("meat_raw"):    {Hunger: 12, HP: -2},
	defaultRegistry.MustCode("meat_cooked"): {Hunger: 35, HP: 6},
}

// Recipes returns the crafting recipes in display order.
func Recipes() []Recipe {
	return recipes
}

// Smelt returns the smelting recipe for an input item.
func Smelt(code ItemCode) (SmeltRecipe, bool) {
	r, ok := smeltRecipes[code]
	return r, ok
}

// FuelValue returns the fuel seconds of an item, if it burns.
func FuelValue(code ItemCode) (float64, bool) {
	v, ok := fuelValues[code]
	return v, ok
}

// Food returns the eating effect of an item, if it is edible.
func Food(code ItemCode) (FoodEffect, bool) {
	e, ok := foodEffects[code]
	return e, ok
}
