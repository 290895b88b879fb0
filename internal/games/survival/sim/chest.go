package sim

import "math/rand"

// ChestStore owns the inventories of chest tiles, keyed by coordinate.
type ChestStore struct {
	slots   int
	byCoord map[TileCoord]*Inventory
}

// NewChestStore creates an empty store whose chests have the given
// capacity.
func NewChestStore(slots int) *ChestStore {
	return &ChestStore{slots: slots, byCoord: make(map[TileCoord]*Inventory)}
}

// Slots returns the capacity of each chest.
func (cs *ChestStore) Slots() int {
	return cs.slots
}

// Get returns the chest at c.
func (cs *ChestStore) Get(c TileCoord) (*Inventory, bool) {
	inv, ok := cs.byCoord[c]
	return inv, ok
}

// Put stores a chest inventory at c, replacing any previous one.
func (cs *ChestStore) Put(c TileCoord, inv *Inventory) {
	cs.byCoord[c] = inv
}

// Remove drops the chest at c.
func (cs *ChestStore) Remove(c TileCoord) {
	delete(cs.byCoord, c)
}

// Len returns the number of stored chests.
func (cs *ChestStore) Len() int {
	return len(cs.byCoord)
}

// lootEntry is one independent roll of the chest loot table.
type lootEntry struct {
	item     ItemCode
	chance   float64
	min, max int
}

var chestLoot = []lootEntry{
	{item: ItemPlank, chance: 0.9, min: 2, max: 8},
	{item: ItemApple, chance: 0.7, min: 1, max: 2},
	{item: ItemCoal, chance: 0.6, min: 1, max: 3},
	{item: ItemIronOre, chance: 0.55, min: 1, max: 3},
	{item: ItemPickaxe, chance: 0.35, min: 1, max: 1},
}

// RollChestLoot fills a new chest inventory from the loot table.
func RollChestLoot(rng *rand.Rand, slots int) *Inventory {
	inv := NewInventory(slots)
	for _, e := range chestLoot {
		if rng.Float64() < e.chance {
			inv.Add(e.item, e.min+rng.Intn(e.max-e.min+1))
		}
	}
	return inv
}

// TransferOne moves one unit of the first non-empty chest slot into dst.
// Nothing moves when the chest is empty or dst cannot accept the item.
func TransferOne(chest, dst *Inventory) bool {
	i := chest.FirstNonEmpty()
	if i < 0 {
		return false
	}
	s := chest.slots[i]
	if !dst.Add(s.Item, 1) {
		return false
	}
	chest.decrement(i, 1)
	return true
}
