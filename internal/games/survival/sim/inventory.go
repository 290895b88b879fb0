package sim

// Stack is the content of an inventory slot. A zero Count means empty.
type Stack struct {
	Item  ItemCode
	Count int
}

// Empty reports whether the slot holds nothing.
func (s Stack) Empty() bool {
	return s.Count <= 0
}

// Inventory is a fixed-length sequence of slots with one selected slot.
type Inventory struct {
	slots    []Stack
	selected int
}

// NewInventory creates an empty inventory with n slots.
func NewInventory(n int) *Inventory {
	return &Inventory{slots: make([]Stack, n)}
}

// Len returns the number of slots.
func (inv *Inventory) Len() int {
	return len(inv.slots)
}

// Slot returns the stack in slot i. Out-of-range indices read as empty.
func (inv *Inventory) Slot(i int) Stack {
	if i < 0 || i >= len(inv.slots) {
		return Stack{}
	}
	return inv.slots[i]
}

// Stacks returns a copy of all slots.
func (inv *Inventory) Stacks() []Stack {
	return append([]Stack(nil), inv.slots...)
}

// Selected returns the selected slot index.
func (inv *Inventory) Selected() int {
	return inv.selected
}

// Select changes the selected slot. It fails for out-of-range indices.
func (inv *Inventory) Select(i int) bool {
	if i < 0 || i >= len(inv.slots) {
		return false
	}
	inv.selected = i
	return true
}

// SelectedStack returns the wielded stack and whether it is non-empty.
func (inv *Inventory) SelectedStack() (Stack, bool) {
	s := inv.Slot(inv.selected)
	return s, !s.Empty()
}

// RemoveOneSelected takes one unit from the selected slot.
func (inv *Inventory) RemoveOneSelected() (ItemCode, bool) {
	s, ok := inv.SelectedStack()
	if !ok {
		return ItemNone, false
	}
	inv.decrement(inv.selected, 1)
	return s.Item, true
}

// Add merges count units into the first slot holding the item, else into
// the first empty slot. Nothing is added when neither exists.
func (inv *Inventory) Add(item ItemCode, count int) bool {
	if count <= 0 || item == ItemNone {
		return false
	}
	for i := range inv.slots {
		if !inv.slots[i].Empty() && inv.slots[i].Item == item {
			inv.slots[i].Count += count
			return true
		}
	}
	for i := range inv.slots {
		if inv.slots[i].Empty() {
			inv.slots[i] = Stack{Item: item, Count: count}
			return true
		}
	}
	return false
}

// Count returns the total units of an item across all slots.
func (inv *Inventory) Count(item ItemCode) int {
	total := 0
	for _, s := range inv.slots {
		if !s.Empty() && s.Item == item {
			total += s.Count
		}
	}
	return total
}

// CountName is Count keyed by item name.
func (inv *Inventory) CountName(reg *Registry, name string) int {
	code, ok := reg.Code(name)
	if !ok {
		return 0
	}
	return inv.Count(code)
}

// Take removes count units of an item, draining slots in order.
// It fails without change if fewer units are held.
func (inv *Inventory) Take(item ItemCode, count int) bool {
	if count <= 0 || inv.Count(item) < count {
		return false
	}
	left := count
	for i := range inv.slots {
		if left == 0 {
			break
		}
		s := inv.slots[i]
		if s.Empty() || s.Item != item {
			continue
		}
		n := min(left, s.Count)
		inv.decrement(i, n)
		left -= n
	}
	return true
}

// TakeName is Take keyed by item name.
func (inv *Inventory) TakeName(reg *Registry, name string, count int) bool {
	code, ok := reg.Code(name)
	if !ok {
		return false
	}
	return inv.Take(code, count)
}

// HasNeed reports whether every ingredient is held in sufficient quantity.
func (inv *Inventory) HasNeed(need []Stack) bool {
	for _, n := range need {
		if inv.Count(n.Item) < n.Count {
			return false
		}
	}
	return true
}

// Craft debits need and credits give. The result is applied to a copy and
// committed only when every step succeeds, so a failed craft leaves the
// inventory untouched.
func (inv *Inventory) Craft(need, give []Stack) bool {
	if !inv.HasNeed(need) {
		return false
	}
	next := inv.Clone()
	for _, n := range need {
		if !next.Take(n.Item, n.Count) {
			return false
		}
	}
	for _, g := range give {
		if !next.Add(g.Item, g.Count) {
			return false
		}
	}
	inv.slots = next.slots
	return true
}

// Clone returns a deep copy.
func (inv *Inventory) Clone() *Inventory {
	return &Inventory{
		slots:    append([]Stack(nil), inv.slots...),
		selected: inv.selected,
	}
}

// FirstNonEmpty returns the index of the first occupied slot, or -1.
func (inv *Inventory) FirstNonEmpty() int {
	for i, s := range inv.slots {
		if !s.Empty() {
			return i
		}
	}
	return -1
}

func (inv *Inventory) decrement(i, n int) {
	inv.slots[i].Count -= n
	if inv.slots[i].Count <= 0 {
		inv.slots[i] = Stack{}
	}
}
