package sim

// Furnace is the single smelting station of a run. It smelts one input
// unit at a time while fuel lasts and holds at most one finished output.
type Furnace struct {
	Input    ItemCode // ItemNone when idle
	Output   ItemCode // ItemNone when nothing to collect
	Progress float64  // Seconds smelted on the current input
	Fuel     float64  // Seconds of burn time left
}

// SmeltEvent reports a finished smelt. Overwrote is set when an
// uncollected output was replaced.
type SmeltEvent struct {
	Done      bool
	Output    ItemCode
	Overwrote bool
}

// Busy reports whether an input is loaded.
func (f *Furnace) Busy() bool {
	return f.Input != ItemNone
}

// Load moves one unit of the selected item into the furnace input.
// The item must have a smelt recipe and the input must be free.
func (f *Furnace) Load(inv *Inventory) bool {
	s, ok := inv.SelectedStack()
	if !ok || f.Busy() {
		return false
	}
	if _, smeltable := Smelt(s.Item); !smeltable {
		return false
	}
	inv.RemoveOneSelected()
	f.Input = s.Item
	return true
}

// AddFuel burns one unit of the selected item into the fuel reserve.
// Fuel accumulates without limit.
func (f *Furnace) AddFuel(inv *Inventory) bool {
	s, ok := inv.SelectedStack()
	if !ok {
		return false
	}
	v, burns := FuelValue(s.Item)
	if !burns {
		return false
	}
	inv.RemoveOneSelected()
	f.Fuel += v
	return true
}

// Take moves the finished output into inv. It fails without change when
// there is no output or inv is full.
func (f *Furnace) Take(inv *Inventory) bool {
	if f.Output == ItemNone {
		return false
	}
	if !inv.Add(f.Output, 1) {
		return false
	}
	f.Output = ItemNone
	return true
}

// Update advances smelting by dt seconds. Progress only accrues while an
// input is loaded and fuel remains. A finished smelt replaces any output
// still waiting to be collected.
func (f *Furnace) Update(dt float64) SmeltEvent {
	if !f.Busy() {
		f.Progress = 0
		return SmeltEvent{}
	}
	if f.Fuel <= 0 {
		return SmeltEvent{}
	}
	r, ok := Smelt(f.Input)
	if !ok {
		f.Input = ItemNone
		f.Progress = 0
		return SmeltEvent{}
	}
	f.Fuel = max(0, f.Fuel-dt)
	f.Progress += dt
	if f.Progress < r.Seconds {
		return SmeltEvent{}
	}
	ev := SmeltEvent{Done: true, Output: r.Output, Overwrote: f.Output != ItemNone}
	f.Progress = 0
	f.Input = ItemNone
	f.Output = r.Output
	return ev
}

// ProgressFraction returns smelt progress in [0,1].
func (f *Furnace) ProgressFraction() float64 {
	r, ok := Smelt(f.Input)
	if !ok || r.Seconds <= 0 {
		return 0
	}
	return min(f.Progress/r.Seconds, 1)
}
