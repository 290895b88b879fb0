package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survival/internal/core"
)

// GameKeyMap defines the key bindings used while a run is in progress.
type GameKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	RunLeft   key.Binding
	RunRight  key.Binding
	Jump      key.Binding
	Hit       key.Binding
	Use       key.Binding
	Inventory key.Binding
	AimLeft   key.Binding
	AimRight  key.Binding
	AimUp     key.Binding
	AimDown   key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Slot      key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	Load      key.Binding
	Fuel      key.Binding
	Take      key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Shot      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Hit, k.Use, k.Inventory, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RunLeft, k.RunRight, k.Jump},
		{k.Hit, k.Use, k.AimLeft, k.AimRight, k.AimUp, k.AimDown},
		{k.Inventory, k.Slot, k.PrevTab, k.NextTab, k.Confirm, k.Back},
		{k.Load, k.Fuel, k.Take},
		{k.Pause, k.Restart, k.Shot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		RunLeft: key.NewBinding(
			key.WithKeys("A", "shift+left"),
			key.WithHelp("A/S-←", "run left"),
		),
		RunRight: key.NewBinding(
			key.WithKeys("D", "shift+right"),
			key.WithHelp("D/S-→", "run right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "w", "up"),
			key.WithHelp("space/w", "jump"),
		),
		Hit: key.NewBinding(
			key.WithKeys("f", "x"),
			key.WithHelp("f/x", "mine"),
		),
		Use: key.NewBinding(
			key.WithKeys("e", "c"),
			key.WithHelp("e/c", "use"),
		),
		Inventory: key.NewBinding(
			key.WithKeys("i", "tab"),
			key.WithHelp("i/tab", "inventory"),
		),
		AimLeft: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "aim left"),
		),
		AimRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "aim right"),
		),
		AimUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "aim up"),
		),
		AimDown: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "aim down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "close"),
		),
		Slot: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "select slot"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "craft tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "smelt tab"),
		),
		Load: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "load furnace"),
		),
		Fuel: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "fuel furnace"),
		),
		Take: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "take output"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HoldTracker turns key presses into held actions. Terminals only report
// presses and auto-repeats, so a press keeps its action held for a short
// window and each repeat extends it.
type HoldTracker struct {
	hold   time.Duration
	perKey map[core.Action]time.Duration
	until  map[core.Action]time.Time
	sticky map[core.Action]bool
}

// NewHoldTracker creates a tracker that holds each press for d.
func NewHoldTracker(d time.Duration) *HoldTracker {
	return &HoldTracker{
		hold:   d,
		perKey: make(map[core.Action]time.Duration),
		until:  make(map[core.Action]time.Time),
		sticky: make(map[core.Action]bool),
	}
}

// SetDuration overrides the hold window of one action.
func (h *HoldTracker) SetDuration(a core.Action, d time.Duration) {
	h.perKey[a] = d
}

// Press holds a until the window expires. Pressing one direction releases
// the opposite one.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	d, ok := h.perKey[a]
	if !ok {
		d = h.hold
	}
	h.until[a] = now.Add(d)

	switch a {
	case core.ActionLeft:
		h.Release(core.ActionRight)
	case core.ActionRight:
		h.Release(core.ActionLeft)
	}
}

// PressSticky holds a until Release is called, for inputs that report
// their release such as mouse buttons.
func (h *HoldTracker) PressSticky(a core.Action) {
	h.sticky[a] = true
}

// Release drops a held action immediately.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.until, a)
	delete(h.sticky, a)
}

// Held reports whether a is held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	if h.sticky[a] {
		return true
	}
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Apply sets every held action on the frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for a := range h.sticky {
		frame.Set(a)
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	clear(h.until)
	clear(h.sticky)
}

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKeyToFrame applies a key message to the frame and the hold tracker.
// Held actions go to the tracker, taps and commands to the frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, hold *HoldTracker, now time.Time) bool {
	k := km.Keys
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true

	case key.Matches(msg, k.RunLeft):
		hold.Press(core.ActionLeft, now)
		hold.Press(core.ActionRun, now)
	case key.Matches(msg, k.RunRight):
		hold.Press(core.ActionRight, now)
		hold.Press(core.ActionRun, now)
	case key.Matches(msg, k.Left):
		hold.Press(core.ActionLeft, now)
		hold.Release(core.ActionRun)
	case key.Matches(msg, k.Right):
		hold.Press(core.ActionRight, now)
		hold.Release(core.ActionRun)
	case key.Matches(msg, k.Jump):
		hold.Press(core.ActionJump, now)
	case key.Matches(msg, k.Hit):
		hold.Press(core.ActionHit, now)

	case key.Matches(msg, k.Use):
		frame.Set(core.ActionUse)
	case key.Matches(msg, k.Inventory):
		frame.Set(core.ActionInventory)
	case key.Matches(msg, k.AimLeft):
		frame.Set(core.ActionAimLeft)
	case key.Matches(msg, k.AimRight):
		frame.Set(core.ActionAimRight)
	case key.Matches(msg, k.AimUp):
		frame.Set(core.ActionAimUp)
	case key.Matches(msg, k.AimDown):
		frame.Set(core.ActionAimDown)
	case key.Matches(msg, k.Confirm):
		frame.Set(core.ActionConfirm)
	case key.Matches(msg, k.Back):
		frame.Set(core.ActionBack)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)

	case key.Matches(msg, k.Slot):
		frame.Push(core.Command{Kind: core.CommandSelectSlot, Index: int(msg.String()[0] - '1')})
	case key.Matches(msg, k.PrevTab):
		frame.Push(core.Command{Kind: core.CommandSetTab, Index: 0})
	case key.Matches(msg, k.NextTab):
		frame.Push(core.Command{Kind: core.CommandSetTab, Index: 1})
	case key.Matches(msg, k.Load):
		frame.Push(core.Command{Kind: core.CommandFurnaceLoad})
	case key.Matches(msg, k.Fuel):
		frame.Push(core.Command{Kind: core.CommandFurnaceFuel})
	case key.Matches(msg, k.Take):
		frame.Push(core.Command{Kind: core.CommandFurnaceTake})
	}
	return false
}

// MapMouseToFrame applies a mouse message. The left button mines while
// pressed, the right button uses, and any event moves the pointer.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame, hold *HoldTracker) {
	frame.Pointer = core.Pointer{X: msg.X, Y: msg.Y, Valid: true}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			hold.PressSticky(core.ActionHit)
		case tea.MouseButtonRight:
			frame.Set(core.ActionUse)
		}
	case tea.MouseActionRelease:
		hold.Release(core.ActionHit)
	}
}
