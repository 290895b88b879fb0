package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left - move left (held)
	ActionRight            // D, Right - move right (held)
	ActionJump             // Space, W, Up - jump (held)
	ActionRun              // Shift+direction - run (held)
	ActionHit              // X, F - mine the aimed tile (held)
	ActionUse              // C, E - use the aimed tile or the selected item (tap)
	ActionInventory        // I, Tab - toggle the inventory panel (tap)
	ActionAimLeft          // J - move the aim cursor (tap)
	ActionAimRight         // L
	ActionAimUp            // K
	ActionAimDown          // ,
	ActionConfirm          // Enter - confirm selection in a panel
	ActionBack             // B, Escape - go back
	ActionRestart          // R - restart after the run ended
	ActionQuit             // Q, Ctrl+C - exit
	ActionPause            // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRun:
		return "Run"
	case ActionHit:
		return "Hit"
	case ActionUse:
		return "Use"
	case ActionInventory:
		return "Inventory"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionAimUp:
		return "AimUp"
	case ActionAimDown:
		return "AimDown"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// CommandKind identifies a discrete UI-originated request.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandSelectSlot
	CommandCraft
	CommandFurnaceLoad
	CommandFurnaceFuel
	CommandFurnaceTake
	CommandSetTab
)

// Command is a discrete UI action such as picking a slot or a recipe.
// Index carries the slot, recipe or tab number where the kind needs one.
type Command struct {
	Kind  CommandKind
	Index int
}

// Pointer is a screen-cell position reported by the mouse.
type Pointer struct {
	X, Y  int
	Valid bool
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool

	// Pointer is the last known mouse cell, if any.
	Pointer Pointer

	// Commands are UI requests queued since the previous tick, in order.
	Commands []Command
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Push queues a UI command for this frame.
func (f *InputFrame) Push(cmd Command) {
	f.Commands = append(f.Commands, cmd)
}

// Clear resets actions and commands for the next frame.
// The pointer position is sticky and survives a clear.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Commands = f.Commands[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	if len(f.Commands) > 0 {
		clone.Commands = append([]Command(nil), f.Commands...)
	}
	return clone
}
