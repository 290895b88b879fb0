package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-survival/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHoldTrackerWindow(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHoldTracker(450 * time.Millisecond)

	h.Press(core.ActionRight, now)
	assert.True(t, h.Held(core.ActionRight, now.Add(400*time.Millisecond)))
	assert.False(t, h.Held(core.ActionRight, now.Add(450*time.Millisecond)))

	// A repeat extends the window
	h.Press(core.ActionRight, now.Add(300*time.Millisecond))
	assert.True(t, h.Held(core.ActionRight, now.Add(700*time.Millisecond)))
}

func TestHoldTrackerOppositeDirections(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHoldTracker(time.Second)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionRight, now)
	assert.False(t, h.Held(core.ActionLeft, now))
	assert.True(t, h.Held(core.ActionRight, now))
}

func TestHoldTrackerApply(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHoldTracker(time.Second)
	h.SetDuration(core.ActionJump, 100*time.Millisecond)
	h.Press(core.ActionRight, now)
	h.Press(core.ActionJump, now)
	h.PressSticky(core.ActionHit)

	frame := core.NewInputFrame()
	h.Apply(&frame, now.Add(500*time.Millisecond))
	assert.True(t, frame.Has(core.ActionRight))
	assert.False(t, frame.Has(core.ActionJump), "jump window is shorter")
	assert.True(t, frame.Has(core.ActionHit), "sticky holds never expire")

	h.Release(core.ActionHit)
	frame.Clear()
	h.Apply(&frame, now.Add(2*time.Second))
	assert.Empty(t, frame.Actions)

	h.Press(core.ActionLeft, now)
	h.Reset()
	assert.False(t, h.Held(core.ActionLeft, now))
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	now := time.Unix(0, 0)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		tap  core.Action // Expected on the frame
		held []core.Action
	}{
		{"left", runeKey("a"), core.ActionNone, []core.Action{core.ActionLeft}},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionNone, []core.Action{core.ActionRight}},
		{"run right", runeKey("D"), core.ActionNone, []core.Action{core.ActionRight, core.ActionRun}},
		{"run left arrow", tea.KeyMsg{Type: tea.KeyShiftLeft}, core.ActionNone, []core.Action{core.ActionLeft, core.ActionRun}},
		{"jump", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionNone, []core.Action{core.ActionJump}},
		{"mine", runeKey("f"), core.ActionNone, []core.Action{core.ActionHit}},
		{"use", runeKey("e"), core.ActionUse, nil},
		{"inventory", tea.KeyMsg{Type: tea.KeyTab}, core.ActionInventory, nil},
		{"aim down", runeKey(","), core.ActionAimDown, nil},
		{"confirm", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, nil},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, nil},
		{"pause", runeKey("p"), core.ActionPause, nil},
		{"restart", runeKey("r"), core.ActionRestart, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			hold := NewHoldTracker(time.Second)

			quit := km.MapKeyToFrame(tt.msg, &frame, hold, now)
			assert.False(t, quit)

			if tt.tap != core.ActionNone {
				assert.True(t, frame.Has(tt.tap), "tap %v", tt.tap)
			}
			for _, a := range tt.held {
				assert.True(t, hold.Held(a, now), "held %v", a)
				assert.False(t, frame.Has(a), "held actions are applied per tick")
			}
		})
	}
}

func TestMapKeyCommands(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	hold := NewHoldTracker(time.Second)
	now := time.Unix(0, 0)

	for _, k := range []string{"3", "]", "v", "g", "t", "["} {
		km.MapKeyToFrame(runeKey(k), &frame, hold, now)
	}

	require.Len(t, frame.Commands, 6)
	assert.Equal(t, core.Command{Kind: core.CommandSelectSlot, Index: 2}, frame.Commands[0])
	assert.Equal(t, core.Command{Kind: core.CommandSetTab, Index: 1}, frame.Commands[1])
	assert.Equal(t, core.CommandFurnaceLoad, frame.Commands[2].Kind)
	assert.Equal(t, core.CommandFurnaceFuel, frame.Commands[3].Kind)
	assert.Equal(t, core.CommandFurnaceTake, frame.Commands[4].Kind)
	assert.Equal(t, core.Command{Kind: core.CommandSetTab, Index: 0}, frame.Commands[5])
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	hold := NewHoldTracker(time.Second)

	assert.True(t, km.MapKeyToFrame(runeKey("q"), &frame, hold, time.Now()))
	assert.True(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame, hold, time.Now()))
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	hold := NewHoldTracker(time.Second)
	now := time.Now()

	km.MapMouseToFrame(tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionMotion}, &frame, hold)
	assert.Equal(t, core.Pointer{X: 7, Y: 3, Valid: true}, frame.Pointer)

	km.MapMouseToFrame(tea.MouseMsg{X: 8, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame, hold)
	assert.True(t, hold.Held(core.ActionHit, now.Add(time.Hour)))

	km.MapMouseToFrame(tea.MouseMsg{X: 8, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &frame, hold)
	assert.False(t, hold.Held(core.ActionHit, now))

	km.MapMouseToFrame(tea.MouseMsg{X: 9, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame, hold)
	assert.True(t, frame.Has(core.ActionUse))

	// The pointer survives a frame clear
	frame.Clear()
	assert.Equal(t, core.Pointer{X: 9, Y: 4, Valid: true}, frame.Pointer)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(-3))
	assert.Equal(t, "1:05", FormatDuration(65))
	assert.Equal(t, "1:00:01", FormatDuration(3601))
}
