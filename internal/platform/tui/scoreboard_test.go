package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-survival/internal/storage"
)

func historyKey(t *testing.T, m ScoreboardModel, r rune) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	sm, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return sm
}

func TestScoreboardOrderAndClear(t *testing.T) {
	store := openTestStore(t)
	for days := 1; days <= 3; days++ {
		_, err := store.SaveRun(storage.RunRecord{Mode: "menu_stub", Outcome: storage.OutcomeDied, Days: days, Score: days})
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 100, 30)
	require.Equal(t, "menu_stub", m.currentMode())
	require.Len(t, m.runs, 3)
	assert.Equal(t, 3, m.runs[0].Days, "best first")
	assert.Contains(t, m.View(), "RUN HISTORY")

	m = historyKey(t, m, 's')
	assert.Equal(t, storage.OrderRecent, m.order)

	r, ok := m.selectedRun()
	require.True(t, ok)
	assert.Contains(t, m.cardView(), FormatDuration(r.DurationSecs))

	// One x only arms the delete.
	m = historyKey(t, m, 'x')
	assert.True(t, m.armedClear)
	assert.Len(t, m.runs, 3)

	m = historyKey(t, m, 'x')
	assert.Empty(t, m.runs)
	runs, err := store.AllRuns("menu_stub")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestScoreboardClearDisarms(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.RunRecord{Mode: "menu_stub", Outcome: storage.OutcomeWon, Days: 7, Score: 7})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 60, 24)
	m = historyKey(t, m, 'x')
	m = historyKey(t, m, 's')
	m = historyKey(t, m, 'x')
	assert.True(t, m.armedClear)
	assert.Len(t, m.runs, 1)
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	assert.Contains(t, m.View(), "No runs")

	back := historyKey(t, m, 'b')
	assert.True(t, back.IsGoingBack())
	assert.Empty(t, back.View())

	quit := historyKey(t, m, 'q')
	assert.True(t, quit.IsQuitting())
}
