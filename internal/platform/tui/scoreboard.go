package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-survival/internal/registry"
	"github.com/vovakirdan/tui-survival/internal/storage"
)

const (
	historyLimit    = 100 // Rows loaded per mode
	cardWidth       = 26  // Width of the run detail card
	minWidthForCard = 80  // Below this the card goes under the table
	historyChrome   = 9   // Rows used by title, tabs, borders and help
)

var (
	historyTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	historyDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	historyTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	historyBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	historyWarn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	outcomeColor = map[string]lipgloss.Color{
		storage.OutcomeWon:  "42",
		storage.OutcomeDied: "203",
		storage.OutcomeQuit: "244",
	}
)

// HistoryKeyMap holds the run history bindings.
type HistoryKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Prev  key.Binding
	Next  key.Binding
	Order key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Order, k.Clear, k.Back}
}

// FullHelp implements help.KeyMap.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Order, k.Clear, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns the standard history bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:  key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev mode")),
		Next:  key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next mode")),
		Order: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "best/recent")),
		Clear: key.NewBinding(key.WithKeys("x"), key.WithHelp("x x", "clear mode")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses saved runs per mode.
type ScoreboardModel struct {
	modes []registry.GameInfo
	mode  int
	order storage.RunOrder
	store *storage.Store

	runs  []storage.RunRecord
	stats *storage.ModeStats

	table table.Model
	help  help.Model
	keys  HistoryKeyMap

	width, height int

	armedClear bool   // First x pressed, the next one deletes
	status     string // One-line feedback under the tabs
	goingBack  bool
	quitting   bool
}

// NewScoreboardModel opens the history on the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newHistoryTable(m.tableWidth(), m.tableHeight())
	m.reload()
	return m
}

func newHistoryTable(width, height int) table.Model {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Days", Width: 5},
		{Title: "Result", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "When", Width: 12},
	}
	used := 0
	for _, c := range cols {
		used += c.Width + 2
	}
	if spare := width - used; spare > 0 {
		cols[len(cols)-1].Width += min(spare, 10)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)
	return t
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForCard
}

func (m ScoreboardModel) tableWidth() int {
	w := m.width - 4
	if m.wide() {
		w -= cardWidth + 6
	}
	return w
}

func (m ScoreboardModel) tableHeight() int {
	h := m.height - historyChrome
	if !m.wide() {
		h -= 5 // Compact card below the table
	}
	return h
}

// currentMode returns the ID of the selected mode, or "" with no modes.
func (m ScoreboardModel) currentMode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// reload fetches runs and stats of the selected mode.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	mode := m.currentMode()
	if m.store != nil && mode != "" {
		runs, err := m.store.Runs(mode, m.order, historyLimit)
		if err != nil {
			m.status = err.Error()
		}
		m.runs = runs
		if stats, err := m.store.GetModeStats(mode); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Days),
			r.Outcome,
			FormatDuration(r.DurationSecs),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectedRun returns the run under the table cursor.
func (m ScoreboardModel) selectedRun() (storage.RunRecord, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.RunRecord{}, false
	}
	return m.runs[i], true
}

func (m *ScoreboardModel) shiftMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.status = ""
	m.reload()
}

func (m *ScoreboardModel) clear() {
	mode := m.currentMode()
	if m.store == nil || mode == "" {
		return
	}
	if err := m.store.ClearRuns(mode); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Cleared %s history", mode)
	m.reload()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newHistoryTable(m.tableWidth(), m.tableHeight())
		m.reload()
		return m, nil

	case tea.KeyMsg:
		armed := m.armedClear
		m.armedClear = false

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.shiftMode(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.shiftMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if armed {
				m.clear()
			} else if len(m.runs) > 0 {
				m.armedClear = true
				m.status = "Press x again to delete this mode's runs"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(historyTitle.Render("RUN HISTORY"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabsLine(), m.width))
	b.WriteString("\n")

	switch {
	case m.armedClear:
		b.WriteString(centerText(historyWarn.Render(m.status), m.width))
	case m.status != "":
		b.WriteString(centerText(historyDim.Render(m.status), m.width))
	default:
		b.WriteString(centerText(historyDim.Render("sorted by "+m.order.String()), m.width))
	}
	b.WriteString("\n")

	runs := historyBox.Render(m.tableView())
	card := historyBox.Width(cardWidth).Render(m.cardView())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", card))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, runs, card))
	}

	b.WriteString("\n")
	b.WriteString(historyDim.Render(m.help.View(m.keys)))
	return b.String()
}

// tabsLine renders the mode selector, falling back to arrows when the
// tabs do not fit.
func (m ScoreboardModel) tabsLine() string {
	if len(m.modes) == 0 {
		return historyDim.Render("no game modes registered")
	}
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			parts[i] = historyTab.Render(g.Title)
		} else {
			parts[i] = historyDim.Render(" " + g.Title + " ")
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = historyTab.Render("‹ " + m.modes[m.mode].Title + " ›")
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.runs) == 0 {
		return historyDim.Italic(true).Padding(1, 2).Render("No runs recorded yet.\nSurvive a few nights to get on the board!")
	}
	return m.table.View()
}

// cardView shows the selected run followed by mode totals.
func (m ScoreboardModel) cardView() string {
	var b strings.Builder
	if r, ok := m.selectedRun(); ok {
		res := lipgloss.NewStyle().Bold(true).Foreground(outcomeColor[r.Outcome]).Render(strings.ToUpper(r.Outcome))
		fmt.Fprintf(&b, "%s  day %d\n", res, r.Days)
		fmt.Fprintf(&b, "time  %s\n", FormatDuration(r.DurationSecs))
		fmt.Fprintf(&b, "seed  %d\n", r.Seed)
		if m.wide() {
			fmt.Fprintf(&b, "run   %s\n", shortID(r.ID))
		}
		b.WriteString("\n")
	}

	st := m.stats
	if st == nil || st.Runs == 0 {
		b.WriteString(historyDim.Render("No runs yet"))
		return b.String()
	}
	fmt.Fprintf(&b, "runs %d  won %d  died %d\n", st.Runs, st.Wins, st.Deaths)
	fmt.Fprintf(&b, "best %d days  avg %.1f", st.BestDays, st.AvgDays)
	if m.wide() {
		fmt.Fprintf(&b, "\nplayed %s", FormatDuration(int(st.TotalSecs)))
		if !st.LastPlayed.IsZero() {
			fmt.Fprintf(&b, "\nlast %s", st.LastPlayed.Local().Format("Jan 02 15:04"))
		}
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatDuration renders seconds as m:ss or h:mm:ss.
func FormatDuration(secs int) string {
	secs = max(secs, 0)
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// IsGoingBack reports whether the user left with back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the history full screen and reports whether the user
// went back rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
