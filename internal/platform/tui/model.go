package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survival/internal/core"
	"github.com/vovakirdan/tui-survival/internal/registry"
	"github.com/vovakirdan/tui-survival/internal/storage"
)

// DefaultHold is how long a key press keeps a movement action held.
const DefaultHold = 450 * time.Millisecond

// jumpHold is shorter so a single tap does not bounce repeatedly.
const jumpHold = 120 * time.Millisecond

// elapsedReporter is implemented by games that track simulated time.
type elapsedReporter interface {
	Elapsed() float64
}

// Model is the Bubble Tea model for running a survival game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       *KeyMapper
	hold       *HoldTracker
	logger     *log.Logger
	renderer   *ScreenRenderer
	gameState  core.GameState
	quitting   bool
	run        *runState
}

// runState tracks whether the current run was written to history.
// Shared by Model copies so a save is never repeated.
type runState struct {
	saved bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithHoldDuration sets how long a key press keeps an action held.
func WithHoldDuration(d time.Duration) ModelOption {
	return func(m *Model) {
		if d > 0 {
			m.hold = NewHoldTracker(d)
			m.hold.SetDuration(core.ActionJump, min(d, jumpHold))
		}
	}
}

// WithLogger routes host events to logger.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithRenderer renders frames with r, e.g. one bound to an SSH session.
func WithRenderer(r *ScreenRenderer) ModelOption {
	return func(m *Model) {
		if r != nil {
			m.renderer = r
		}
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	cfg = cfg.Normalized(func() int64 { return time.Now().UnixNano() })

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		logger:     log.New(io.Discard),
		renderer:   defaultScreenRenderer,
		run:        &runState{},
	}
	WithHoldDuration(DefaultHold)(&m)
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame, m.hold)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame, m.hold, time.Now()) {
		m.saveRun(true)
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionRestart) && !m.gameState.GameOver {
		// Restart only applies to a finished run
		delete(m.inputFrame.Actions, core.ActionRestart)
	}
	if key.Matches(msg, m.keys.Keys.Shot) {
		m.saveScreenshot()
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps running;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.run = &runState{}
		m.hold.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.hold.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveRun(false)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun writes the current run to history once. A run abandoned before
// it ended is recorded as quit; one that never advanced is skipped.
func (m Model) saveRun(quit bool) {
	if m.store == nil || m.run.saved {
		return
	}
	elapsed := 0.0
	if er, ok := m.game.(elapsedReporter); ok {
		elapsed = er.Elapsed()
	}

	outcome := storage.OutcomeDied
	switch {
	case m.gameState.Won:
		outcome = storage.OutcomeWon
	case !m.gameState.GameOver && quit:
		if elapsed == 0 {
			return
		}
		outcome = storage.OutcomeQuit
	}

	m.run.saved = true
	id, err := m.store.SaveRun(storage.RunRecord{
		Mode:         m.game.ID(),
		Outcome:      outcome,
		Days:         m.gameState.Score,
		Score:        m.gameState.Score,
		DurationSecs: int(math.Round(elapsed)),
		Seed:         m.config.Seed,
	})
	if err != nil {
		m.logger.Error("save run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "mode", m.game.ID(), "outcome", outcome, "days", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".survival", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot dir", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return m.renderer.Render(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer aim follows the mouse
	)

	_, err := p.Run()
	return err
}
