// Package registry maps mode IDs to game factories. Modes register from
// init() so hosts can start them by name.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-survival/internal/core"
)

// Game is a playable mode driven by a host at a fixed tick rate.
// Implementations hold only simulation state: the host owns input mapping,
// timing and terminal output.
type Game interface {
	// ID is the mode key used on the command line and in run history.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run sized and seeded by cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions, pointer and commands of in.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen.
	Render(dst *core.Screen)

	// State reports score and run status.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID      string
	Title   string
	Summary string // One line shown in listings, may be empty
}

// Factory creates a new game instance.
type Factory func() Game

// Option sets optional metadata at registration.
type Option func(*GameInfo)

// WithSummary attaches a one-line description to the mode.
func WithSummary(s string) Option {
	return func(info *GameInfo) {
		info.Summary = strings.TrimSpace(s)
	}
}

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. The title is read from a throwaway instance.
// Registering the same ID twice panics.
func Register(id string, f Factory, opts ...Option) {
	if id == "" || f == nil {
		panic("registry: empty id or nil factory")
	}

	info := GameInfo{ID: id, Title: f().Title()}
	for _, opt := range opts {
		opt(&info)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Lookup returns the metadata of a mode.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.info, ok
}

// Create builds a fresh instance of mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
