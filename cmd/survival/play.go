package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-survival/internal/config"
	"github.com/vovakirdan/tui-survival/internal/core"
	"github.com/vovakirdan/tui-survival/internal/games/survival"
	"github.com/vovakirdan/tui-survival/internal/platform/tui"
	"github.com/vovakirdan/tui-survival/internal/registry"
	"github.com/vovakirdan/tui-survival/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Start a run",
	Long: `Start a run of the given mode (survival or survival_endless).

Controls:
  A/D, arrows     - Move (hold Shift or use A/D capitals to run)
  Space/W/Up      - Jump
  F/X, left click - Mine the aimed block
  E/C, right click- Use: open chest, eat, place block
  J/K/L/,  mouse  - Aim
  1-9             - Select hotbar slot
  I/Tab           - Inventory (craft and smelt tabs)
  [ ]             - Craft / smelt tab
  V G T           - Furnace: load, fuel, take
  P               - Pause
  R               - Restart (after the run ended)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy    - Survive 5 days, slower hunger, gentler starvation
  normal  - Survive the configured days (7 by default)
  hard    - Survive 10 days, faster hunger, harsher starvation
  endless - No win condition

Examples:
  survival play
  survival play survival_endless
  survival play --difficulty hard --seed 7
  survival play --config ./my-survival.yaml --log-file run.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := survival.ModeSurvival
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'survival list' to see available modes", gameID)
	}

	logger, closeLog, err := newLogger("survival", nil)
	if err != nil {
		return err
	}
	defer closeLog()
	survival.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Hold window for key presses comes from the game config
	gameCfg, cfgErr := config.LoadSurvival(flagConfig)
	if cfgErr != nil {
		logger.Warn("config", "error", cfgErr)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, cfg,
		tui.WithHoldDuration(time.Duration(gameCfg.Input.HoldMillis)*time.Millisecond),
		tui.WithLogger(logger),
	)
}
