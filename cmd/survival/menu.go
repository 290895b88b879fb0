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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a mode and a difficulty, play a run, and return to the menu when it
ends. Tab opens the run history.

Controls:
  Up/Down/j/k  - Choose mode
  Left/Right   - Change difficulty
  Enter/Space  - Play
  Tab          - Run history
  Q            - Quit

Examples:
  survival menu
  survival menu --fps 30
  survival menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("survival", nil)
	if err != nil {
		return err
	}
	defer closeLog()
	survival.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	gameCfg, cfgErr := config.LoadSurvival(flagConfig)
	if cfgErr != nil {
		logger.Warn("config", "error", cfgErr)
	}
	hold := time.Duration(gameCfg.Input.HoldMillis) * time.Millisecond

	width, height := 80, 24
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

	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		// An explicit --difficulty flag wins over the menu choice
		if flagDifficulty == "" {
			survival.SetDifficultyPreset(string(res.Difficulty))
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			logger.Error("create game", "error", err)
			continue
		}

		// Fresh world for every run unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, tui.WithHoldDuration(hold), tui.WithLogger(logger)); err != nil {
			return fmt.Errorf("run game: %w", err)
		}
	}
}
