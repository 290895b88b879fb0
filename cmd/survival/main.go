// survival is a terminal 2D survival sandbox: mine, craft, smelt and last
// through the nights of a procedurally generated tile world.
//
// Usage:
//
//	survival list              - List game modes
//	survival play [mode]       - Play a run (default mode: survival)
//	survival menu              - Title menu to pick mode and difficulty
//	survival serve             - Start SSH server for remote play
//	survival scores [mode]     - Show run history for a mode
//	survival map               - Print a generated world
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set world seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.survival/runs.db)
//	--config <path>       - Custom survival.yaml
//	--difficulty <name>   - easy, normal, hard or endless
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survival/internal/games/survival"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survival",
	Short: "Survival - a 2D tile survival sandbox in your terminal",
	Long: `Survival drops you into a procedurally generated world of grass, dirt,
stone, trees and abandoned villages. Mine blocks, loot chests, craft tools,
smelt ore and keep your hunger up until the last night has passed.

Available commands:
  list     - Show game modes
  play     - Start a run
  menu     - Title menu to pick mode and difficulty
  serve    - Start SSH server for remote play
  scores   - View run history
  map      - Print a generated world

Examples:
  survival play
  survival play survival_endless --seed 42
  survival play --difficulty hard
  survival serve --ssh :2222
  survival scores --tui`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		survival.SetConfigPath(flagConfig)
		survival.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.survival/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom survival config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, endless")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mapCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set and
// to fallback otherwise; a nil fallback discards them. The returned closer
// releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		out = f
		closer = func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
