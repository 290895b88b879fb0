package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-survival/internal/games/survival"
	"github.com/vovakirdan/tui-survival/internal/platform/tui"
	"github.com/vovakirdan/tui-survival/internal/registry"
	"github.com/vovakirdan/tui-survival/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresAll    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show run history for a mode",
	Long: `Display the best runs for the given mode, ranked by days survived
and then by the shortest time, followed by mode statistics.

Examples:
  survival scores
  survival scores survival_endless --limit 25
  survival scores --recent
  survival scores --all
  survival scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive run history")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List newest runs first")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every mode that has runs")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := survival.ModeSurvival
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'survival list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err = tui.RunScoreboard(store, width, height)
		return err
	}

	if flagScoresAll {
		return printAllModes(store)
	}

	order := storage.OrderBest
	if flagScoresRecent {
		order = storage.OrderRecent
	}
	runs, err := store.Runs(gameID, order, max(flagScoresLimit, 1))
	if err != nil {
		return fmt.Errorf("retrieve runs: %w", err)
	}

	info, _ := registry.Lookup(gameID)
	fmt.Printf("Run History - %s (%s)\n", info.Title, order)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'survival play %s' to record the first run!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-4s  %-7s  %-8s  %s\n", "Rank", "Days", "Outcome", "Time", "Date")
	fmt.Printf("  %-4s  %-4s  %-7s  %-8s  %s\n", "----", "----", "-------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-4d  %-7s  %-8s  %s\n",
			i+1, r.Days, r.Outcome, tui.FormatDuration(r.DurationSecs), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Deaths: %d  Best: %d days  Avg: %.1f days  Played: %s\n",
			stats.Runs, stats.Wins, stats.Deaths, stats.BestDays, stats.AvgDays, tui.FormatDuration(int(stats.TotalSecs)))
	}
	return nil
}

func printAllModes(store *storage.Store) error {
	all, err := store.GetAllModesStats()
	if err != nil {
		return fmt.Errorf("retrieve stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	modes := slices.Sorted(maps.Keys(all))
	fmt.Printf("  %-18s  %4s  %4s  %5s  %4s  %s\n", "Mode", "Runs", "Wins", "Died", "Best", "Last played")
	for _, mode := range modes {
		st := all[mode]
		fmt.Printf("  %-18s  %4d  %4d  %5d  %4d  %s\n",
			mode, st.Runs, st.Wins, st.Deaths, st.BestDays, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
