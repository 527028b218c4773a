package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/river-raid/internal/platform/tui"
	"github.com/vovakirdan/river-raid/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

Examples:
  raid scores
  raid scores --limit 25
  raid scores -i          # Browse the full table interactively
  raid scores --clear     # Forget every recorded run`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive high-score table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("High scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Println("High Scores - River Raid")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'raid play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-9s  %s\n", "Rank", "Pilot", "Score", "Level", "Distance", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-9s  %s\n", "----", "-----", "-----", "-----", "--------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-9.0f  %s\n",
			i+1, r.Pilot, r.Score, r.Level, r.Distance, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Top level: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.BestLevel)
	}
	return nil
}
