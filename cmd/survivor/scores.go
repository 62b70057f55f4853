package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-survivor/internal/platform/tui"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best recorded runs.

Examples:
  survivor scores
  survivor scores --limit 25
  survivor scores --interactive
  survivor scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run history")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height, flagFPS)
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Survivor")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'survivor play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Level", "Kills", "Time", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-6d  %-6s  %-8s  %s\n",
			i+1, r.Score, r.Level, r.Kills, clock(r.GameTime), r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Total kills: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalKills)
	}
	return nil
}

// clock formats a frame count as mm:ss at the --fps rate.
func clock(frames uint64) string {
	fps := uint64(max(flagFPS, 1)) //#nosec G115 -- positive
	secs := frames / fps
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
