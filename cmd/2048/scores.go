package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ajai-sharma-backup/2048/internal/platform/tui"
	"github.com/ajai-sharma-backup/2048/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

With --tui, opens an interactive scoreboard instead.

Examples:
  2048 scores
  2048 scores --tui`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run '2048' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-9s  %s\n", "Rank", "Score", "Max tile", "Date")
	fmt.Printf("  %-4s  %-10s  %-9s  %s\n", "----", "-----", "--------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-9d  %s\n", i+1, entry.Score, entry.MaxTile, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore()
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
