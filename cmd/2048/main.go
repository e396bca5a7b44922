// 2048 is a terminal version of the sliding-tile merge puzzle.
//
// Usage:
//
//	2048                  - Play in the current terminal
//	2048 scores           - Show high scores
//	2048 serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible games
//	--db <path>      - Set database path (default: ~/.2048/scores.db)
//	--config <path>  - Path to a custom rules YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "2048",
	Short: "Play 2048 in your terminal",
	Long: `2048 is a terminal version of the sliding-tile merge puzzle.

Push the tiles toward an edge; equal tiles merge and score. The game
ends when the board is full and no merge is possible.

Controls:
  Arrow keys/WASD/hjkl - Push tiles
  N                    - New game
  P/Esc                - Pause
  Q/Ctrl+C             - Quit

Examples:
  2048
  2048 --seed 42
  2048 --config ./my-rules.yaml
  2048 scores
  2048 serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
