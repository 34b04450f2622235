// match3 is a TUI match-3 puzzle game played in the terminal.
//
// Usage:
//
//	match3 list              - List available game modes
//	match3 play <mode>       - Play a game mode
//	match3 menu              - Start the interactive mode picker
//	match3 serve             - Start SSH server for remote play
//	match3 scores <mode>     - Show high scores for a mode
//	match3 simulate          - Run a headless autoplay session
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.match3/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Tile matching puzzle in your terminal",
	Long: `Match-3 is a terminal-based tile matching puzzle game. Swap adjacent
tiles to form runs of three or more, trigger cascades, and build
special tiles for bigger clears.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  simulate - Run a headless autoplay session

Examples:
  match3 list
  match3 play match3
  match3 play match3 --level 3
  match3 menu
  match3 serve --ssh :2222
  match3 scores match3
  match3 simulate --seed 42 --moves 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
