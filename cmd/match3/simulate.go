package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

var (
	flagSimMoves   int
	flagSimLevel   int
	flagSimConfig  string
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autoplay session",
	Long: `Run the simulation without a UI, playing hint moves until the move
budget runs out, the goal is reached, or the board is dead.

Useful for checking level balance and for reproducing games from a seed.

Examples:
  match3 simulate
  match3 simulate --seed 42 --moves 20
  match3 simulate --level 5 --verbose`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 0, "Move budget override (0 = level default)")
	simulateCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Level to simulate (1-based)")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log every cascade step")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3-sim",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadMatch3(flagSimConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	level := cfg.Level(flagSimLevel - 1)
	params := core.Params{
		BoardSize:  cfg.Board.Size,
		TileKinds:  cfg.Board.TileKinds,
		MoveBudget: level.MoveBudget,
		GoalScore:  level.GoalScore,
		MaxCombo:   cfg.Scoring.MaxCombo,
	}
	if flagSimMoves > 0 {
		params.MoveBudget = flagSimMoves
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("starting simulation",
		"seed", seed,
		"level", flagSimLevel,
		"goal", params.GoalScore,
		"budget", params.MoveBudget,
	)

	session := core.NewSession(params, seed)
	moves := 0
	deepestCascade := 0

	for {
		if session.Won() {
			logger.Info("goal reached", "moves", moves, "score", session.Score())
			break
		}
		if session.Exhausted() {
			reason := "move budget spent"
			if session.NoMovesLeft() {
				reason = "no valid moves remain"
			}
			logger.Info("simulation over", "reason", reason, "moves", moves, "score", session.Score())
			break
		}

		mv, ok := session.Hint()
		if !ok {
			logger.Info("board is dead", "moves", moves, "score", session.Score())
			break
		}

		result, err := session.TrySwap(mv.A, mv.B)
		if err != nil {
			logger.Error("swap failed", "from", mv.A, "to", mv.B, "error", err)
			break
		}
		moves++

		if len(result.Steps) > deepestCascade {
			deepestCascade = len(result.Steps)
		}

		logger.Info("move played",
			"move", moves,
			"from", mv.A,
			"to", mv.B,
			"gained", result.TotalScore,
			"cascades", len(result.Steps),
			"combo", result.FinalCombo,
			"score", session.Score(),
		)

		if flagSimVerbose {
			for i, step := range result.Steps {
				logger.Debug("cascade step",
					"step", i+1,
					"matches", len(step.Matches),
					"removed", len(step.Removed),
					"specials", len(step.Specials),
					"score", step.Score,
					"multiplier", step.Multiplier,
				)
			}
		}
	}

	logger.Info("summary",
		"seed", seed,
		"moves", moves,
		"score", session.Score(),
		"deepest_cascade", deepestCascade,
		"won", session.Won(),
	)
}
