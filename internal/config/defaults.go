package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default game configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Size:      8,
			TileKinds: 6,
		},
		Scoring: ScoringConfig{
			MaxCombo: 8,
		},
		PowerUps: PowerUpConfig{
			Hammers:  3,
			Shuffles: 2,
			Undos:    5,
		},
		Animation: AnimationConfig{
			StepDelayTicks: 6,
		},
		Levels: []LevelConfig{
			{GoalScore: 2000, MoveBudget: 30},
			{GoalScore: 3500, MoveBudget: 30},
			{GoalScore: 5000, MoveBudget: 28},
			{GoalScore: 7000, MoveBudget: 26},
			{GoalScore: 9500, MoveBudget: 25},
			{GoalScore: 12500, MoveBudget: 24},
			{GoalScore: 16000, MoveBudget: 22},
			{GoalScore: 20000, MoveBudget: 20},
		},
		Progression: ProgressionConfig{
			GoalGrowth: 1.25,
			MoveBonus:  0,
		},
	}
}
