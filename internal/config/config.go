// Package config provides YAML-based game configuration loading and level
// progression for the match3 platform.
package config

// Match3Config contains all tunable parameters for a game.
type Match3Config struct {
	Board       BoardConfig       `yaml:"board"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	PowerUps    PowerUpConfig     `yaml:"power_ups"`
	Animation   AnimationConfig   `yaml:"animation"`
	Levels      []LevelConfig     `yaml:"levels"`
	Progression ProgressionConfig `yaml:"progression"`
}

// BoardConfig defines the board dimensions and tile variety.
type BoardConfig struct {
	Size      int `yaml:"size"`
	TileKinds int `yaml:"tile_kinds"`
}

// ScoringConfig defines scoring parameters.
type ScoringConfig struct {
	MaxCombo int `yaml:"max_combo"`
}

// PowerUpConfig defines how many power-up charges a level grants.
type PowerUpConfig struct {
	Hammers  int `yaml:"hammers"`
	Shuffles int `yaml:"shuffles"`
	Undos    int `yaml:"undos"`
}

// AnimationConfig defines presentation pacing. It never affects the
// simulation outcome, only how cascade steps are revealed.
type AnimationConfig struct {
	StepDelayTicks int `yaml:"step_delay_ticks"`
}

// LevelConfig holds the externally supplied level parameters the engine
// compares against session counters.
type LevelConfig struct {
	GoalScore  int `yaml:"goal_score"`
	MoveBudget int `yaml:"move_budget"`
	TimeLimit  int `yaml:"time_limit"` // Seconds; 0 = untimed
}

// ProgressionConfig defines how levels past the explicit table scale.
type ProgressionConfig struct {
	GoalGrowth float64 `yaml:"goal_growth"` // Goal multiplier per extra level
	MoveBonus  int     `yaml:"move_bonus"`  // Extra moves per extra level
}
