package config

// LevelCount returns the number of explicitly configured levels. Levels
// past the table are generated by the progression rules, so the campaign
// itself is open-ended.
func (c Match3Config) LevelCount() int {
	return len(c.Levels)
}

// Level returns the parameters for a zero-based level index. Indices past
// the configured table extrapolate: the goal grows geometrically from the
// last entry and the move budget gains the configured bonus per level.
func (c Match3Config) Level(index int) LevelConfig {
	if index < 0 {
		index = 0
	}
	if index < len(c.Levels) {
		return c.Levels[index]
	}
	if len(c.Levels) == 0 {
		return LevelConfig{GoalScore: 5000, MoveBudget: 30}
	}

	last := c.Levels[len(c.Levels)-1]
	extra := index - len(c.Levels) + 1
	growth := c.Progression.GoalGrowth
	if growth <= 1.0 {
		growth = 1.25
	}

	goal := float64(last.GoalScore)
	for i := 0; i < extra; i++ {
		goal *= growth
	}
	// Round to a clean-looking score step.
	goalInt := (int(goal) + 49) / 50 * 50

	budget := last.MoveBudget + extra*c.Progression.MoveBonus
	if budget < 10 {
		budget = 10
	}

	return LevelConfig{
		GoalScore:  goalInt,
		MoveBudget: budget,
		TimeLimit:  last.TimeLimit,
	}
}
