package core

// Points per matched tile by match class.
const (
	pointsShaped = 25
	pointsRun3   = 10
	pointsRun4   = 20
	pointsRun5   = 50

	// specialCreateBonus is awarded once per special tile created in a step.
	specialCreateBonus = 100
)

// DefaultMaxCombo is the default cap on the combo multiplier.
const DefaultMaxCombo = 8

// PointsPerTile returns the per-tile score for a match.
func PointsPerTile(m Match) int {
	if m.Kind == MatchShaped {
		return pointsShaped
	}
	switch {
	case m.Length >= 5:
		return pointsRun5
	case m.Length == 4:
		return pointsRun4
	default:
		return pointsRun3
	}
}

// BaseScore sums positions × per-tile points over all matches of a step.
func BaseScore(matches []Match) int {
	base := 0
	for _, m := range matches {
		base += len(m.Positions) * PointsPerTile(m)
	}
	return base
}

// StepScore computes one cascade step's total: (base + 100 per created
// special) × multiplier. The multiplier must already include the current
// step's increment.
func StepScore(matches []Match, specialsCreated, multiplier int) int {
	return (BaseScore(matches) + specialCreateBonus*specialsCreated) * multiplier
}

// Combo tracks the running cascade multiplier. The update ordering is fixed
// as: increment for the current step first (capped at Max), then apply the
// new value to that step's own score. A step with no matches resets the
// counter, so the next matching step applies ×1 again. Consecutive matching
// steps therefore score at ×1, ×2, ×3, ... up to the cap.
type Combo struct {
	steps int // Consecutive matching steps; applied multiplier is max(steps, 1)
	max   int
}

// NewCombo creates a combo tracker with the given cap (DefaultMaxCombo if
// max is not positive).
func NewCombo(max int) Combo {
	if max <= 0 {
		max = DefaultMaxCombo
	}
	return Combo{max: max}
}

// Advance updates the multiplier for one cascade step and returns the value
// to apply to that same step's score.
func (c *Combo) Advance(hadMatch bool) int {
	if !hadMatch {
		c.steps = 0
		return 1
	}
	if c.steps < c.max {
		c.steps++
	}
	return c.steps
}

// Multiplier returns the current applied multiplier, always within
// [1, max].
func (c *Combo) Multiplier() int {
	if c.steps < 1 {
		return 1
	}
	return c.steps
}

// Reset returns the multiplier to its starting value (level/game start).
func (c *Combo) Reset() {
	c.steps = 0
}
