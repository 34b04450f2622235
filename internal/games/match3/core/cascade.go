package core

import "math/rand"

// CascadeStep records everything that happened in one resolution cycle, in
// the order it happened: matches found, specials spawned, cells removed,
// gravity movements, refills, and the score earned at the step's
// multiplier. Callers use the per-step records to animate the cascade; the
// records never influence the simulation itself.
type CascadeStep struct {
	Matches    []Match
	Specials   []SpecialSpawn
	Removed    []Pos
	Movements  []Movement
	Refills    []Refill
	Score      int
	Multiplier int
}

// SwapResult is the outcome of a swap request.
type SwapResult struct {
	Accepted   bool
	Steps      []CascadeStep
	TotalScore int
	FinalCombo int // Always 1: the terminal scan has no matches and resets the combo
}

// trySwapGrid applies a swap tentatively and, when it produces matches (or
// activates a special), resolves the full cascade. On a matchless swap the
// grid is reverted and the result reports not accepted.
//
// A swap involving a special tile is always accepted: the special activates
// at its post-swap position, its affected area is cleared as the first
// step, and any follow-up matches cascade as usual.
func trySwapGrid(g *Grid, combo *Combo, rng *rand.Rand, a, b Pos) SwapResult {
	if !g.Swap(a, b) {
		return SwapResult{FinalCombo: 1}
	}

	var steps []CascadeStep
	total := 0

	// Special tiles activate on swap instead of being validated for matches.
	var activated []Pos
	for _, p := range []Pos{a, b} {
		if st, ok := SpecialTypeOf(g.Get(p)); ok {
			activated = append(activated, Activate(g, p, st, rng)...)
		}
	}

	if len(activated) > 0 {
		activated = dedupPositions(activated)
		mult := combo.Advance(true)
		score := len(activated) * pointsRun3 * mult
		g.Remove(activated)
		movements := g.ApplyGravity()
		refills := g.FillEmpty()
		steps = append(steps, CascadeStep{
			Removed:    activated,
			Movements:  movements,
			Refills:    refills,
			Score:      score,
			Multiplier: mult,
		})
		total += score
	} else if !HasMatches(g) {
		// Matchless swap: revert, reject, leave all state unchanged.
		g.Swap(a, b)
		return SwapResult{FinalCombo: 1}
	}

	cascadeSteps, cascadeScore := resolveCascades(g, combo, rng)
	steps = append(steps, cascadeSteps...)
	total += cascadeScore

	return SwapResult{
		Accepted:   true,
		Steps:      steps,
		TotalScore: total,
		FinalCombo: combo.Multiplier(),
	}
}

// resolveCascades repeats match → specials → score → remove → gravity →
// refill until a scan finds nothing. The terminal empty scan resets the
// combo multiplier.
func resolveCascades(g *Grid, combo *Combo, rng *rand.Rand) ([]CascadeStep, int) {
	var steps []CascadeStep
	total := 0

	for {
		matches := FindMatches(g)
		if len(matches) == 0 {
			combo.Advance(false)
			break
		}

		mult := combo.Advance(true)
		specials := SpecialsFor(matches)
		score := StepScore(matches, len(specials), mult)

		var removed []Pos
		for _, m := range matches {
			removed = append(removed, m.Positions...)
		}
		removed = dedupPositions(removed)
		g.Remove(removed)

		// New specials occupy cells before gravity, so they fall with the rest.
		for _, sp := range specials {
			g.CreateSpecial(sp.Pos, sp.Type)
		}

		movements := g.ApplyGravity()
		refills := g.FillEmpty()

		steps = append(steps, CascadeStep{
			Matches:    matches,
			Specials:   specials,
			Removed:    removed,
			Movements:  movements,
			Refills:    refills,
			Score:      score,
			Multiplier: mult,
		})
		total += score
	}

	return steps, total
}
