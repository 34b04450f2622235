package core

import "math/rand"

// maxChainSpecials bounds how many specials one activation may chain
// through. The visited set already prevents re-activating the same cell;
// the cap guards against pathological boards.
const maxChainSpecials = 64

// SpecialSpawn records one special tile to be created from a qualifying
// match in the current cascade step.
type SpecialSpawn struct {
	Type   SpecialType
	Pos    Pos
	Source Match
}

// SpecialForMatch applies the tier rule to a single match, independent of
// other matches in the same step:
//
//	shaped (L/T)        -> bomb at the intersection
//	linear, length 4    -> striped at the middle of the run
//	linear, length >= 5 -> rainbow at the middle of the run
//	linear, length 3    -> nothing
func SpecialForMatch(m Match) (SpecialSpawn, bool) {
	switch {
	case m.Kind == MatchShaped:
		return SpecialSpawn{Type: SpecialBomb, Pos: m.Intersection, Source: m}, true
	case m.Length == 4:
		return SpecialSpawn{Type: SpecialStriped, Pos: m.Positions[m.Length/2], Source: m}, true
	case m.Length >= 5:
		return SpecialSpawn{Type: SpecialRainbow, Pos: m.Positions[m.Length/2], Source: m}, true
	default:
		return SpecialSpawn{}, false
	}
}

// SpecialsFor evaluates the tier rule over every match of a step.
func SpecialsFor(matches []Match) []SpecialSpawn {
	var spawns []SpecialSpawn
	for _, m := range matches {
		if sp, ok := SpecialForMatch(m); ok {
			spawns = append(spawns, sp)
		}
	}
	return spawns
}

// Activate expands the activation of the special at origin into the full
// affected-position set, including chain reactions: any special inside the
// affected area activates in turn and its area is unioned in. Expansion
// uses an explicit worklist with a visited set (plus a hard cap), so
// mutually-covering specials cannot recurse forever.
//
// Random choices (striped row-vs-column, rainbow target kind) are made at
// activation time from the supplied RNG. The grid is read, never mutated;
// removal is the caller's job.
func Activate(g *Grid, origin Pos, typ SpecialType, rng *rand.Rand) []Pos {
	type pending struct {
		pos Pos
		typ SpecialType
	}

	visited := map[Pos]struct{}{origin: {}}
	work := []pending{{pos: origin, typ: typ}}
	var affected []Pos
	activations := 0

	for len(work) > 0 && activations < maxChainSpecials {
		cur := work[0]
		work = work[1:]
		activations++

		for _, p := range effectArea(g, cur.pos, cur.typ, rng) {
			affected = append(affected, p)
			if _, seen := visited[p]; seen {
				continue
			}
			visited[p] = struct{}{}
			if st, ok := SpecialTypeOf(g.Get(p)); ok {
				work = append(work, pending{pos: p, typ: st})
			}
		}
	}

	return dedupPositions(affected)
}

// effectArea computes the direct (non-chained) area of one activation.
func effectArea(g *Grid, origin Pos, typ SpecialType, rng *rand.Rand) []Pos {
	switch typ {
	case SpecialStriped:
		return stripedArea(g, origin, rng)
	case SpecialBomb:
		return bombArea(g, origin)
	case SpecialRainbow:
		return rainbowArea(g, origin, rng)
	default:
		return []Pos{origin}
	}
}

// stripedArea clears one full row or column through origin, chosen 50/50 at
// activation time.
func stripedArea(g *Grid, origin Pos, rng *rand.Rand) []Pos {
	area := make([]Pos, 0, g.Size())
	if rng.Intn(2) == 0 {
		for col := 0; col < g.Size(); col++ {
			area = append(area, P(origin.Row, col))
		}
	} else {
		for row := 0; row < g.Size(); row++ {
			area = append(area, P(row, origin.Col))
		}
	}
	return area
}

// bombArea clears the 3x3 neighborhood centered on origin, clipped to the
// board.
func bombArea(g *Grid, origin Pos) []Pos {
	area := make([]Pos, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			p := P(origin.Row+dr, origin.Col+dc)
			if g.InBounds(p) {
				area = append(area, p)
			}
		}
	}
	return area
}

// rainbowArea picks one basic kind currently present on the board uniformly
// at random and clears every cell of that kind, plus the rainbow itself.
func rainbowArea(g *Grid, origin Pos, rng *rand.Rand) []Pos {
	present := make(map[Tile][]Pos)
	var order []Tile
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			p := P(row, col)
			t := g.Get(p)
			if !t.IsBasic() {
				continue
			}
			if _, ok := present[t]; !ok {
				order = append(order, t)
			}
			present[t] = append(present[t], p)
		}
	}
	if len(order) == 0 {
		return []Pos{origin}
	}
	target := order[rng.Intn(len(order))]
	return append([]Pos{origin}, present[target]...)
}
