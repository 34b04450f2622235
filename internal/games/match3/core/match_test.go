package core

import "testing"

func TestFindLinearMatchesHorizontal(t *testing.T) {
	g := gridFrom(t,
		"aaacd",
		"abcdc",
		"bcdcb",
		"bcbad",
		"cdacb",
	)

	matches := FindLinearMatches(g)

	if len(matches) != 1 {
		t.Fatalf("Got %d matches, expected 1: %+v", len(matches), matches)
	}
	m := matches[0]
	if m.Kind != MatchHorizontal {
		t.Errorf("Kind = %v, expected horizontal", m.Kind)
	}
	if m.Tile != BasicTile(0) {
		t.Errorf("Tile = %v, expected kind0", m.Tile)
	}
	if m.Length != 3 || len(m.Positions) != 3 {
		t.Errorf("Length = %d, positions = %d, expected 3/3", m.Length, len(m.Positions))
	}
	want := []Pos{P(0, 0), P(0, 1), P(0, 2)}
	for i, p := range want {
		if m.Positions[i] != p {
			t.Errorf("Positions[%d] = %v, expected %v", i, m.Positions[i], p)
		}
	}
}

func TestFindLinearMatchesMaximalRun(t *testing.T) {
	// A 5-run must come back as a single run, not overlapping 3-runs.
	g := gridFrom(t,
		"aaaaa",
		"bcdcb",
		"cdbdc",
		"bcdcb",
		"cdbdc",
	)

	matches := FindLinearMatches(g)

	if len(matches) != 1 {
		t.Fatalf("Got %d matches, expected one maximal run: %+v", len(matches), matches)
	}
	if matches[0].Length != 5 {
		t.Errorf("Length = %d, expected 5", matches[0].Length)
	}
}

func TestRunsOfSameOrientationNeverOverlap(t *testing.T) {
	g := gridFrom(t,
		"aaabbb",
		"cdcdcd",
		"dcdcdc",
		"cdcdcd",
		"dcdcdc",
		"cdcdcd",
	)

	matches := FindLinearMatches(g)

	if len(matches) != 2 {
		t.Fatalf("Got %d matches, expected 2: %+v", len(matches), matches)
	}
	seen := make(map[Pos]bool)
	for _, m := range matches {
		if m.Length < 3 {
			t.Errorf("Run of length %d < 3 reported", m.Length)
		}
		for _, p := range m.Positions {
			if seen[p] {
				t.Errorf("Position %v appears in two runs of the same orientation", p)
			}
			seen[p] = true
		}
	}
}

func TestSpecialTilesNeverMatch(t *testing.T) {
	// Striped tiles splitting and flanking runs: S never matches anything,
	// including other specials.
	g := gridFrom(t,
		"aaSaa",
		"SSbSS",
		"cdcdc",
		"dcdcd",
		"cdcdc",
	)

	if matches := FindLinearMatches(g); len(matches) != 0 {
		t.Errorf("Got %d matches, expected none when specials split runs: %+v", len(matches), matches)
	}
}

func TestFindShapedMatchesCorner(t *testing.T) {
	// 3-run horizontal and 3-run vertical sharing the corner (0,0).
	g := gridFrom(t,
		"aaacd",
		"abcdc",
		"acdcb",
		"bcbad",
		"cdacb",
	)

	linear := FindLinearMatches(g)
	if len(linear) != 2 {
		t.Fatalf("Got %d linear matches, expected 2: %+v", len(linear), linear)
	}

	shaped := FindShapedMatches(linear)
	if len(shaped) != 1 {
		t.Fatalf("Got %d shaped matches, expected 1: %+v", len(shaped), shaped)
	}
	m := shaped[0]
	if m.Kind != MatchShaped {
		t.Errorf("Kind = %v, expected shaped", m.Kind)
	}
	if m.Intersection != P(0, 0) {
		t.Errorf("Intersection = %v, expected (0,0)", m.Intersection)
	}
	// Union of two 3-runs sharing one tile is 5 unique positions.
	if len(m.Positions) != 5 {
		t.Errorf("Union has %d positions, expected 5", len(m.Positions))
	}
	// Combined length 3+3-1 = 5, which the tier formula tags as T.
	if m.Shape != ShapeT {
		t.Errorf("Shape = %v, expected T for combined length 5", m.Shape)
	}
}

func TestShapedMatchRequiresSameTile(t *testing.T) {
	// A horizontal a-run and a vertical b-run never pair up into a shaped
	// match, whatever their geometry.
	g := gridFrom(t,
		"baaac",
		"bdcdc",
		"bcdcd",
		"cdbad",
		"dcacb",
	)

	linear := FindLinearMatches(g)
	if len(linear) != 2 {
		t.Fatalf("Got %d linear matches, expected 2: %+v", len(linear), linear)
	}
	if shaped := FindShapedMatches(linear); len(shaped) != 0 {
		t.Errorf("Got shaped matches across different tiles: %+v", shaped)
	}
}

func TestShapedMatchesNotDeduplicated(t *testing.T) {
	// One horizontal run crossing two vertical runs emits two shaped
	// matches; row 0's tiles appear in both (reproducing the original
	// game's double-counting).
	g := gridFrom(t,
		"aaadc",
		"ababd",
		"acacb",
		"bdbdc",
		"cbdad",
	)

	linear := FindLinearMatches(g)
	shaped := FindShapedMatches(linear)

	if len(shaped) != 2 {
		t.Fatalf("Got %d shaped matches, expected 2: %+v", len(shaped), shaped)
	}

	full := FindMatches(g)
	if len(full) != 2 {
		t.Errorf("FindMatches returned %d matches, expected only the 2 shaped (linear runs consumed)", len(full))
	}

	// Both shaped matches contain the shared horizontal run.
	for i, m := range shaped {
		set := posSet(m.Positions)
		for _, p := range []Pos{P(0, 0), P(0, 1), P(0, 2)} {
			if _, ok := set[p]; !ok {
				t.Errorf("Shaped match %d missing shared position %v", i, p)
			}
		}
	}
}

func TestFindMatchesKeepsIndependentLinear(t *testing.T) {
	// A shaped pair plus an unrelated horizontal run of a different kind.
	g := gridFrom(t,
		"aaacd",
		"abcdc",
		"acdcb",
		"bcddd",
		"cdacb",
	)

	matches := FindMatches(g)

	var shapedCount, linearCount int
	for _, m := range matches {
		if m.Kind == MatchShaped {
			shapedCount++
		} else {
			linearCount++
		}
	}
	if shapedCount != 1 || linearCount != 1 {
		t.Errorf("Got %d shaped / %d linear, expected 1/1: %+v", shapedCount, linearCount, matches)
	}
}

func TestHasMatches(t *testing.T) {
	clean := gridFrom(t,
		"abab",
		"baba",
		"abab",
		"baba",
	)
	if HasMatches(clean) {
		t.Error("Clean board reported matches")
	}

	dirty := gridFrom(t,
		"abab",
		"baba",
		"aaab",
		"baba",
	)
	if !HasMatches(dirty) {
		t.Error("Board with a 3-run reported no matches")
	}
}
