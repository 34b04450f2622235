package core

// MatchKind classifies a detected match.
type MatchKind int

const (
	MatchHorizontal MatchKind = iota
	MatchVertical
	MatchShaped // Intersecting horizontal+vertical pair
)

// String returns the match kind name.
func (k MatchKind) String() string {
	switch k {
	case MatchHorizontal:
		return "horizontal"
	case MatchVertical:
		return "vertical"
	case MatchShaped:
		return "shaped"
	default:
		return "unknown"
	}
}

// Shape tags a shaped match as L or T based on combined run length.
type Shape int

const (
	ShapeL Shape = iota // Combined length < 5
	ShapeT              // Combined length >= 5
)

// String returns the shape tag.
func (s Shape) String() string {
	if s == ShapeT {
		return "T"
	}
	return "L"
}

// Match is one detected match. Matches are produced fresh by every scan and
// never persist across cascade steps.
type Match struct {
	Kind      MatchKind
	Tile      Tile  // The basic tile kind being matched
	Positions []Pos // Unique positions; >= 3 for linear, deduplicated union for shaped
	Length    int   // Run length (linear only)

	// Shaped matches only:
	Intersection Pos   // The single point shared by both runs
	Shape        Shape // L or T subtype
}

// FindLinearMatches scans every row left-to-right and every column
// top-to-bottom for maximal runs of >= 3 consecutive equal basic tiles.
// Special tiles never match anything, including themselves. The scan skips
// past each found run, so runs of the same orientation never overlap.
func FindLinearMatches(g *Grid) []Match {
	var matches []Match
	size := g.Size()

	// Horizontal runs
	for row := 0; row < size; row++ {
		col := 0
		for col < size {
			t := g.Get(P(row, col))
			if !t.IsBasic() {
				col++
				continue
			}
			end := col + 1
			for end < size && g.Get(P(row, end)) == t {
				end++
			}
			if length := end - col; length >= 3 {
				positions := make([]Pos, 0, length)
				for c := col; c < end; c++ {
					positions = append(positions, P(row, c))
				}
				matches = append(matches, Match{
					Kind:      MatchHorizontal,
					Tile:      t,
					Positions: positions,
					Length:    length,
				})
			}
			col = end
		}
	}

	// Vertical runs
	for col := 0; col < size; col++ {
		row := 0
		for row < size {
			t := g.Get(P(row, col))
			if !t.IsBasic() {
				row++
				continue
			}
			end := row + 1
			for end < size && g.Get(P(end, col)) == t {
				end++
			}
			if length := end - row; length >= 3 {
				positions := make([]Pos, 0, length)
				for r := row; r < end; r++ {
					positions = append(positions, P(r, col))
				}
				matches = append(matches, Match{
					Kind:      MatchVertical,
					Tile:      t,
					Positions: positions,
					Length:    length,
				})
			}
			row = end
		}
	}

	return matches
}

// FindShapedMatches tests every (horizontal, vertical) pair of equal tile
// value for intersection and emits a shaped match per intersecting pair.
// No deduplication is performed across shaped matches: a tile may appear in
// more than one shaped match in the same step when one run crosses several
// others. That double-counting matches the original game's behavior.
func FindShapedMatches(linear []Match) []Match {
	var shaped []Match
	for _, h := range linear {
		if h.Kind != MatchHorizontal {
			continue
		}
		for _, v := range linear {
			if v.Kind != MatchVertical || v.Tile != h.Tile {
				continue
			}
			cross, ok := intersection(h, v)
			if !ok {
				continue
			}
			shape := ShapeL
			if h.Length+v.Length-1 >= 5 {
				shape = ShapeT
			}
			shaped = append(shaped, Match{
				Kind:         MatchShaped,
				Tile:         h.Tile,
				Positions:    dedupPositions(append(append([]Pos{}, h.Positions...), v.Positions...)),
				Intersection: cross,
				Shape:        shape,
			})
		}
	}
	return shaped
}

// intersection returns the crossing point of a horizontal and a vertical
// run, if the horizontal's row lies within the vertical's span and the
// vertical's column lies within the horizontal's span.
func intersection(h, v Match) (Pos, bool) {
	row := h.Positions[0].Row
	col := v.Positions[0].Col
	if col < h.Positions[0].Col || col > h.Positions[len(h.Positions)-1].Col {
		return Pos{}, false
	}
	if row < v.Positions[0].Row || row > v.Positions[len(v.Positions)-1].Row {
		return Pos{}, false
	}
	return P(row, col), true
}

// FindMatches returns the full match set for one cascade step: every shaped
// match plus every linear match not consumed by a shaped pairing. Runs that
// merged into a shaped match are not scored again as linear.
func FindMatches(g *Grid) []Match {
	linear := FindLinearMatches(g)
	shaped := FindShapedMatches(linear)
	if len(shaped) == 0 {
		return linear
	}

	consumed := make(map[int]bool)
	for i, h := range linear {
		if h.Kind != MatchHorizontal {
			continue
		}
		for j, v := range linear {
			if v.Kind != MatchVertical || v.Tile != h.Tile {
				continue
			}
			if _, ok := intersection(h, v); ok {
				consumed[i] = true
				consumed[j] = true
			}
		}
	}

	matches := shaped
	for i, m := range linear {
		if !consumed[i] {
			matches = append(matches, m)
		}
	}
	return matches
}

// HasMatches reports whether the grid currently contains any linear run.
// Shaped matches always imply linear ones, so linear scanning suffices.
func HasMatches(g *Grid) bool {
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col+2 < size; col++ {
			t := g.Get(P(row, col))
			if t.IsBasic() && g.Get(P(row, col+1)) == t && g.Get(P(row, col+2)) == t {
				return true
			}
		}
	}
	for col := 0; col < size; col++ {
		for row := 0; row+2 < size; row++ {
			t := g.Get(P(row, col))
			if t.IsBasic() && g.Get(P(row+1, col)) == t && g.Get(P(row+2, col)) == t {
				return true
			}
		}
	}
	return false
}
