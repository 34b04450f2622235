package core

import "fmt"

// Pos is a board position, 0-indexed from the top-left corner.
type Pos struct {
	Row int
	Col int
}

// P is a shorthand constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Adjacent reports whether q is exactly one step away on one axis
// (Manhattan distance 1). Diagonal neighbors are not adjacent.
func (p Pos) Adjacent(q Pos) bool {
	dr := p.Row - q.Row
	if dr < 0 {
		dr = -dr
	}
	dc := p.Col - q.Col
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// String formats the position as (row,col).
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// dedupPositions returns the unique positions of ps, preserving first-seen
// order.
func dedupPositions(ps []Pos) []Pos {
	seen := make(map[Pos]struct{}, len(ps))
	out := make([]Pos, 0, len(ps))
	for _, p := range ps {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
