package core

import (
	"math/rand"
	"testing"
)

// gridFrom builds a grid with exact contents from row strings. Letters
// 'a'..'f' are basic kinds 0..5, 'S'/'B'/'R' are striped/bomb/rainbow, and
// '.' is empty.
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	size := len(rows)
	g := NewGrid(size, 6, rand.New(rand.NewSource(1)))
	for r, row := range rows {
		if len(row) != size {
			t.Fatalf("row %d has %d cells, board is %d wide", r, len(row), size)
		}
		for c, ch := range row {
			var tile Tile
			switch ch {
			case '.':
				tile = TileEmpty
			case 'S':
				tile = TileStriped
			case 'B':
				tile = TileBomb
			case 'R':
				tile = TileRainbow
			default:
				tile = BasicTile(int(ch - 'a'))
			}
			g.Set(P(r, c), tile)
		}
	}
	return g
}

// sessionWith builds a session and overwrites its board with exact contents.
func sessionWith(t *testing.T, p Params, rows ...string) *Session {
	t.Helper()
	s := NewSession(p, 1)
	g := gridFrom(t, rows...)
	if !s.grid.SetState(g.State()) {
		t.Fatalf("board size %d does not match session size %d", g.Size(), s.grid.Size())
	}
	return s
}

// posSet converts a position list to a set for membership checks.
func posSet(ps []Pos) map[Pos]struct{} {
	set := make(map[Pos]struct{}, len(ps))
	for _, p := range ps {
		set[p] = struct{}{}
	}
	return set
}

// countEmpty returns the number of empty cells on the board.
func countEmpty(g *Grid) int {
	n := 0
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			if g.Get(P(row, col)).IsEmpty() {
				n++
			}
		}
	}
	return n
}
