package core

import "math/rand"

// RepairPasses bounds the init/shuffle repair loop that replaces tiles
// participating in an immediate 3-run. The loop is best-effort: if the cap
// is hit, a residual match may survive on the freshly generated board. That
// is a documented limitation, not an error.
const RepairPasses = 100

// Grid owns the square board of tile values. All mutation is synchronous
// and single-writer; callers embedding a Grid in a concurrent host must
// serialize access externally.
type Grid struct {
	size  int
	kinds int
	cells []Tile // Row-major: index = row*size + col
	rng   *rand.Rand
}

// Movement records one tile displacement performed by gravity,
// used by callers for fall animation.
type Movement struct {
	From Pos
	To   Pos
	Tile Tile
}

// Refill records one cell filled with a fresh random tile.
type Refill struct {
	Pos  Pos
	Tile Tile
}

// SwapMove is a candidate swap of two adjacent positions.
type SwapMove struct {
	A Pos
	B Pos
}

// NewGrid creates a size×size board filled with random basic tiles of the
// given number of kinds, then repairs accidental starting matches (bounded
// by RepairPasses).
func NewGrid(size, kinds int, rng *rand.Rand) *Grid {
	g := &Grid{
		size:  size,
		kinds: kinds,
		cells: make([]Tile, size*size),
		rng:   rng,
	}
	for i := range g.cells {
		g.cells[i] = g.randomBasic()
	}
	g.repair()
	return g
}

// Size returns the board edge length.
func (g *Grid) Size() int {
	return g.size
}

// Kinds returns the number of distinct basic tile kinds in play.
func (g *Grid) Kinds() int {
	return g.kinds
}

func (g *Grid) index(p Pos) int {
	return p.Row*g.size + p.Col
}

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// Get returns the tile at p, or TileEmpty if p is out of bounds.
// Bounds violations are a defined "no tile" result, not an error.
func (g *Grid) Get(p Pos) Tile {
	if !g.InBounds(p) {
		return TileEmpty
	}
	return g.cells[g.index(p)]
}

// Set places a tile at p. Out-of-bounds positions are silently ignored.
func (g *Grid) Set(p Pos, t Tile) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = t
	}
}

// Swap exchanges the tiles at a and b. Returns false without mutating if
// either position is out of bounds. Swap is self-inverse, which makes it
// usable for speculative "would this swap match" checks.
func (g *Grid) Swap(a, b Pos) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	i, j := g.index(a), g.index(b)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	return true
}

// randomBasic returns a uniformly random basic tile.
func (g *Grid) randomBasic() Tile {
	return BasicTile(g.rng.Intn(g.kinds))
}

// inRun reports whether the tile at p participates in an immediate
// horizontal or vertical 3-run of equal basic tiles.
func (g *Grid) inRun(p Pos) bool {
	t := g.Get(p)
	if !t.IsBasic() {
		return false
	}
	// Horizontal: check the three windows containing p
	for off := -2; off <= 0; off++ {
		if g.Get(P(p.Row, p.Col+off)) == t &&
			g.Get(P(p.Row, p.Col+off+1)) == t &&
			g.Get(P(p.Row, p.Col+off+2)) == t {
			return true
		}
	}
	// Vertical
	for off := -2; off <= 0; off++ {
		if g.Get(P(p.Row+off, p.Col)) == t &&
			g.Get(P(p.Row+off+1, p.Col)) == t &&
			g.Get(P(p.Row+off+2, p.Col)) == t {
			return true
		}
	}
	return false
}

// repair replaces tiles participating in 3-runs until none remain or
// RepairPasses is exhausted. Returns true if the board ended clean.
func (g *Grid) repair() bool {
	for pass := 0; pass < RepairPasses; pass++ {
		dirty := false
		for row := 0; row < g.size; row++ {
			for col := 0; col < g.size; col++ {
				p := P(row, col)
				if g.inRun(p) {
					g.Set(p, g.randomBasic())
					dirty = true
				}
			}
		}
		if !dirty {
			return true
		}
	}
	return false
}

// ApplyGravity compacts each column's tiles downward, preserving their
// relative order and leaving vacated top cells empty. Returns the movements
// performed.
func (g *Grid) ApplyGravity() []Movement {
	var moves []Movement
	for col := 0; col < g.size; col++ {
		write := g.size - 1 // Lowest cell still to be filled
		for row := g.size - 1; row >= 0; row-- {
			t := g.Get(P(row, col))
			if t.IsEmpty() {
				continue
			}
			if row != write {
				g.Set(P(write, col), t)
				g.Set(P(row, col), TileEmpty)
				moves = append(moves, Movement{From: P(row, col), To: P(write, col), Tile: t})
			}
			write--
		}
	}
	return moves
}

// FillEmpty replaces every empty cell with a fresh random basic tile and
// returns the refilled cells in scan order.
func (g *Grid) FillEmpty() []Refill {
	var fills []Refill
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			p := P(row, col)
			if g.Get(p).IsEmpty() {
				t := g.randomBasic()
				g.Set(p, t)
				fills = append(fills, Refill{Pos: p, Tile: t})
			}
		}
	}
	return fills
}

// Remove empties every given position. Idempotent; out-of-bounds positions
// are ignored.
func (g *Grid) Remove(positions []Pos) {
	for _, p := range positions {
		g.Set(p, TileEmpty)
	}
}

// CreateSpecial overwrites p with the given special tile. It does not check
// what currently occupies p; that is the caller's responsibility.
func (g *Grid) CreateSpecial(p Pos, st SpecialType) {
	g.Set(p, st.Tile())
}

// Shuffle randomly permutes all current tile values across the board
// (Fisher-Yates), then repairs any matches the permutation created.
func (g *Grid) Shuffle() {
	for i := len(g.cells) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	}
	g.repair()
}

// PossibleMoves enumerates every adjacent swap that would produce at least
// one match. For each position only the right and down neighbors are
// tested; the left/up cases are covered from the other side. Each candidate
// swap is applied speculatively and reverted.
func (g *Grid) PossibleMoves() []SwapMove {
	var moves []SwapMove
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			a := P(row, col)
			for _, b := range []Pos{P(row, col+1), P(row+1, col)} {
				if !g.InBounds(b) {
					continue
				}
				g.Swap(a, b)
				if HasMatches(g) {
					moves = append(moves, SwapMove{A: a, B: b})
				}
				g.Swap(a, b)
			}
		}
	}
	return moves
}

// Clone returns a deep copy of the grid sharing the RNG with the original.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		size:  g.size,
		kinds: g.kinds,
		cells: cells,
		rng:   g.rng,
	}
}

// State returns a defensive copy of the cell array, safe to retain as an
// undo snapshot without aliasing live storage.
func (g *Grid) State() []Tile {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// SetState restores a previously captured cell array. The input is copied,
// so the caller's snapshot stays independent. Returns false if the length
// does not match the board.
func (g *Grid) SetState(cells []Tile) bool {
	if len(cells) != len(g.cells) {
		return false
	}
	copy(g.cells, cells)
	return true
}

// Equal reports whether two grids have identical dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}
