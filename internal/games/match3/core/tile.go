// Package core implements the match-3 simulation: board state, match
// detection, special tiles, scoring, and cascade resolution. It is pure and
// deterministic given a seeded RNG, with no platform dependencies.
package core

import "fmt"

// Tile is the value of one board cell. Zero is the empty sentinel (used
// transiently during cascade resolution), positive values are basic tile
// kinds, and negative values are special tiles.
type Tile int8

// TileEmpty marks a cell with no tile. Boards never expose empty cells
// outside an in-progress cascade step.
const TileEmpty Tile = 0

// Special tile values.
const (
	TileStriped Tile = -1 // Clears a full row or column on activation
	TileBomb    Tile = -2 // Clears the surrounding 3x3 area on activation
	TileRainbow Tile = -3 // Clears every tile of one basic kind on activation
)

// BasicTile returns the tile value for basic kind k (0-indexed).
func BasicTile(k int) Tile {
	return Tile(k + 1)
}

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t == TileEmpty
}

// IsBasic reports whether the tile is a basic (matchable) kind.
func (t Tile) IsBasic() bool {
	return t > 0
}

// IsSpecial reports whether the tile is a special tile.
// Specials never participate in adjacency matching.
func (t Tile) IsSpecial() bool {
	return t < 0
}

// BasicKind returns the 0-indexed basic kind, or -1 for empty/special tiles.
func (t Tile) BasicKind() int {
	if !t.IsBasic() {
		return -1
	}
	return int(t) - 1
}

// String returns a short identifier, mainly for test failure messages.
func (t Tile) String() string {
	switch {
	case t == TileEmpty:
		return "empty"
	case t == TileStriped:
		return "striped"
	case t == TileBomb:
		return "bomb"
	case t == TileRainbow:
		return "rainbow"
	case t.IsBasic():
		return fmt.Sprintf("kind%d", t.BasicKind())
	default:
		return fmt.Sprintf("tile(%d)", int8(t))
	}
}

// SpecialType identifies a kind of special tile.
type SpecialType int

const (
	SpecialStriped SpecialType = iota
	SpecialBomb
	SpecialRainbow
)

// Tile returns the board value for this special type.
func (s SpecialType) Tile() Tile {
	switch s {
	case SpecialStriped:
		return TileStriped
	case SpecialBomb:
		return TileBomb
	case SpecialRainbow:
		return TileRainbow
	default:
		return TileEmpty
	}
}

// String returns the special type name.
func (s SpecialType) String() string {
	switch s {
	case SpecialStriped:
		return "striped"
	case SpecialBomb:
		return "bomb"
	case SpecialRainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

// SpecialTypeOf returns the special type of a tile value, if it is one.
func SpecialTypeOf(t Tile) (SpecialType, bool) {
	switch t {
	case TileStriped:
		return SpecialStriped, true
	case TileBomb:
		return SpecialBomb, true
	case TileRainbow:
		return SpecialRainbow, true
	default:
		return 0, false
	}
}

// PowerUp identifies a player power-up action. Power-ups are distinct entry
// points from swaps: they never consume the move budget.
type PowerUp int

const (
	PowerHammer  PowerUp = iota // Remove a single targeted tile
	PowerShuffle                // Randomly permute all board tiles
	PowerUndo                   // Restore the most recent move snapshot
)

// String returns the power-up name.
func (p PowerUp) String() string {
	switch p {
	case PowerHammer:
		return "hammer"
	case PowerShuffle:
		return "shuffle"
	case PowerUndo:
		return "undo"
	default:
		return "unknown"
	}
}
