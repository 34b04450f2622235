package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Level    int // 1-indexed for display
	Score    int // Banked + current session score
	Moves    int // Moves left (0 when the mode has no budget)
	Board    []core.Tile
	Cursor   core.Pos
	Hammers  int
	Shuffles int
	Undos    int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	var board []core.Tile
	moves := 0
	score := g.totalScore
	if g.session != nil {
		board = g.session.Grid().State()
		moves = g.session.MovesLeft()
		score += g.session.Score()
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Level:    g.Level(),
		Score:    score,
		Moves:    moves,
		Board:    board,
		Cursor:   g.cursor,
		Hammers:  g.hammers,
		Shuffles: g.shuffles,
		Undos:    g.undos,
		State:    state,
	}
}
