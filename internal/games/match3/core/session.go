package core

import (
	"errors"
	"math/rand"
)

// HistoryLimit caps the undo history. The sixth snapshot evicts the oldest.
const HistoryLimit = 5

// Session errors. All are recoverable at the caller's level: the engine
// state is unchanged when one is returned.
var (
	ErrNotAdjacent   = errors.New("match3: positions are not adjacent")
	ErrNoMovesLeft   = errors.New("match3: move budget exhausted")
	ErrInvalidTarget = errors.New("match3: target position is out of bounds")
	ErrNothingToUndo = errors.New("match3: no snapshot to undo")
)

// Params are the externally supplied level parameters. The engine only
// compares them against session counters; difficulty decisions live with
// the caller.
type Params struct {
	BoardSize  int
	TileKinds  int
	MoveBudget int // 0 means unlimited (endless play)
	GoalScore  int // 0 means no goal
	TimeLimit  int // Seconds; 0 means untimed. Enforced by the caller, not the engine.
	MaxCombo   int // 0 means DefaultMaxCombo
}

// DefaultParams returns the standard 8x8, 6-kind board with a modest goal.
func DefaultParams() Params {
	return Params{
		BoardSize:  8,
		TileKinds:  6,
		MoveBudget: 30,
		GoalScore:  5000,
		MaxCombo:   DefaultMaxCombo,
	}
}

// snapshot is one undo history entry: a deep copy of the grid plus the
// scalar session fields.
type snapshot struct {
	cells      []Tile
	score      int
	movesLeft  int
	comboSteps int
}

// PowerUpResult reports what a power-up did.
type PowerUpResult struct {
	Kind       PowerUp
	Steps      []CascadeStep // Hammer only: cascades triggered by the removal
	ScoreDelta int
}

// Session owns one game's mutable state: the grid plus the scalar counters
// (score, moves, combo) and the undo history. All session state is explicit
// here; there are no package-level variables. A session is single-threaded:
// every operation runs to completion before the next is honored.
type Session struct {
	grid    *Grid
	rng     *rand.Rand
	combo   Combo
	params  Params
	score   int
	moves   int
	history []snapshot
}

// NewSession creates a session with a freshly initialized board.
func NewSession(p Params, seed int64) *Session {
	if p.BoardSize <= 0 {
		p.BoardSize = 8
	}
	if p.TileKinds <= 0 {
		p.TileKinds = 6
	}
	rng := rand.New(rand.NewSource(seed))
	return &Session{
		grid:   NewGrid(p.BoardSize, p.TileKinds, rng),
		rng:    rng,
		combo:  NewCombo(p.MaxCombo),
		params: p,
		moves:  p.MoveBudget,
	}
}

// Grid exposes the live board for rendering. Callers must not mutate it.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// MovesLeft returns the remaining move budget (0 if Params.MoveBudget was 0).
func (s *Session) MovesLeft() int {
	return s.moves
}

// Multiplier returns the current combo multiplier.
func (s *Session) Multiplier() int {
	return s.combo.Multiplier()
}

// Params returns the level parameters the session was created with.
func (s *Session) Params() Params {
	return s.params
}

// TrySwap validates and performs a swap of two adjacent positions.
//
// Rejections before any mutation: non-adjacent positions (ErrNotAdjacent)
// and an exhausted move budget (ErrNoMovesLeft). A swap that produces no
// match is reverted and reported with Accepted=false and a nil error; the
// budget is unchanged. An accepted swap resolves the full cascade, commits
// the score, decrements the budget by exactly one regardless of cascade
// depth, and pushes an undo snapshot of the pre-move state.
func (s *Session) TrySwap(a, b Pos) (SwapResult, error) {
	if !a.Adjacent(b) {
		return SwapResult{FinalCombo: 1}, ErrNotAdjacent
	}
	if s.params.MoveBudget > 0 && s.moves <= 0 {
		return SwapResult{FinalCombo: 1}, ErrNoMovesLeft
	}

	before := s.capture()
	result := trySwapGrid(s.grid, &s.combo, s.rng, a, b)
	if !result.Accepted {
		return result, nil
	}

	s.pushHistory(before)
	s.score += result.TotalScore
	if s.params.MoveBudget > 0 {
		s.moves--
	}
	return result, nil
}

// ApplyPowerUp performs a power-up action. Power-ups never consume the move
// budget.
//
// Hammer removes the targeted tile (activating it first if it is a special)
// and runs the gravity/refill/rescan machinery, cascading any matches the
// refill creates. Shuffle permutes the board and repairs accidental
// matches; it never cascades. Undo restores the newest snapshot and
// performs no resolution.
func (s *Session) ApplyPowerUp(kind PowerUp, target Pos) (PowerUpResult, error) {
	switch kind {
	case PowerHammer:
		return s.hammer(target)
	case PowerShuffle:
		s.pushHistory(s.capture())
		s.grid.Shuffle()
		return PowerUpResult{Kind: PowerShuffle}, nil
	case PowerUndo:
		return s.undo()
	default:
		return PowerUpResult{}, ErrInvalidTarget
	}
}

func (s *Session) hammer(target Pos) (PowerUpResult, error) {
	if !s.grid.InBounds(target) {
		return PowerUpResult{}, ErrInvalidTarget
	}

	before := s.capture()

	removed := []Pos{target}
	if st, ok := SpecialTypeOf(s.grid.Get(target)); ok {
		removed = Activate(s.grid, target, st, s.rng)
	}
	s.grid.Remove(removed)
	movements := s.grid.ApplyGravity()
	refills := s.grid.FillEmpty()

	steps := []CascadeStep{{
		Removed:    removed,
		Movements:  movements,
		Refills:    refills,
		Multiplier: 1,
	}}
	cascadeSteps, score := resolveCascades(s.grid, &s.combo, s.rng)
	steps = append(steps, cascadeSteps...)

	s.pushHistory(before)
	s.score += score
	return PowerUpResult{Kind: PowerHammer, Steps: steps, ScoreDelta: score}, nil
}

func (s *Session) undo() (PowerUpResult, error) {
	if len(s.history) == 0 {
		return PowerUpResult{}, ErrNothingToUndo
	}
	snap := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	delta := snap.score - s.score
	s.grid.SetState(snap.cells)
	s.score = snap.score
	s.moves = snap.movesLeft
	s.combo.steps = snap.comboSteps
	return PowerUpResult{Kind: PowerUndo, ScoreDelta: delta}, nil
}

// capture deep-copies the current session state.
func (s *Session) capture() snapshot {
	return snapshot{
		cells:      s.grid.State(),
		score:      s.score,
		movesLeft:  s.moves,
		comboSteps: s.combo.steps,
	}
}

// pushHistory appends a snapshot, evicting the oldest beyond HistoryLimit.
func (s *Session) pushHistory(snap snapshot) {
	s.history = append(s.history, snap)
	if len(s.history) > HistoryLimit {
		s.history = s.history[len(s.history)-HistoryLimit:]
	}
}

// HistoryLen returns the number of undo snapshots currently retained.
func (s *Session) HistoryLen() int {
	return len(s.history)
}

// PossibleMoves enumerates every adjacent swap that would match.
func (s *Session) PossibleMoves() []SwapMove {
	return s.grid.PossibleMoves()
}

// Hint returns the move that clears the most tiles on its first step, or
// false when no move exists. Ties keep the first candidate in scan order.
func (s *Session) Hint() (SwapMove, bool) {
	moves := s.grid.PossibleMoves()
	if len(moves) == 0 {
		return SwapMove{}, false
	}

	best := moves[0]
	bestCount := -1
	for _, mv := range moves {
		s.grid.Swap(mv.A, mv.B)
		count := 0
		seen := make(map[Pos]struct{})
		for _, m := range FindMatches(s.grid) {
			for _, p := range m.Positions {
				if _, ok := seen[p]; !ok {
					seen[p] = struct{}{}
					count++
				}
			}
		}
		s.grid.Swap(mv.A, mv.B)
		if count > bestCount {
			best = mv
			bestCount = count
		}
	}
	return best, true
}

// NoMovesLeft reports whether the board has zero valid adjacent swaps.
// Surfaced to the caller as a game-over condition, not an engine fault.
func (s *Session) NoMovesLeft() bool {
	return len(s.grid.PossibleMoves()) == 0
}

// Won reports whether the goal score has been reached (false if no goal).
func (s *Session) Won() bool {
	return s.params.GoalScore > 0 && s.score >= s.params.GoalScore
}

// Exhausted reports whether play cannot continue: the move budget ran out
// or no valid swap remains.
func (s *Session) Exhausted() bool {
	if s.params.MoveBudget > 0 && s.moves <= 0 {
		return true
	}
	return s.NoMovesLeft()
}
