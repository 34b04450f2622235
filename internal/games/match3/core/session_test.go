package core

import (
	"errors"
	"testing"
)

func smallParams() Params {
	return Params{BoardSize: 5, TileKinds: 6, MoveBudget: 10, GoalScore: 0, MaxCombo: 8}
}

// Swapping (0,1) and (1,1) lines up a-a-a on row 0 and nothing else, so the
// first cascade step is exactly one length-3 match worth 30 points.
func swapTestSession(t *testing.T) *Session {
	t.Helper()
	return sessionWith(t, smallParams(),
		"abadc",
		"cadbd",
		"bcacb",
		"dabdc",
		"cbdad",
	)
}

func TestTrySwapAccepted(t *testing.T) {
	s := swapTestSession(t)

	result, err := s.TrySwap(P(0, 1), P(1, 1))
	if err != nil {
		t.Fatalf("TrySwap returned error: %v", err)
	}
	if !result.Accepted {
		t.Fatal("Swap creating a match should be accepted")
	}
	if len(result.Steps) < 1 {
		t.Fatal("Accepted swap should produce at least one cascade step")
	}

	first := result.Steps[0]
	if len(first.Matches) != 1 {
		t.Fatalf("First step has %d matches, expected 1: %+v", len(first.Matches), first.Matches)
	}
	if first.Score != 30 {
		t.Errorf("First step score = %d, expected 3×10×1 = 30", first.Score)
	}
	if first.Multiplier != 1 {
		t.Errorf("First step multiplier = %d, expected 1", first.Multiplier)
	}

	// Budget decrements exactly once regardless of cascade depth.
	if s.MovesLeft() != 9 {
		t.Errorf("MovesLeft = %d, expected 9", s.MovesLeft())
	}

	// Total is committed to the session.
	sum := 0
	for _, step := range result.Steps {
		sum += step.Score
	}
	if result.TotalScore != sum {
		t.Errorf("TotalScore = %d, steps sum to %d", result.TotalScore, sum)
	}
	if s.Score() != result.TotalScore {
		t.Errorf("Session score = %d, expected %d", s.Score(), result.TotalScore)
	}

	// The terminal step resets the combo.
	if result.FinalCombo != 1 {
		t.Errorf("FinalCombo = %d, expected 1", result.FinalCombo)
	}
}

func TestCascadeSettlesMatchFree(t *testing.T) {
	s := swapTestSession(t)

	if _, err := s.TrySwap(P(0, 1), P(1, 1)); err != nil {
		t.Fatalf("TrySwap returned error: %v", err)
	}

	if HasMatches(s.Grid()) {
		t.Error("Board still has matches after cascade settled")
	}
	if countEmpty(s.Grid()) != 0 {
		t.Error("Board has empty cells after cascade settled")
	}
}

func TestTrySwapRejectedNonAdjacent(t *testing.T) {
	s := swapTestSession(t)

	_, err := s.TrySwap(P(0, 0), P(2, 0))
	if !errors.Is(err, ErrNotAdjacent) {
		t.Errorf("err = %v, expected ErrNotAdjacent", err)
	}
	_, err = s.TrySwap(P(0, 0), P(1, 1))
	if !errors.Is(err, ErrNotAdjacent) {
		t.Errorf("diagonal swap err = %v, expected ErrNotAdjacent", err)
	}
	if s.MovesLeft() != 10 || s.Score() != 0 {
		t.Error("Rejected swap must not change session state")
	}
}

func TestTrySwapNoMatchReverts(t *testing.T) {
	s := swapTestSession(t)
	before := s.Grid().Clone()

	// Swapping (4,0) and (4,1) produces no match on this board.
	result, err := s.TrySwap(P(4, 0), P(4, 1))
	if err != nil {
		t.Fatalf("TrySwap returned error: %v", err)
	}
	if result.Accepted {
		t.Fatal("Matchless swap should not be accepted")
	}
	if !s.Grid().Equal(before) {
		t.Error("Matchless swap must revert the board")
	}
	if s.MovesLeft() != 10 {
		t.Errorf("MovesLeft = %d, expected unchanged 10", s.MovesLeft())
	}
	if s.HistoryLen() != 0 {
		t.Error("Matchless swap must not push an undo snapshot")
	}
}

func TestTrySwapZeroBudget(t *testing.T) {
	p := smallParams()
	p.MoveBudget = 1
	s := sessionWith(t, p,
		"abadc",
		"cadbd",
		"bcacb",
		"dabdc",
		"cbdad",
	)

	if _, err := s.TrySwap(P(0, 1), P(1, 1)); err != nil {
		t.Fatalf("First swap failed: %v", err)
	}
	if s.MovesLeft() != 0 {
		t.Fatalf("MovesLeft = %d, expected 0", s.MovesLeft())
	}

	_, err := s.TrySwap(P(2, 0), P(2, 1))
	if !errors.Is(err, ErrNoMovesLeft) {
		t.Errorf("err = %v, expected ErrNoMovesLeft", err)
	}
}

func TestSwapActivatesSpecial(t *testing.T) {
	s := sessionWith(t, smallParams(),
		"Sbadc",
		"cadbd",
		"bcacb",
		"dabdc",
		"cbdad",
	)

	result, err := s.TrySwap(P(0, 0), P(0, 1))
	if err != nil {
		t.Fatalf("TrySwap returned error: %v", err)
	}
	if !result.Accepted {
		t.Fatal("Swap involving a special tile should always be accepted")
	}

	// The striped activates at its post-swap position (0,1) and clears a
	// full line through it.
	first := result.Steps[0]
	if len(first.Removed) < s.Grid().Size() {
		t.Errorf("Activation removed %d cells, expected at least %d", len(first.Removed), s.Grid().Size())
	}
	set := posSet(first.Removed)
	if _, ok := set[P(0, 1)]; !ok {
		t.Error("Activation should remove the special's post-swap position")
	}
	if s.MovesLeft() != 9 {
		t.Errorf("MovesLeft = %d, expected 9", s.MovesLeft())
	}
	if countEmpty(s.Grid()) != 0 {
		t.Error("Board has empty cells after activation settled")
	}
}

func TestUndoRestoresExactState(t *testing.T) {
	s := swapTestSession(t)
	cells := s.Grid().State()
	score, moves := s.Score(), s.MovesLeft()

	if _, err := s.TrySwap(P(0, 1), P(1, 1)); err != nil {
		t.Fatalf("TrySwap failed: %v", err)
	}
	if s.Score() == score && s.MovesLeft() == moves {
		t.Fatal("Swap should have changed session state")
	}

	if _, err := s.ApplyPowerUp(PowerUndo, Pos{}); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}

	if s.Score() != score {
		t.Errorf("Score after undo = %d, expected %d", s.Score(), score)
	}
	if s.MovesLeft() != moves {
		t.Errorf("MovesLeft after undo = %d, expected %d", s.MovesLeft(), moves)
	}
	restored := s.Grid().State()
	for i := range cells {
		if restored[i] != cells[i] {
			t.Fatalf("Grid cell %d = %v after undo, expected %v", i, restored[i], cells[i])
		}
	}
}

func TestUndoWithEmptyHistory(t *testing.T) {
	s := swapTestSession(t)

	_, err := s.ApplyPowerUp(PowerUndo, Pos{})
	if !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("err = %v, expected ErrNothingToUndo", err)
	}
}

func TestHistoryCappedAtFive(t *testing.T) {
	s := swapTestSession(t)

	// Each shuffle pushes a snapshot; the sixth evicts the oldest.
	for i := 0; i < 6; i++ {
		if _, err := s.ApplyPowerUp(PowerShuffle, Pos{}); err != nil {
			t.Fatalf("Shuffle %d failed: %v", i, err)
		}
	}
	if s.HistoryLen() != HistoryLimit {
		t.Errorf("HistoryLen = %d, expected %d", s.HistoryLen(), HistoryLimit)
	}
}

func TestHammerPowerUp(t *testing.T) {
	s := swapTestSession(t)

	result, err := s.ApplyPowerUp(PowerHammer, P(2, 2))
	if err != nil {
		t.Fatalf("Hammer failed: %v", err)
	}
	if result.Kind != PowerHammer {
		t.Errorf("Kind = %v, expected hammer", result.Kind)
	}
	if len(result.Steps) < 1 {
		t.Fatal("Hammer should report at least the removal step")
	}
	if len(result.Steps[0].Removed) != 1 || result.Steps[0].Removed[0] != P(2, 2) {
		t.Errorf("First step removed %v, expected just (2,2)", result.Steps[0].Removed)
	}

	// Power-ups never consume the move budget.
	if s.MovesLeft() != 10 {
		t.Errorf("MovesLeft = %d, expected 10", s.MovesLeft())
	}
	if countEmpty(s.Grid()) != 0 {
		t.Error("Board has empty cells after hammer settled")
	}
	if HasMatches(s.Grid()) {
		t.Error("Board has matches after hammer settled")
	}
}

func TestHammerOutOfBounds(t *testing.T) {
	s := swapTestSession(t)

	_, err := s.ApplyPowerUp(PowerHammer, P(-1, 3))
	if !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("err = %v, expected ErrInvalidTarget", err)
	}
}

func TestShufflePowerUp(t *testing.T) {
	s := swapTestSession(t)

	if _, err := s.ApplyPowerUp(PowerShuffle, Pos{}); err != nil {
		t.Fatalf("Shuffle failed: %v", err)
	}
	if countEmpty(s.Grid()) != 0 {
		t.Error("Shuffle left empty cells")
	}
	if HasMatches(s.Grid()) {
		t.Error("Shuffle left matches unrepaired")
	}
	if s.MovesLeft() != 10 {
		t.Error("Shuffle must not consume the move budget")
	}
	if s.HistoryLen() != 1 {
		t.Error("Shuffle should push an undo snapshot")
	}
}

func TestNoMovesDetection(t *testing.T) {
	p := smallParams()
	p.BoardSize = 4
	s := sessionWith(t, p,
		"abab",
		"baba",
		"abab",
		"baba",
	)

	if moves := s.PossibleMoves(); len(moves) != 0 {
		t.Errorf("PossibleMoves = %v, expected none", moves)
	}
	if !s.NoMovesLeft() {
		t.Error("NoMovesLeft should report true on a dead board")
	}
	if !s.Exhausted() {
		t.Error("Exhausted should report true on a dead board")
	}
	if _, ok := s.Hint(); ok {
		t.Error("Hint should report no move on a dead board")
	}
}

func TestHintPrefersBiggerClear(t *testing.T) {
	// Swapping (0,2)<->(0,3) makes a 3-run; swapping (3,2)<->(4,2) drops a
	// b into row 4 for a 4-run. The hint must pick the larger clear.
	s := sessionWith(t, smallParams(),
		"aabac",
		"cbdbd",
		"bcacb",
		"dcbdc",
		"bbcbd",
	)

	mv, ok := s.Hint()
	if !ok {
		t.Fatal("Hint found no move")
	}
	if !(mv.A == P(3, 2) && mv.B == P(4, 2)) && !(mv.A == P(4, 2) && mv.B == P(3, 2)) {
		t.Errorf("Hint = %v, expected the 4-run swap (3,2)<->(4,2)", mv)
	}
}

func TestWinAndGoal(t *testing.T) {
	p := smallParams()
	p.GoalScore = 25
	s := sessionWith(t, p,
		"abadc",
		"cadbd",
		"bcacb",
		"dabdc",
		"cbdad",
	)

	if s.Won() {
		t.Error("Fresh session should not report a win")
	}
	if _, err := s.TrySwap(P(0, 1), P(1, 1)); err != nil {
		t.Fatalf("TrySwap failed: %v", err)
	}
	// First step alone is worth 30 >= 25.
	if !s.Won() {
		t.Errorf("Score %d >= goal %d should report a win", s.Score(), p.GoalScore)
	}
}

func TestSessionDeterminism(t *testing.T) {
	// Two sessions with the same seed and the same operations end up with
	// identical boards and scores.
	run := func() *Session {
		s := NewSession(DefaultParams(), 12345)
		moves := s.PossibleMoves()
		for i := 0; i < 5 && len(moves) > 0; i++ {
			if _, err := s.TrySwap(moves[0].A, moves[0].B); err != nil {
				t.Fatalf("Swap %d failed: %v", i, err)
			}
			moves = s.PossibleMoves()
		}
		return s
	}

	s1 := run()
	s2 := run()

	if s1.Score() != s2.Score() {
		t.Errorf("Scores diverged: %d vs %d", s1.Score(), s2.Score())
	}
	if s1.MovesLeft() != s2.MovesLeft() {
		t.Errorf("Move budgets diverged: %d vs %d", s1.MovesLeft(), s2.MovesLeft())
	}
	if !s1.Grid().Equal(s2.Grid()) {
		t.Error("Boards diverged under identical seeds and inputs")
	}
}
