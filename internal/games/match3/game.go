// Package match3 provides the match-3 tile puzzle game.
package match3

import (
	"errors"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // Move budget + goal score per level
	ModeTimed   Mode = "timed"   // Goal score against the clock
	ModeZen     Mode = "zen"     // No budget, no goal, endless play
)

// defaultTimeLimit is used for timed levels whose config leaves time_limit unset.
const defaultTimeLimit = 120 // seconds

// levelClearDelay is how long the level-cleared overlay stays up before the
// next level loads (in ticks).
const levelClearDelay = 90

// Game implements the match-3 puzzle game.
type Game struct {
	mode Mode
	cfg  config.Match3Config
	tick uint64
	seed int64

	session    *core.Session
	levelIndex int // Current level (0-indexed)
	totalScore int // Score carried across cleared levels (campaign)

	// Input focus
	cursor      core.Pos
	selected    *core.Pos
	hint        *core.SwapMove
	hammerArmed bool

	// Power-up charges
	hammers  int
	shuffles int
	undos    int

	// Cascade reveal pacing. Presentation only: the session has already
	// settled, this just staggers how the HUD score catches up and which
	// cells flash.
	steps       []core.CascadeStep
	revealIdx   int
	revealTicks int
	shownScore  int

	// Timed mode
	tickRate  int
	ticksLeft int

	// Status line shown briefly after rejected actions
	status      string
	statusTicks int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	won             bool
	paused          bool
	tooSmall        bool
	levelCleared    bool
	levelClearTicks int
	moveProcessed   bool // Prevent multiple moves per tick
}

// Package-level variables for config
var (
	selectedStartLevel int
	configPath         string
)

// SetStartLevel sets the starting level (1-based). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetConfigPath sets a custom config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new classic mode match-3 game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTimed creates a new timed mode match-3 game.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

// NewZen creates a new zen mode match-3 game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_timed", func() registry.Game {
		return NewTimed()
	})
	registry.Register("match3_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeTimed:
		return "match3_timed"
	case ModeZen:
		return "match3_zen"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeTimed:
		return "Match-3 (Timed)"
	case ModeZen:
		return "Match-3 (Zen)"
	}
	return "Match-3"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	loaded, err := config.LoadMatch3(configPath)
	if err != nil {
		loaded = config.DefaultMatch3Config()
	}
	g.cfg = loaded

	g.seed = cfg.Seed
	g.tick = 0
	g.totalScore = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}

	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.moveProcessed = false
	g.status = ""
	g.statusTicks = 0

	g.levelIndex = 0
	if g.mode == ModeClassic && selectedStartLevel > 0 {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	}

	g.loadLevel()
	g.checkScreenSize()
}

// loadLevel starts a fresh session for the current level.
func (g *Game) loadLevel() {
	level := g.cfg.Level(g.levelIndex)

	params := core.Params{
		BoardSize: g.cfg.Board.Size,
		TileKinds: g.cfg.Board.TileKinds,
		MaxCombo:  g.cfg.Scoring.MaxCombo,
	}
	switch g.mode {
	case ModeClassic:
		params.GoalScore = level.GoalScore
		params.MoveBudget = level.MoveBudget
	case ModeTimed:
		params.GoalScore = level.GoalScore
		limit := level.TimeLimit
		if limit <= 0 {
			limit = defaultTimeLimit
		}
		g.ticksLeft = limit * g.tickRate
	case ModeZen:
		// No budget, no goal.
	}

	// Offset the seed per level so restarting a later level does not
	// replay the first level's board.
	g.session = core.NewSession(params, g.seed+int64(g.levelIndex))

	g.hammers = g.cfg.PowerUps.Hammers
	g.shuffles = g.cfg.PowerUps.Shuffles
	g.undos = g.cfg.PowerUps.Undos

	g.cursor = core.P(0, 0)
	g.selected = nil
	g.hint = nil
	g.hammerArmed = false
	g.steps = nil
	g.revealIdx = 0
	g.revealTicks = 0
	g.shownScore = 0
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	size := g.cfg.Board.Size
	minW := size*cellWidth + 1 + 2*hudMargin
	minH := size*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.statusTicks > 0 {
		g.statusTicks--
		if g.statusTicks == 0 {
			g.status = ""
		}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) && (g.gameOver || g.won) {
		// Will be reset by platform
		return platformcore.StepResult{State: g.State()}
	}

	// Level-cleared pause before the next level loads.
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return platformcore.StepResult{State: g.State()}
	}

	// Timed mode clock.
	if g.mode == ModeTimed {
		g.ticksLeft--
		if g.ticksLeft <= 0 {
			g.ticksLeft = 0
			g.gameOver = true
			return platformcore.StepResult{State: g.State()}
		}
	}

	// Advance cascade reveal. Board input waits until it finishes so
	// players see what their move did.
	if g.revealing() {
		g.advanceReveal()
		return platformcore.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.checkEndConditions()

	return platformcore.StepResult{State: g.State()}
}

// handleInput processes one tick of player input.
func (g *Game) handleInput(in platformcore.InputFrame) {
	size := g.session.Grid().Size()

	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Row = platformcore.Clamp(g.cursor.Row-1, 0, size-1)
	case in.Has(platformcore.ActionDown):
		g.cursor.Row = platformcore.Clamp(g.cursor.Row+1, 0, size-1)
	case in.Has(platformcore.ActionLeft):
		g.cursor.Col = platformcore.Clamp(g.cursor.Col-1, 0, size-1)
	case in.Has(platformcore.ActionRight):
		g.cursor.Col = platformcore.Clamp(g.cursor.Col+1, 0, size-1)
	}

	if in.Has(platformcore.ActionCancel) {
		g.selected = nil
		g.hammerArmed = false
		return
	}

	if in.Has(platformcore.ActionHammer) && !g.moveProcessed {
		if g.hammers > 0 {
			g.hammerArmed = !g.hammerArmed
			g.selected = nil
		} else {
			g.setStatus("No hammers left")
		}
	}

	if in.Has(platformcore.ActionShuffle) && !g.moveProcessed {
		g.applyShuffle()
		g.moveProcessed = true
	}

	if in.Has(platformcore.ActionUndo) && !g.moveProcessed {
		g.applyUndo()
		g.moveProcessed = true
	}

	if in.Has(platformcore.ActionHint) {
		if mv, ok := g.session.Hint(); ok {
			g.hint = &mv
		} else {
			g.setStatus("No moves available")
		}
	}

	if in.Has(platformcore.ActionSelect) && !g.moveProcessed {
		g.handleSelect()
		g.moveProcessed = true
	}
}

// handleSelect resolves a select press at the cursor: hammer target,
// tile selection, or swap attempt.
func (g *Game) handleSelect() {
	if g.hammerArmed {
		g.applyHammer()
		return
	}

	cur := g.cursor
	if g.selected == nil {
		g.selected = &cur
		return
	}
	if *g.selected == cur {
		g.selected = nil
		return
	}
	if !g.selected.Adjacent(cur) {
		// Moving selection is friendlier than rejecting.
		g.selected = &cur
		return
	}

	from := *g.selected
	g.selected = nil
	g.hint = nil

	result, err := g.session.TrySwap(from, cur)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNoMovesLeft):
			g.setStatus("No moves left")
		default:
			g.setStatus("Invalid move")
		}
		return
	}
	if !result.Accepted {
		g.setStatus("No match")
		return
	}
	g.beginReveal(result.Steps)
}

// applyHammer spends a hammer charge on the cursor tile.
func (g *Game) applyHammer() {
	g.hammerArmed = false
	result, err := g.session.ApplyPowerUp(core.PowerHammer, g.cursor)
	if err != nil {
		g.setStatus("Invalid target")
		return
	}
	g.hammers--
	g.hint = nil
	g.beginReveal(result.Steps)
}

// applyShuffle spends a shuffle charge.
func (g *Game) applyShuffle() {
	if g.shuffles <= 0 {
		g.setStatus("No shuffles left")
		return
	}
	if _, err := g.session.ApplyPowerUp(core.PowerShuffle, core.Pos{}); err != nil {
		g.setStatus("Shuffle failed")
		return
	}
	g.shuffles--
	g.selected = nil
	g.hint = nil
}

// applyUndo spends an undo charge.
func (g *Game) applyUndo() {
	if g.undos <= 0 {
		g.setStatus("No undos left")
		return
	}
	if _, err := g.session.ApplyPowerUp(core.PowerUndo, core.Pos{}); err != nil {
		g.setStatus("Nothing to undo")
		return
	}
	g.undos--
	g.selected = nil
	g.hint = nil
	g.steps = nil
	g.shownScore = g.session.Score()
}

// beginReveal stages cascade steps for paced display.
func (g *Game) beginReveal(steps []core.CascadeStep) {
	g.steps = steps
	g.revealIdx = 0
	g.revealTicks = 0
	if len(steps) == 0 {
		g.shownScore = g.session.Score()
	}
}

// revealing reports whether cascade steps are still being shown.
func (g *Game) revealing() bool {
	return g.revealIdx < len(g.steps)
}

// advanceReveal moves the reveal forward by one tick.
func (g *Game) advanceReveal() {
	delay := g.cfg.Animation.StepDelayTicks
	g.revealTicks++
	if g.revealTicks < delay {
		return
	}
	g.revealTicks = 0
	g.shownScore += g.steps[g.revealIdx].Score
	g.revealIdx++
	if !g.revealing() {
		g.shownScore = g.session.Score()
		g.checkEndConditions()
	}
}

// checkEndConditions updates win/lose flags after board changes settle.
func (g *Game) checkEndConditions() {
	if g.revealing() || g.gameOver || g.won || g.levelCleared {
		return
	}

	switch g.mode {
	case ModeClassic:
		if g.session.Won() {
			g.levelCleared = true
			g.levelClearTicks = 0
			return
		}
		if g.session.Exhausted() {
			g.gameOver = true
		}
	case ModeTimed:
		if g.session.Won() {
			g.won = true
			return
		}
		if g.session.NoMovesLeft() {
			g.gameOver = true
		}
	case ModeZen:
		// A dead board in zen just reshuffles itself.
		if g.session.NoMovesLeft() {
			g.session.ApplyPowerUp(core.PowerShuffle, core.Pos{})
			g.setStatus("Board reshuffled")
		}
	}
}

// advanceLevel banks the level score and loads the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0
	g.totalScore += g.session.Score()
	g.levelIndex++
	g.loadLevel()
}

// setStatus shows a transient status message.
func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = 2 * g.tickRate
}

// Level returns the current level number (1-based).
func (g *Game) Level() int {
	return g.levelIndex + 1
}

// MovesUsed returns how many moves of the current level's budget were spent.
// Zero when the mode has no budget.
func (g *Game) MovesUsed() int {
	if g.session == nil {
		return 0
	}
	budget := g.session.Params().MoveBudget
	if budget <= 0 {
		return 0
	}
	return budget - g.session.MovesLeft()
}

// SecondsLeft returns the remaining time in timed mode.
func (g *Game) SecondsLeft() int {
	if g.tickRate <= 0 {
		return 0
	}
	return (g.ticksLeft + g.tickRate - 1) / g.tickRate
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.totalScore + g.session.Score(),
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Select/Swap | X: Hammer | F: Shuffle | U: Undo | H: Hint | P: Pause | Q: Quit"
}
