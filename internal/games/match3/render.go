package match3

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

const (
	cellWidth  = 3 // Each cell renders as " x " with room for markers
	cellHeight = 1
	hudHeight  = 4
	hudMargin  = 2
)

// tileGlyph describes how one basic tile kind is drawn.
type tileGlyph struct {
	r rune
	c platformcore.Color
}

var basicGlyphs = []tileGlyph{
	{'●', platformcore.ColorRed},
	{'■', platformcore.ColorGreen},
	{'▲', platformcore.ColorYellow},
	{'◆', platformcore.ColorBlue},
	{'♥', platformcore.ColorMagenta},
	{'★', platformcore.ColorCyan},
	{'◉', platformcore.ColorOrange},
	{'▼', platformcore.ColorBrightWhite},
}

var specialGlyphs = map[core.SpecialType]tileGlyph{
	core.SpecialStriped: {'≋', platformcore.ColorBrightCyan},
	core.SpecialBomb:    {'✹', platformcore.ColorBrightRed},
	core.SpecialRainbow: {'◎', platformcore.ColorBrightWhite},
}

// glyphFor maps a tile to its glyph and color.
func glyphFor(t core.Tile) tileGlyph {
	if st, ok := core.SpecialTypeOf(t); ok {
		return specialGlyphs[st]
	}
	if t.IsBasic() {
		k := t.BasicKind()
		if k >= 0 && k < len(basicGlyphs) {
			return basicGlyphs[k]
		}
		return tileGlyph{'a' + rune(k%26), platformcore.ColorWhite}
	}
	return tileGlyph{' ', platformcore.ColorDefault}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	size := g.session.Grid().Size()
	boardW := size*cellWidth + 2 // +2 for box borders
	boardH := size*cellHeight + 2

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	if g.status != "" {
		x := boardX + (boardW-len(g.status))/2
		dst.DrawTextColored(x, boardY+boardH, g.status, platformcore.ColorBrightYellow)
	}

	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws score, objectives, and power-up charges.
func (g *Game) renderHUD(dst *platformcore.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.totalScore+g.shownScore)
	dst.DrawText(boardX, 1, scoreStr)

	var rightStr string
	switch g.mode {
	case ModeClassic:
		rightStr = fmt.Sprintf("Moves: %d", g.session.MovesLeft())
	case ModeTimed:
		rightStr = fmt.Sprintf("Time: %ds", g.SecondsLeft())
	case ModeZen:
		rightStr = "Zen"
	}
	dst.DrawText(boardX+boardW-len(rightStr), 1, rightStr)

	var infoStr string
	switch g.mode {
	case ModeClassic:
		infoStr = fmt.Sprintf("Level %d  Goal: %d", g.Level(), g.session.Params().GoalScore)
	case ModeTimed:
		infoStr = fmt.Sprintf("Goal: %d", g.session.Params().GoalScore)
	case ModeZen:
		infoStr = "Endless"
	}
	if mult := g.session.Multiplier(); mult > 1 {
		infoStr += fmt.Sprintf("  Combo x%d", mult)
	}
	dst.DrawText(boardX, 2, infoStr)

	charges := fmt.Sprintf("Hammer:%d Shuffle:%d Undo:%d", g.hammers, g.shuffles, g.undos)
	if g.hammerArmed {
		dst.DrawTextColored(boardX, 3, charges+"  [hammer armed]", platformcore.ColorBrightRed)
	} else {
		dst.DrawText(boardX, 3, charges)
	}
}

// renderBoard draws the grid with tiles, cursor, selection, and hint markers.
func (g *Game) renderBoard(dst *platformcore.Screen, boardX, boardY int) {
	grid := g.session.Grid()
	size := grid.Size()

	dst.DrawBox(platformcore.NewRect(boardX, boardY, size*cellWidth+2, size*cellHeight+2))

	// Positions flashing in the current reveal step.
	flash := map[core.Pos]bool{}
	if g.revealing() {
		for _, p := range g.steps[g.revealIdx].Removed {
			flash[p] = true
		}
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := core.P(row, col)
			x := boardX + 1 + col*cellWidth
			y := boardY + 1 + row*cellHeight

			gl := glyphFor(grid.Get(p))
			if flash[p] {
				gl = tileGlyph{'✦', platformcore.ColorBrightYellow}
			}
			dst.SetColored(x+1, y, gl.r, gl.c)

			switch {
			case p == g.cursor && g.hammerArmed:
				dst.SetColored(x, y, '{', platformcore.ColorBrightRed)
				dst.SetColored(x+2, y, '}', platformcore.ColorBrightRed)
			case p == g.cursor:
				dst.SetColored(x, y, '[', platformcore.ColorBrightWhite)
				dst.SetColored(x+2, y, ']', platformcore.ColorBrightWhite)
			case g.selected != nil && p == *g.selected:
				dst.SetColored(x, y, '(', platformcore.ColorBrightGreen)
				dst.SetColored(x+2, y, ')', platformcore.ColorBrightGreen)
			case g.hint != nil && (p == g.hint.A || p == g.hint.B):
				dst.SetColored(x, y, '<', platformcore.ColorBrightYellow)
				dst.SetColored(x+2, y, '>', platformcore.ColorBrightYellow)
			}
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		goalStr := fmt.Sprintf("Goal %d reached!", g.session.Params().GoalScore)
		nextStr := fmt.Sprintf("Next: Level %d", g.Level()+1)
		g.drawOverlay(dst, centerX, centerY, goalStr, nextStr)
		return
	}

	if g.won {
		scoreStr := fmt.Sprintf("Final score: %d", g.totalScore+g.session.Score())
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", scoreStr, "Press R to restart")
		return
	}

	if g.gameOver {
		var reason string
		switch {
		case g.mode == ModeTimed:
			reason = "Time's up!"
		case g.session.NoMovesLeft():
			reason = "No moves left"
		default:
			reason = "Out of moves"
		}
		scoreStr := fmt.Sprintf("Score: %d", g.totalScore+g.session.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", reason, scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}
