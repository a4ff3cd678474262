package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs for the board elements.
const (
	glyphWall     = '#'
	glyphWrapEdge = '·'
	glyphObstacle = '▓'
	glyphFood     = '*'
	glyphHead     = 'O'
	glyphBody     = 'o'
)

// Render draws the whole session to the screen: HUD, frame, obstacles, food,
// snake, and any modal overlay. It never mutates game state and clips
// everything that falls outside the buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Terminal too small", "Resize to continue")
		return
	}

	g.renderFrame(dst)
	g.renderObstacles(dst)
	g.renderFood(dst)
	g.renderSnake(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst,
			"Game Over",
			fmt.Sprintf("Final Score: %d", g.score),
			"R restart  Esc menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// cellToScreen maps a board cell to its screen position inside the frame.
func (g *Game) cellToScreen(p core.Point) (int, int) {
	return p.X + 1, p.Y + hudRows + 1
}

// renderHUD draws the top status line and the separator under it.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  High: %d  Speed: %dms  %s",
		g.score, g.highScore, g.speedMs, g.settings.Difficulty)
	if !g.settings.Walls {
		hud += "  Wrap"
	}
	if g.settings.Obstacles {
		hud += "  Obstacles"
	}
	dst.DrawText(0, 0, hud)

	hint := "p pause  ? help  q quit "
	if len(hud)+len(hint)+2 <= dst.Width() {
		dst.DrawTextColored(dst.Width()-len(hint), 0, hint, core.ColorGray)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderFrame draws the border ring around the interior: solid when walls
// are deadly, dotted when the board wraps.
func (g *Game) renderFrame(dst *core.Screen) {
	glyph := glyphWall
	color := core.ColorWhite
	if !g.settings.Walls {
		glyph = glyphWrapEdge
		color = core.ColorGray
	}

	top := hudRows
	bottom := hudRows + g.board.H + 1
	right := g.board.W + 1

	for x := 0; x <= right; x++ {
		dst.SetCell(x, top, glyph, color)
		dst.SetCell(x, bottom, glyph, color)
	}
	for y := top; y <= bottom; y++ {
		dst.SetCell(0, y, glyph, color)
		dst.SetCell(right, y, glyph, color)
	}
}

func (g *Game) renderObstacles(dst *core.Screen) {
	for _, p := range g.board.Obstacles() {
		x, y := g.cellToScreen(p)
		dst.SetCell(x, y, glyphObstacle, core.ColorMagenta)
	}
}

func (g *Game) renderFood(dst *core.Screen) {
	if !g.board.HasFood() {
		return
	}
	x, y := g.cellToScreen(g.board.Food())
	dst.SetCell(x, y, glyphFood, core.ColorBrightRed)
}

func (g *Game) renderSnake(dst *core.Screen) {
	for i, seg := range g.snake.Body() {
		x, y := g.cellToScreen(seg)
		if i == 0 {
			dst.SetCell(x, y, glyphHead, core.ColorBrightGreen)
		} else {
			dst.SetCell(x, y, glyphBody, core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered modal box with the given text lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	boxW := maxLen + 4
	boxH := 2*len(lines) + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	for x := box.X; x < box.Right(); x++ {
		dst.Set(x, box.Y, '-')
		dst.Set(x, box.Bottom()-1, '-')
	}
	for y := box.Y; y < box.Bottom(); y++ {
		dst.Set(box.X, y, '|')
		dst.Set(box.Right()-1, y, '|')
	}
	dst.Set(box.X, box.Y, '+')
	dst.Set(box.Right()-1, box.Y, '+')
	dst.Set(box.X, box.Bottom()-1, '+')
	dst.Set(box.Right()-1, box.Bottom()-1, '+')

	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+2*i, line)
	}
}
