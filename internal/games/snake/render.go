package snake

import (
	"fmt"

	"github.com/vovakirdan/wallsnake/internal/core"
)

// Each grid cell is two characters wide so the field looks square.
const (
	cellWidth = 2
	hudHeight = 2
)

// Render draws the current game state into dst.
// The grid is centered horizontally below a two-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	boxW := g.grid.Width*cellWidth + 2
	boxH := g.grid.Height + 2
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		dst.DrawText(0, hudHeight, "Window too small", core.ColorRed)
		return
	}

	offX := (dst.Width() - boxW) / 2
	offY := hudHeight
	dst.DrawBox(offX, offY, boxW, boxH, core.ColorGray)

	cell := func(p core.Point, text string, color core.Color) {
		dst.DrawText(offX+1+p.X*cellWidth, offY+1+p.Y, text, color)
	}

	for _, w := range g.walls {
		for _, p := range w.cells {
			cell(p, "▓▓", core.ColorPowderBlue)
		}
	}

	cell(g.fruit.Pos(), "()", core.ColorRed)

	bodyColor, headColor := core.ColorGreen, core.ColorBrightGreen
	if g.snake.Empowered() {
		bodyColor, headColor = core.ColorYellow, core.ColorBrightYellow
	}
	for _, p := range g.snake.body {
		cell(p, "▒▒", bodyColor)
	}
	cell(g.snake.Head(), "██", headColor)

	if g.paused {
		msg := " Paused - press P "
		dst.DrawText((dst.Width()-len(msg))/2, offY+boxH/2, msg, core.ColorBrightYellow)
	}
}

// renderHUD draws the score line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.snake.Empowered() {
		hud := fmt.Sprintf(" Score: %d  Walls left to destroy: %d", g.score, g.WallsLeftToDestroy())
		dst.DrawText(0, 0, hud, core.ColorCyan)
	} else {
		hud := fmt.Sprintf(" Score: %d  Apples for superpower left: %d", g.score, g.ApplesUntilPower())
		dst.DrawText(0, 0, hud, core.ColorDefault)
	}

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}
