package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2 // Status line + separator

// boardSize returns the framed board size in terminal characters.
func (g *Game) boardSize() (w, h int) {
	return g.grid.PixelWidth() + 2, g.grid.PixelHeight() + 2
}

// boardFrame returns the frame rectangle, horizontally centred below the HUD.
func (g *Game) boardFrame(dst *core.Screen) core.Rect {
	w, h := g.boardSize()
	return core.NewRect(core.Max((dst.Width()-w)/2, 0), hudHeight, w, h)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.round == nil {
		g.renderOverlay(dst, "Invalid board", fmt.Sprint(g.err))
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.boardSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h+hudHeight))
		return
	}

	frame := g.boardFrame(dst)
	dst.DrawBox(frame, core.ColorCyan)

	canvas := screenCanvas{
		dst:     dst,
		grid:    g.grid,
		originX: frame.X + 1,
		originY: frame.Y + 1,
	}
	for _, d := range g.Drawables() {
		d.Draw(canvas)
	}

	switch {
	case g.over:
		g.renderOverlay(dst, "Out of bounds", "Press Q to quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.round.Snake()
	hud := fmt.Sprintf(" %s | Length: %d  Best: %d  Apples: %d  Resets: %d",
		g.title, s.Length(), g.round.BestLength(), g.round.ApplesEaten(), g.round.Resets())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centred two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// screenCanvas paints board cells into a terminal screen. One drawing unit
// of the grid is one character.
type screenCanvas struct {
	dst     *core.Screen
	grid    Grid
	originX int
	originY int
}

func (c screenCanvas) PaintCell(cell Cell, p Paint) {
	rect := c.grid.CellToPixel(cell).Offset(c.originX, c.originY)
	switch p {
	case PaintSnakeHead:
		c.dst.DrawRect(rect, 'O', core.ColorBrightGreen)
	case PaintSnakeBody:
		c.dst.DrawRect(rect, 'o', core.ColorGreen)
	case PaintApple:
		c.dst.DrawRect(rect, '*', core.ColorRed)
	default:
		c.dst.DrawRect(rect, ' ', core.ColorDefault)
	}
}
