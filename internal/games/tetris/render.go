package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	BorderChar = '▒'
)

// shapeColors maps a shape index to its display color.
var shapeColors = [NumShapes]core.Color{
	core.ColorCyan,    // I
	core.ColorMagenta, // T
	core.ColorYellow,  // O
	core.ColorOrange,  // L
	core.ColorBlue,    // J
	core.ColorGreen,   // S
	core.ColorRed,     // Z
}

// cellColor returns the display color for a locked cell value.
func cellColor(c Cell) core.Color {
	if c >= 1 && c <= NumShapes {
		return shapeColors[c-1]
	}
	return core.ColorGray
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderField(dst)
	g.renderPiece(dst)

	switch {
	case g.state == StateGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris — Score: %d  Lines: %d  Piece: %s",
		g.score, g.lines, ShapeName(g.piece.Shape))
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderField draws the border and locked cells.
func (g *Game) renderField(dst *core.Screen) {
	for y := 0; y < g.field.Height(); y++ {
		for x := 0; x < g.field.Width(); x++ {
			cell := g.field.Get(x, y)
			if cell == CellEmpty {
				continue
			}
			ch := BlockChar
			if cell == CellBorder {
				ch = BorderChar
			}
			dst.SetCell(g.fieldOffsetX+x, g.fieldOffsetY+y, ch, cellColor(cell))
		}
	}
}

// renderPiece overlays the falling piece on the field.
func (g *Game) renderPiece(dst *core.Screen) {
	color := shapeColors[g.piece.Shape]
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			if !ShapeOccupied(g.piece.Shape, g.piece.Rotation, px, py) {
				continue
			}
			sx := g.fieldOffsetX + g.piece.X + px
			sy := g.fieldOffsetY + g.piece.Y + py
			dst.SetCell(sx, sy, BlockChar, color)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
