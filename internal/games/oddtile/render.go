package oddtile

import (
	"fmt"

	"github.com/vovakirdan/oddtile/internal/core"
	"github.com/vovakirdan/oddtile/internal/registry"
)

// HUDHeight is the number of rows above the board used by the status bar.
const HUDHeight = 2

// Layout centers a board of the given number of cells below the HUD.
// Tile size, gaps and columns are kept from base.
func Layout(base Geometry, screenW, screenH, cells int) Geometry {
	g := base
	if g.Columns <= 0 {
		g.Columns = DefaultColumns
	}
	g.OriginX = max(1, (screenW-g.Width(cells))/2)
	g.OriginY = HUDHeight + max(1, (screenH-HUDHeight-g.Height(cells))/2)
	return g
}

// Render draws the running game: status bar and board. cursor marks the
// keyboard selection; pass a position off the board to hide it.
func (s *Session) Render(dst *core.Screen, cursor Position) {
	dst.Clear()
	s.renderHUD(dst)

	if s.board == nil {
		return
	}
	RenderBoard(dst, s.board)
	if r, ok := s.board.Rect(cursor); ok {
		dst.SetColored(r.X-1, r.Y, '[', core.ColorBrightWhite)
		dst.SetColored(r.Right(), r.Y, ']', core.ColorBrightWhite)
	}
}

// renderHUD draws the top status bar.
func (s *Session) renderHUD(dst *core.Screen) {
	timeLeft := "--:--"
	if s.timer != nil {
		timeLeft = s.timer.String()
	}
	hud := fmt.Sprintf(" Odd Tile (%s)  Score: %d  Time: %s", s.mode.Title(), s.score, timeLeft)
	dst.DrawText(0, 0, hud)

	color := core.ColorGray
	if s.timer != nil && s.timer.Remaining().Seconds() <= 10 {
		color = core.ColorBrightRed
	}
	dst.DrawHLine(0, 1, dst.Width(), '─', color)
}

// RenderBoard draws every tile of b with its glyph centered in the tile
// rectangle. Unknown ids are drawn as their raw id.
func RenderBoard(dst *core.Screen, b *Board) {
	cells := b.Round().Cells
	for i, id := range cells {
		r, ok := b.Rect(b.Position(i))
		if !ok {
			continue
		}
		glyph, color := id, core.ColorDefault
		if tile, found := registry.LookupTile(id); found {
			glyph, color = tile.Glyph, tile.Color
		}
		dst.DrawCentered(r, glyph, color)
	}
}
