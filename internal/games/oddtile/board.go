package oddtile

import (
	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/core"
)

// DefaultColumns is the number of tiles per board row.
const DefaultColumns = 6

// Position is a board cell addressed by row and column.
type Position struct {
	Row, Col int
}

// Geometry describes where the board sits on screen and how big tiles are.
type Geometry struct {
	OriginX, OriginY int // Top-left corner of the first tile
	TileW, TileH     int // Tile size in cells
	GapX, GapY       int // Space between tiles
	Columns          int // Tiles per row
}

// DefaultGeometry returns a 6-column layout of 7x1 tiles at the origin.
func DefaultGeometry() Geometry {
	return Geometry{
		TileW:   7,
		TileH:   1,
		GapX:    1,
		GapY:    1,
		Columns: DefaultColumns,
	}
}

// GeometryFor builds a layout at the origin from board settings.
func GeometryFor(c config.BoardConfig) Geometry {
	return Geometry{
		TileW:   c.TileWidth,
		TileH:   c.TileHeight,
		GapX:    c.GapX,
		GapY:    c.GapY,
		Columns: c.Columns,
	}
}

// Width returns the on-screen width of a board with the given number of cells.
func (g Geometry) Width(cells int) int {
	cols := min(g.columns(), cells)
	if cols <= 0 {
		return 0
	}
	return cols*g.TileW + (cols-1)*g.GapX
}

// Height returns the on-screen height of a board with the given number of cells.
func (g Geometry) Height(cells int) int {
	rows := rowsFor(cells, g.columns())
	if rows <= 0 {
		return 0
	}
	return rows*g.TileH + (rows-1)*g.GapY
}

func (g Geometry) columns() int {
	if g.Columns <= 0 {
		return DefaultColumns
	}
	return g.Columns
}

func rowsFor(cells, cols int) int {
	if cells <= 0 {
		return 0
	}
	return (cells + cols - 1) / cols
}

// Board is a round laid out on screen. Cells fill left to right, then top to
// bottom; the last row is only as wide as the remainder.
type Board struct {
	round Round
	geom  Geometry
}

// NewBoard lays out a round with the given geometry.
func NewBoard(round Round, geom Geometry) *Board {
	if geom.Columns <= 0 {
		geom.Columns = DefaultColumns
	}
	return &Board{round: round, geom: geom}
}

// Round returns the round this board displays.
func (b *Board) Round() Round {
	return b.round
}

// Geometry returns the board layout.
func (b *Board) Geometry() Geometry {
	return b.geom
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.round.Cells)
}

// Rows returns the number of rows, counting a partial last row.
func (b *Board) Rows() int {
	return rowsFor(b.Len(), b.geom.Columns)
}

// RowLen returns the number of cells in the given row.
func (b *Board) RowLen(row int) int {
	if row < 0 || row >= b.Rows() {
		return 0
	}
	return min(b.geom.Columns, b.Len()-row*b.geom.Columns)
}

// Position returns the row/column of a cell index.
func (b *Board) Position(index int) Position {
	return Position{Row: index / b.geom.Columns, Col: index % b.geom.Columns}
}

// Index returns the cell index of a position and whether it is on the board.
func (b *Board) Index(pos Position) (int, bool) {
	if pos.Row < 0 || pos.Col < 0 || pos.Col >= b.geom.Columns {
		return 0, false
	}
	i := pos.Row*b.geom.Columns + pos.Col
	if i >= b.Len() {
		return 0, false
	}
	return i, true
}

// CellAt returns the tile ID at a position.
func (b *Board) CellAt(pos Position) (string, bool) {
	i, ok := b.Index(pos)
	if !ok {
		return "", false
	}
	return b.round.Cells[i], true
}

// IsOdd reports whether the tile at pos is the odd one.
func (b *Board) IsOdd(pos Position) bool {
	id, ok := b.CellAt(pos)
	return ok && b.round.IsOdd(id)
}

// OddPosition returns where the odd tile sits.
func (b *Board) OddPosition() Position {
	return b.Position(b.round.OddIndex)
}

// Rect returns the screen rectangle of the tile at pos.
func (b *Board) Rect(pos Position) (core.Rect, bool) {
	if _, ok := b.Index(pos); !ok {
		return core.Rect{}, false
	}
	g := b.geom
	return core.NewRect(
		g.OriginX+pos.Col*(g.TileW+g.GapX),
		g.OriginY+pos.Row*(g.TileH+g.GapY),
		g.TileW,
		g.TileH,
	), true
}

// HitTest reports whether the pointer at (x, y) falls on the tile at pos.
// All four edges of the tile's bounding box count as inside.
func (b *Board) HitTest(pos Position, x, y int) bool {
	r, ok := b.Rect(pos)
	if !ok {
		return false
	}
	return r.ContainsInclusive(x, y)
}

// CellAtPoint returns the first tile, in row-major order, hit by (x, y).
func (b *Board) CellAtPoint(x, y int) (Position, bool) {
	for i := range b.Len() {
		pos := b.Position(i)
		if b.HitTest(pos, x, y) {
			return pos, true
		}
	}
	return Position{}, false
}
