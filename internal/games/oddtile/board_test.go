package oddtile

import (
	"testing"

	"github.com/vovakirdan/oddtile/internal/registry"
)

func testBoard(t *testing.T, seed int64) *Board {
	t.Helper()
	r, err := NewGenerator(seed, DefaultBoardSize).Generate(registry.List())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	return NewBoard(r, DefaultGeometry())
}

func TestBoardLayout(t *testing.T) {
	b := testBoard(t, 1)

	if b.Len() != 36 {
		t.Fatalf("Len() = %d, want 36", b.Len())
	}
	if b.Rows() != 6 {
		t.Errorf("Rows() = %d, want 6", b.Rows())
	}
	for row := range b.Rows() {
		if got := b.RowLen(row); got != 6 {
			t.Errorf("RowLen(%d) = %d, want 6", row, got)
		}
	}

	// Row-major positions round-trip through Index.
	for i := range b.Len() {
		pos := b.Position(i)
		j, ok := b.Index(pos)
		if !ok || j != i {
			t.Errorf("Index(Position(%d)) = %d, %v", i, j, ok)
		}
	}

	if _, ok := b.Index(Position{Row: 6, Col: 0}); ok {
		t.Error("row 6 should be off the board")
	}
	if _, ok := b.Index(Position{Row: 0, Col: 6}); ok {
		t.Error("column 6 should be off the board")
	}
}

func TestBoardPartialLastRow(t *testing.T) {
	set := registry.TileSet{Name: "pair", Tiles: []registry.Tile{{ID: "a"}, {ID: "b"}}}
	r, err := NewGenerator(3, 8).Generate([]registry.TileSet{set})
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b := NewBoard(r, DefaultGeometry())

	if b.Rows() != 2 {
		t.Fatalf("Rows() = %d, want 2", b.Rows())
	}
	if b.RowLen(1) != 2 {
		t.Errorf("RowLen(1) = %d, want 2", b.RowLen(1))
	}
	if _, ok := b.CellAt(Position{Row: 1, Col: 2}); ok {
		t.Error("CellAt past the partial row should fail")
	}
}

func TestBoardOddPosition(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b := testBoard(t, seed)
		pos := b.OddPosition()
		if !b.IsOdd(pos) {
			t.Fatalf("seed %d: OddPosition %v is not odd", seed, pos)
		}

		odd := 0
		for i := range b.Len() {
			if b.IsOdd(b.Position(i)) {
				odd++
			}
		}
		if odd != 1 {
			t.Fatalf("seed %d: %d odd cells", seed, odd)
		}
	}
}

func TestBoardHitTestInclusiveEdges(t *testing.T) {
	b := testBoard(t, 7)
	pos := Position{Row: 2, Col: 3}
	r, ok := b.Rect(pos)
	if !ok {
		t.Fatal("Rect() failed")
	}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left", r.X, r.Y, true},
		{"bottom-right", r.X + r.W, r.Y + r.H, true},
		{"right edge", r.X + r.W, r.Y, true},
		{"bottom edge", r.X, r.Y + r.H, true},
		{"left of tile", r.X - 1, r.Y, false},
		{"above tile", r.X, r.Y - 1, false},
		{"past right edge", r.X + r.W + 1, r.Y, false},
		{"past bottom edge", r.X, r.Y + r.H + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.HitTest(pos, tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if b.HitTest(Position{Row: 9, Col: 9}, r.X, r.Y) {
		t.Error("HitTest off the board should be false")
	}
}

func TestBoardCellAtPoint(t *testing.T) {
	g := DefaultGeometry()
	g.OriginX, g.OriginY = 5, 3
	r, _ := NewGenerator(1, DefaultBoardSize).Generate(registry.List())
	b := NewBoard(r, g)

	for i := range b.Len() {
		want := b.Position(i)
		rect, _ := b.Rect(want)
		got, ok := b.CellAtPoint(rect.X+1, rect.Y)
		if !ok || got != want {
			t.Fatalf("CellAtPoint inside cell %d = %v, %v; want %v", i, got, ok, want)
		}
	}

	if _, ok := b.CellAtPoint(0, 0); ok {
		t.Error("CellAtPoint(0, 0) should miss a board at (5, 3)")
	}
}

func TestGeometrySize(t *testing.T) {
	g := DefaultGeometry()
	if got := g.Width(36); got != 6*7+5 {
		t.Errorf("Width(36) = %d, want %d", got, 6*7+5)
	}
	if got := g.Height(36); got != 6+5 {
		t.Errorf("Height(36) = %d, want %d", got, 11)
	}
	if got := g.Width(3); got != 3*7+2 {
		t.Errorf("Width(3) = %d, want %d", got, 23)
	}
	if g.Width(0) != 0 || g.Height(0) != 0 {
		t.Error("empty board should have zero size")
	}
}
