package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 12)
	for y := range 4 {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, want blank", y, got)
		}
	}
}

func TestScreenSetColoredBounds(t *testing.T) {
	s := NewScreen(6, 3)

	s.SetColored(2, 1, '◆', ColorMagenta)
	if c := s.GetCell(2, 1); c.Rune != '◆' || c.Color != ColorMagenta {
		t.Errorf("GetCell(2, 1) = %+v, want magenta diamond", c)
	}

	for _, p := range [][2]int{{-1, 0}, {6, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if c := s.GetCell(p[0], p[1]); c.Rune != ' ' {
			t.Errorf("GetCell(%d, %d) = %q, want blank outside the screen", p[0], p[1], c.Rune)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds write leaked into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawHLine(0, 0, 5, '#', ColorRed)
	s.DrawHLine(0, 1, 5, '#', ColorRed)

	s.Clear()

	for y := range 2 {
		for x := range 5 {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("cell (%d, %d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(5, 0, "Score")

	if got := s.Row(0); got != "     Sco" {
		t.Errorf("Row(0) = %q, want clipped text", got)
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(7, 1)
	s.DrawText(0, 0, "< ★ >")

	if runeAt(s, 2, 0) != '★' || runeAt(s, 4, 0) != '>' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "EASY", ColorGreen)

	if got := s.Row(0); got != "   EASY    " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(3, 0).Color != ColorGreen {
		t.Error("centered text lost its color")
	}
}

func TestScreenDrawCentered(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		text string
		row  int
		want string
	}{
		{"glyph in tile", NewRect(1, 0, 5, 3), "●", 1, "   ●    "},
		{"label in button", NewRect(0, 0, 8, 3), "PLAY", 1, "  PLAY  "},
		{"truncated", NewRect(2, 0, 3, 1), "MEDIUM", 0, "  MED   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 3)
			s.DrawCentered(tt.rect, tt.text, ColorDefault)
			if got := s.Row(tt.row); got != tt.want {
				t.Errorf("Row(%d) = %q, want %q", tt.row, got, tt.want)
			}
		})
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorDefault)

	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != want {
		t.Errorf("box =\n%s\nwant\n%s", got, want)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 3, "Bottom")

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "Hel\n   " {
		t.Errorf("shrunk screen = %q", got)
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "Hel   " {
		t.Errorf("Row(0) after grow = %q", got)
	}
	if got := s.Row(2); got != "      " {
		t.Errorf("Row(2) after grow = %q, want blank", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 1)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, want spaces", got)
	}
	if got := s.Row(1); got != "    " {
		t.Errorf("Row(1) = %q, want spaces", got)
	}
}
