package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/oddtile/internal/core"
	"github.com/vovakirdan/oddtile/internal/games/oddtile"
	"github.com/vovakirdan/oddtile/internal/storage"
)

// drawGame draws the running game, or a notice when the terminal cannot
// fit the board.
func (m Model) drawGame() {
	geom := m.session.Geometry()
	needW := geom.Width(m.cfg.Board.Size) + 2
	needH := oddtile.HUDHeight + geom.Height(m.cfg.Board.Size) + 1
	if m.screen.Width() < needW || m.screen.Height() < needH {
		h := m.screen.Height()
		m.screen.DrawTextCentered(h/2-1, "Window too small", core.ColorBrightRed)
		m.screen.DrawTextCentered(h/2+1, fmt.Sprintf("Need %dx%d, resize to continue", needW, needH+1), core.ColorGray)
		return
	}
	m.session.Render(m.screen, m.cursor)
}

// drawRoundOver draws the final score, name entry and recent entries.
func (m Model) drawRoundOver() {
	res := m.session.Result()
	y := max(m.screen.Height()/2-8, 0)

	m.screen.DrawTextCentered(y, "TIME'S UP", core.ColorBrightYellow)
	m.screen.DrawTextCentered(y+2, fmt.Sprintf("%s  %s", res.Mode, res.FinalTime), core.ColorGray)
	m.screen.DrawTextCentered(y+4, fmt.Sprintf("SCORE  %d", res.Score), core.ColorBrightWhite)
	if m.best != "" {
		m.screen.DrawTextCentered(y+5, m.best, core.ColorGray)
	}

	y += 7
	if m.session.HasPending() {
		m.screen.DrawTextCentered(y, "Enter your name:", core.ColorDefault)
		m.screen.DrawTextCentered(y+1, nameField(m.name.Value()), core.ColorBrightCyan)
	} else if res.Saved {
		who := res.Name
		if who == "" {
			who = "anonymous"
		}
		m.screen.DrawTextCentered(y, "Score saved for "+who, core.ColorGreen)
	}
	if m.status != "" {
		m.screen.DrawTextCentered(y+2, m.status, core.ColorOrange)
	}

	if len(m.recent) == 0 {
		return
	}
	y += 4
	m.screen.DrawTextCentered(y, "RECENT", core.ColorGray)
	for i, e := range m.recent {
		m.screen.DrawTextCentered(y+1+i, formatEntry(e), core.ColorDefault)
	}
}

// nameField shows the typed name padded with underscores to the maximum length.
func nameField(value string) string {
	pad := max(storage.MaxNameLen-len(value), 0)
	return value + strings.Repeat("_", pad)
}

func formatEntry(e storage.Entry) string {
	name := e.Name
	if name == "" {
		name = "-"
	}
	return fmt.Sprintf("%4d  %-*s", e.Score, storage.MaxNameLen, name)
}
