package tui

import (
	"fmt"

	"github.com/vovakirdan/oddtile/internal/config"
	"github.com/vovakirdan/oddtile/internal/core"
)

// howToPlay is the instructions page text.
var howToPlay = []string{
	"Every board hides one tile that is not like the others.",
	"",
	"Click the odd tile to score a point and get a new board.",
	"With the keyboard, move with the arrows and press Enter.",
	"Clicking any other tile does nothing, so look carefully.",
	"",
	"Find as many odd tiles as you can before time runs out.",
}

// drawTitle draws the title screen.
func (m Model) drawTitle() {
	h := m.screen.Height()
	top := max(h/2-7, 0)

	banner := core.NewRect((m.screen.Width()-21)/2, top, 21, 3)
	m.screen.DrawBox(banner, core.ColorBrightMagenta)
	m.screen.DrawTextCentered(top+1, "O D D   T I L E", core.ColorBrightWhite)
	m.screen.DrawTextCentered(top+4, "find the tile that does not belong", core.ColorGray)
}

// drawHowTo draws the instructions page.
func (m Model) drawHowTo() {
	y := max(m.screen.Height()/2-len(howToPlay)/2-4, 0)
	m.screen.DrawTextCentered(y, "HOW TO PLAY", core.ColorBrightYellow)
	y += 2
	for _, line := range howToPlay {
		m.screen.DrawTextCentered(y, line, core.ColorDefault)
		y++
	}

	y++
	modes := ""
	for i, mode := range config.Modes() {
		if i > 0 {
			modes += "   "
		}
		modes += fmt.Sprintf("%s %ds", mode, int(mode.Duration(m.cfg.Modes).Seconds()))
	}
	m.screen.DrawTextCentered(y, modes, core.ColorCyan)
}

// drawDifficulty draws the difficulty carousel.
func (m Model) drawDifficulty() {
	h := m.screen.Height()
	m.screen.DrawTextCentered(h/2-5, "SELECT DIFFICULTY", core.ColorBrightYellow)

	mode := m.session.Proposed()
	secs := int(mode.Duration(m.cfg.Modes).Seconds())
	m.screen.DrawTextCentered(h/2+3, fmt.Sprintf("%d seconds on the clock", secs), core.ColorGray)
}

// drawConfirm draws the confirmation question.
func (m Model) drawConfirm() {
	h := m.screen.Height()
	m.screen.DrawTextCentered(h/2-2, m.session.Prompt(), core.ColorBrightWhite)
	if m.status != "" {
		m.screen.DrawTextCentered(h/2, m.status, core.ColorBrightRed)
	}
}
