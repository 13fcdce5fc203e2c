// Package tui provides the Bubble Tea front end for the odd-tile game.
// It maps keys and mouse events onto the game session, renders its state
// and serves the same UI over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval is the countdown resolution.
const tickInterval = time.Second

// TickMsg advances the countdown by one second. Gen identifies the game the
// tick was scheduled for; ticks from an earlier game are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd schedules the next countdown tick for game generation gen.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
