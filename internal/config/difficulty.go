package config

import (
	"fmt"
	"strings"
	"time"
)

// Mode is a difficulty tier. Each mode has a fixed countdown.
type Mode string

const (
	ModeEasy   Mode = "EASY"
	ModeMedium Mode = "MEDIUM"
	ModeHard   Mode = "HARD"
)

// modeOrder is the carousel order of the difficulty screen.
var modeOrder = []Mode{ModeEasy, ModeMedium, ModeHard}

// Modes returns all modes in menu order.
func Modes() []Mode {
	out := make([]Mode, len(modeOrder))
	copy(out, modeOrder)
	return out
}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
	return m, nil
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m.index() >= 0
}

func (m Mode) index() int {
	for i, o := range modeOrder {
		if o == m {
			return i
		}
	}
	return -1
}

// Next returns the following mode, wrapping HARD around to EASY.
func (m Mode) Next() Mode {
	i := m.index()
	if i < 0 {
		return ModeEasy
	}
	return modeOrder[(i+1)%len(modeOrder)]
}

// Prev returns the preceding mode, wrapping EASY around to HARD.
func (m Mode) Prev() Mode {
	i := m.index()
	if i < 0 {
		return ModeEasy
	}
	return modeOrder[(i+len(modeOrder)-1)%len(modeOrder)]
}

// Duration returns the countdown for the mode under the given config.
func (m Mode) Duration(c ModesConfig) time.Duration {
	var secs int
	switch m {
	case ModeEasy:
		secs = c.EasySeconds
	case ModeMedium:
		secs = c.MediumSeconds
	case ModeHard:
		secs = c.HardSeconds
	}
	return time.Duration(secs) * time.Second
}

// Title returns the mode as shown on the confirmation screen.
func (m Mode) Title() string {
	return string(m)
}
