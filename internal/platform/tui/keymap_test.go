package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/oddtile/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("q"), core.ActionQuit},
		{runes("y"), core.ActionYes},
		{runes("n"), core.ActionNo},
		{runes("h"), core.ActionLeft},
		{runes("x"), core.ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, km.MapKey(tt.msg), "key %q", tt.msg.String())
	}
}

func TestFilterNameKey(t *testing.T) {
	got, ok := FilterNameKey(runes("a"))
	assert.True(t, ok)
	assert.Equal(t, []rune("A"), got.Runes)

	got, ok = FilterNameKey(runes("b2c!"))
	assert.True(t, ok)
	assert.Equal(t, []rune("BC"), got.Runes)

	_, ok = FilterNameKey(runes("7"))
	assert.False(t, ok, "digits are dropped")

	_, ok = FilterNameKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, ok, "space is dropped")

	back := tea.KeyMsg{Type: tea.KeyBackspace}
	got, ok = FilterNameKey(back)
	assert.True(t, ok, "editing keys pass through")
	assert.Equal(t, back, got)
}

func TestPointerEvent(t *testing.T) {
	ev, ok := pointerEvent(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, ok)
	assert.Equal(t, core.PointerEvent{Kind: core.PointerPress, X: 3, Y: 4}, ev)

	_, ok = pointerEvent(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, ok, "only the left button clicks")

	ev, ok = pointerEvent(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionMotion})
	assert.True(t, ok)
	assert.Equal(t, core.PointerMotion, ev.Kind)

	ev, ok = pointerEvent(tea.MouseMsg{Action: tea.MouseActionRelease})
	assert.True(t, ok)
	assert.Equal(t, core.PointerRelease, ev.Kind)
}
