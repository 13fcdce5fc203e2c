package tui

import (
	"github.com/vovakirdan/oddtile/internal/core"
)

// ButtonState is the interaction state of a button. The renderer picks the
// look from it; game logic never reads it.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonHovered
	ButtonPressed
)

// String returns a human-readable name for the state.
func (s ButtonState) String() string {
	switch s {
	case ButtonIdle:
		return "Idle"
	case ButtonHovered:
		return "Hovered"
	case ButtonPressed:
		return "Pressed"
	default:
		return "Unknown"
	}
}

// Button is a clickable label. Activating it performs Action.
type Button struct {
	Label  string
	Action core.Action
	Rect   core.Rect
	State  ButtonState
}

// NewButton creates a boxed button centered on (cx, y).
func NewButton(label string, action core.Action, cx, y int) *Button {
	w := len([]rune(label)) + 4
	return &Button{
		Label:  label,
		Action: action,
		Rect:   core.NewRect(cx-w/2, y, w, 3),
	}
}

// HandlePointer updates the button state and reports whether the event
// activated it. A press arms the button; the release must land on it too.
func (b *Button) HandlePointer(ev core.PointerEvent) bool {
	over := b.Rect.Contains(ev.X, ev.Y)
	switch ev.Kind {
	case core.PointerMotion:
		switch {
		case !over:
			b.State = ButtonIdle
		case b.State != ButtonPressed:
			b.State = ButtonHovered
		}
	case core.PointerPress:
		if over {
			b.State = ButtonPressed
		} else {
			b.State = ButtonIdle
		}
	case core.PointerRelease:
		armed := b.State == ButtonPressed
		if over {
			b.State = ButtonHovered
		} else {
			b.State = ButtonIdle
		}
		return armed && over
	}
	return false
}

// Color returns the color used to draw the button in its current state.
func (b *Button) Color() core.Color {
	switch b.State {
	case ButtonHovered:
		return core.ColorBrightCyan
	case ButtonPressed:
		return core.ColorBrightYellow
	default:
		return core.ColorWhite
	}
}

// Draw renders the button box and label.
func (b *Button) Draw(dst *core.Screen) {
	c := b.Color()
	dst.DrawBox(b.Rect, c)
	dst.DrawCentered(b.Rect, b.Label, c)
}
