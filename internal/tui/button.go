package tui

import (
	"time"

	"github.com/coder/quartz"

	"github.com/lox/casino21/internal/game"
)

// Button is an on-screen control bound to one game action.
// Pressing it lights it up for the flash duration.
type Button struct {
	Label  string
	Action game.Action

	clock     quartz.Clock
	flash     time.Duration
	pressed   bool
	pressedAt time.Time
}

// NewButton creates a released button
func NewButton(label string, action game.Action, clock quartz.Clock, flash time.Duration) *Button {
	return &Button{
		Label:  label,
		Action: action,
		clock:  clock,
		flash:  flash,
	}
}

// Press lights the button and records when it happened
func (b *Button) Press() {
	b.pressed = true
	b.pressedAt = b.clock.Now()
}

// Update releases the button once the flash has elapsed
func (b *Button) Update() {
	if b.pressed && b.clock.Since(b.pressedAt) >= b.flash {
		b.pressed = false
	}
}

// Pressed reports whether the button is still lit
func (b *Button) Pressed() bool {
	return b.pressed
}

// Render draws the button for its current state
func (b *Button) Render(focused, disabled bool) string {
	style := ButtonStyle
	switch {
	case disabled:
		style = DisabledButtonStyle
	case b.pressed:
		style = PressedButtonStyle
	case focused:
		style = FocusedButtonStyle
	}
	return style.Render(b.Label)
}

// zone is a clickable screen rectangle, inclusive of x0/y0 and exclusive of x1/y1
type zone struct {
	x0, y0, x1, y1 int
}

func (z zone) contains(x, y int) bool {
	return x >= z.x0 && x < z.x1 && y >= z.y0 && y < z.y1
}
