package ui

import (
	"image"
	"time"
)

// Toolbar geometry. The strip sits above the grid, so every grid click must
// subtract ToolbarHeight before mapping pixels to cells.
const (
	ToolbarHeight = 30

	buttonWidth  = 80
	buttonHeight = 25
	buttonPadX   = 10
	buttonPadY   = 5
)

// FlashDuration is how long a clicked button stays highlighted.
const FlashDuration = 200 * time.Millisecond

// Command identifies a toolbar action.
type Command int

const (
	// CmdNone means the click hit no button.
	CmdNone Command = iota
	// CmdStart begins the simulation.
	CmdStart
	// CmdPause suspends the simulation.
	CmdPause
	// CmdEnd stops the simulation and clears the board.
	CmdEnd
)

// Button pairs a toolbar command with its label and screen rectangle.
type Button struct {
	Label string
	Cmd   Command
	Rect  image.Rectangle
}

// Toolbar owns the button row and the transient click-flash state.
type Toolbar struct {
	buttons    []Button
	flashUntil map[Command]time.Time
}

// NewToolbar lays out the Start/Pause/End buttons left to right.
func NewToolbar() *Toolbar {
	labels := []struct {
		label string
		cmd   Command
	}{
		{"Start", CmdStart},
		{"Pause", CmdPause},
		{"End", CmdEnd},
	}
	buttons := make([]Button, len(labels))
	for i, l := range labels {
		x := (i+1)*buttonPadX + i*buttonWidth
		buttons[i] = Button{
			Label: l.label,
			Cmd:   l.cmd,
			Rect:  image.Rect(x, buttonPadY, x+buttonWidth, buttonPadY+buttonHeight),
		}
	}
	return &Toolbar{buttons: buttons, flashUntil: map[Command]time.Time{}}
}

// Buttons returns the laid-out button row.
func (t *Toolbar) Buttons() []Button { return t.buttons }

// HitTest returns the command for the button containing (x, y), or CmdNone.
func (t *Toolbar) HitTest(x, y int) Command {
	p := image.Pt(x, y)
	for _, b := range t.buttons {
		if p.In(b.Rect) {
			return b.Cmd
		}
	}
	return CmdNone
}

// Click resolves a toolbar click and flashes the hit button.
func (t *Toolbar) Click(x, y int) Command {
	cmd := t.HitTest(x, y)
	if cmd != CmdNone {
		t.flashUntil[cmd] = time.Now().Add(FlashDuration)
	}
	return cmd
}

// Flashing reports whether the button for cmd is inside its flash window.
func (t *Toolbar) Flashing(cmd Command) bool {
	return time.Now().Before(t.flashUntil[cmd])
}
