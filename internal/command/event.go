package command

import "fmt"

// EventKind tells key events from pointer events.
type EventKind int

const (
	EventKey EventKind = iota
	EventPointer
)

// PointerAction describes what a pointer did.
type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerDrag
	PointerRelease
	PointerOther
)

// PointerButton identifies the pointer button involved.
type PointerButton int

const (
	ButtonLeft PointerButton = iota
	ButtonOther
)

// Event is a decoded input event. Key uses the same names as bubbletea key
// messages ("a", "ctrl+c", "shift+left", " " for space). Pointer coordinates
// are view-space cells.
type Event struct {
	Kind   EventKind
	Key    string
	Action PointerAction
	Button PointerButton
	X, Y   int
}

// Key returns a key press event.
func Key(k string) Event { return Event{Kind: EventKey, Key: k} }

// Pointer returns a pointer event at view-space (x, y).
func Pointer(action PointerAction, button PointerButton, x, y int) Event {
	return Event{Kind: EventPointer, Action: action, Button: button, X: x, Y: y}
}

// String returns the key name so events work with key.Matches. Pointer events
// never match a key binding.
func (e Event) String() string {
	if e.Kind == EventKey {
		return e.Key
	}
	return fmt.Sprintf("pointer(%d,%d)", e.X, e.Y)
}
