package input

import (
	"time"

	"github.com/dshills/keybind/internal/input/mouse"
	"github.com/dshills/keybind/internal/input/scancode"
)

// Kind classifies an input event.
type Kind uint8

const (
	// KindNone is an event nothing reacts to.
	KindNone Kind = iota
	// KindKeyDown indicates a key was pressed.
	KindKeyDown
	// KindKeyUp indicates a key was released.
	KindKeyUp
	// KindMouseButtonDown indicates a mouse button was pressed.
	KindMouseButtonDown
	// KindMouseButtonUp indicates a mouse button was released.
	KindMouseButtonUp
	// KindMouseMotion indicates the pointer moved.
	KindMouseMotion
	// KindMouseWheel indicates the wheel turned.
	KindMouseWheel
	// KindResize indicates the output surface changed size.
	KindResize
	// KindQuit indicates the user asked to close the program.
	KindQuit
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	case KindMouseButtonDown:
		return "mouse-down"
	case KindMouseButtonUp:
		return "mouse-up"
	case KindMouseMotion:
		return "mouse-motion"
	case KindMouseWheel:
		return "mouse-wheel"
	case KindResize:
		return "resize"
	case KindQuit:
		return "quit"
	default:
		return "none"
	}
}

// IsKey reports whether k is a key press or release.
func (k Kind) IsKey() bool {
	return k == KindKeyDown || k == KindKeyUp
}

// IsMouseButton reports whether k is a mouse button press or release.
func (k Kind) IsMouseButton() bool {
	return k == KindMouseButtonDown || k == KindMouseButtonUp
}

// Event is one raw input event.
type Event struct {
	// Kind is the type of event.
	Kind Kind

	// Scancode is the key involved, for key events.
	Scancode scancode.Scancode

	// Button is the mouse button involved, for mouse button events.
	Button mouse.Button

	// X and Y are the pointer position for mouse events, the new size
	// for resize events and the wheel delta for wheel events.
	X, Y int

	// Time is when the event occurred.
	Time time.Time
}

// Active reports whether e turns its source on: true for presses,
// false for everything else.
func (e Event) Active() bool {
	return e.Kind == KindKeyDown || e.Kind == KindMouseButtonDown
}

// KeyDown returns a key press event.
func KeyDown(sc scancode.Scancode) Event {
	return Event{Kind: KindKeyDown, Scancode: sc}
}

// KeyUp returns a key release event.
func KeyUp(sc scancode.Scancode) Event {
	return Event{Kind: KindKeyUp, Scancode: sc}
}

// MouseDown returns a mouse button press event.
func MouseDown(b mouse.Button) Event {
	return Event{Kind: KindMouseButtonDown, Button: b}
}

// MouseUp returns a mouse button release event.
func MouseUp(b mouse.Button) Event {
	return Event{Kind: KindMouseButtonUp, Button: b}
}
