package binding

import "errors"

// Binding errors.
var (
	// ErrScancodeRange is returned when a scancode is outside
	// [0, scancode.Num).
	ErrScancodeRange = errors.New("scancode out of range")

	// ErrMouseButtonRange is returned when a mouse button is outside
	// [0, mouse.MaxButtons).
	ErrMouseButtonRange = errors.New("mouse button out of range")
)
