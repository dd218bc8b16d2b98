package script

import "errors"

// Script errors.
var (
	// ErrEngineClosed is returned when using a closed engine.
	ErrEngineClosed = errors.New("script engine is closed")

	// ErrNotFunction is returned when a global is missing or not a function.
	ErrNotFunction = errors.New("not a lua function")
)
