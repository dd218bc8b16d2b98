package scancode

import "fmt"

// Scancode identifies one physical key position.
type Scancode int

// Num is the number of scancodes. Valid scancodes are in [0, Num).
const Num = 512

// Unknown is the sentinel for an unresolved scancode.
const Unknown Scancode = 0

// Letters.
const (
	A Scancode = iota + 4
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
)

// Digit row.
const (
	Num1 Scancode = iota + 30
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
	Num0
)

// Editing and punctuation keys.
const (
	Return Scancode = iota + 40
	Escape
	Backspace
	Tab
	Space
	Minus
	Equals
	LeftBracket
	RightBracket
	Backslash
	NonUSHash
	Semicolon
	Apostrophe
	Grave
	Comma
	Period
	Slash
	CapsLock
)

// Function keys F1-F12.
const (
	F1 Scancode = iota + 58
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

// Navigation block.
const (
	PrintScreen Scancode = iota + 70
	ScrollLock
	Pause
	Insert
	Home
	PageUp
	Delete
	End
	PageDown
	Right
	Left
	Down
	Up
)

// Keypad.
const (
	NumLockClear Scancode = iota + 83
	KPDivide
	KPMultiply
	KPMinus
	KPPlus
	KPEnter
	KP1
	KP2
	KP3
	KP4
	KP5
	KP6
	KP7
	KP8
	KP9
	KP0
	KPPeriod
	NonUSBackslash
	Application
	Power
	KPEquals
)

// Function keys F13-F24.
const (
	F13 Scancode = iota + 104
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
)

// Modifiers.
const (
	LCtrl Scancode = iota + 224
	LShift
	LAlt
	LGUI
	RCtrl
	RShift
	RAlt
	RGUI
)

// Mode switch and media keys.
const (
	Mute       Scancode = 127
	VolumeUp   Scancode = 128
	VolumeDown Scancode = 129
	ModeSwitch Scancode = 257
	AudioNext  Scancode = 258
	AudioPrev  Scancode = 259
	AudioStop  Scancode = 260
	AudioPlay  Scancode = 261
	AudioMute  Scancode = 262
)

// Valid reports whether s is inside [0, Num).
func (s Scancode) Valid() bool {
	return s >= 0 && s < Num
}

// Name returns the layout-independent name of s, or "" if it has none.
func (s Scancode) Name() string {
	if s < 0 || int(s) >= len(names) {
		return ""
	}
	return names[s]
}

// String returns the name of s, or a numeric form for unnamed scancodes.
func (s Scancode) String() string {
	if s == Unknown {
		return "Unknown"
	}
	if n := s.Name(); n != "" {
		return n
	}
	return fmt.Sprintf("Scancode(%d)", int(s))
}
