package mouse

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaxButtons is the number of addressable buttons. Valid buttons are in
// [0, MaxButtons).
const MaxButtons = 32

// ErrUnknownButton is returned by ParseButton for unrecognized names.
var ErrUnknownButton = errors.New("unknown mouse button")

// Button is a mouse button index.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonX1 is the back navigation button.
	ButtonX1
	// ButtonX2 is the forward navigation button.
	ButtonX2
)

// Valid reports whether b is inside [0, MaxButtons).
func (b Button) Valid() bool {
	return b < MaxButtons
}

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	default:
		return "button" + strconv.Itoa(int(b))
	}
}

// ParseButton resolves a button name. It accepts the names returned by
// String, the aliases "back" and "forward", and a numeric index written
// as "7", "button7" or "button 7".
func ParseButton(name string) (Button, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "left":
		return ButtonLeft, nil
	case "middle":
		return ButtonMiddle, nil
	case "right":
		return ButtonRight, nil
	case "x1", "back":
		return ButtonX1, nil
	case "x2", "forward":
		return ButtonX2, nil
	}

	n = strings.TrimSpace(strings.TrimPrefix(n, "button"))
	v, err := strconv.ParseUint(n, 10, 8)
	if err != nil || v >= MaxButtons {
		return ButtonNone, fmt.Errorf("%w: %q", ErrUnknownButton, name)
	}
	return Button(v), nil
}

// Mask is a set of held buttons; bit b is set while button b is down.
type Mask uint32

// MaskOf returns the mask holding only b. Buttons outside
// [0, MaxButtons) yield an empty mask.
func MaskOf(b Button) Mask {
	if !b.Valid() {
		return 0
	}
	return 1 << b
}

// Has reports whether b is held in m.
func (m Mask) Has(b Button) bool {
	return m&MaskOf(b) != 0
}

// With returns m with b held.
func (m Mask) With(b Button) Mask {
	return m | MaskOf(b)
}

// Without returns m with b released.
func (m Mask) Without(b Button) Mask {
	return m &^ MaskOf(b)
}

// Diff compares m against an earlier mask and returns the buttons that
// went down and the buttons that came up in between.
func (m Mask) Diff(prev Mask) (pressed, released Mask) {
	changed := m ^ prev
	return changed & m, changed & prev
}

// Buttons appends the held buttons to dst in ascending order.
func (m Mask) Buttons(dst []Button) []Button {
	for rest := uint32(m); rest != 0; rest &= rest - 1 {
		dst = append(dst, Button(bits.TrailingZeros32(rest)))
	}
	return dst
}
