package key

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/keybind/internal/input/scancode"
)

// Key identifies a key by the symbol a layout assigns to it.
type Key int32

// None is the absent key.
const None Key = 0

// scancodeMask marks keys that have no glyph and are named by their
// scancode.
const scancodeMask Key = 1 << 30

// Keys with a control-character code point.
const (
	Backspace Key = '\b'
	Tab       Key = '\t'
	Return    Key = '\r'
	Escape    Key = 0x1b
	Space     Key = ' '
	Delete    Key = 0x7f
)

// Keys named by their scancode.
const (
	CapsLock    = Key(scancode.CapsLock) | scancodeMask
	F1          = Key(scancode.F1) | scancodeMask
	F2          = Key(scancode.F2) | scancodeMask
	F3          = Key(scancode.F3) | scancodeMask
	F4          = Key(scancode.F4) | scancodeMask
	F5          = Key(scancode.F5) | scancodeMask
	F6          = Key(scancode.F6) | scancodeMask
	F7          = Key(scancode.F7) | scancodeMask
	F8          = Key(scancode.F8) | scancodeMask
	F9          = Key(scancode.F9) | scancodeMask
	F10         = Key(scancode.F10) | scancodeMask
	F11         = Key(scancode.F11) | scancodeMask
	F12         = Key(scancode.F12) | scancodeMask
	PrintScreen = Key(scancode.PrintScreen) | scancodeMask
	ScrollLock  = Key(scancode.ScrollLock) | scancodeMask
	Pause       = Key(scancode.Pause) | scancodeMask
	Insert      = Key(scancode.Insert) | scancodeMask
	Home        = Key(scancode.Home) | scancodeMask
	PageUp      = Key(scancode.PageUp) | scancodeMask
	End         = Key(scancode.End) | scancodeMask
	PageDown    = Key(scancode.PageDown) | scancodeMask
	Right       = Key(scancode.Right) | scancodeMask
	Left        = Key(scancode.Left) | scancodeMask
	Down        = Key(scancode.Down) | scancodeMask
	Up          = Key(scancode.Up) | scancodeMask
	LCtrl       = Key(scancode.LCtrl) | scancodeMask
	LShift      = Key(scancode.LShift) | scancodeMask
	LAlt        = Key(scancode.LAlt) | scancodeMask
	RCtrl       = Key(scancode.RCtrl) | scancodeMask
	RShift      = Key(scancode.RShift) | scancodeMask
	RAlt        = Key(scancode.RAlt) | scancodeMask
)

// FromScancode returns the glyph-less key named after sc.
func FromScancode(sc scancode.Scancode) Key {
	return Key(sc) | scancodeMask
}

// FromName returns the key for a name, compared case-insensitively.
// A single character names itself; longer names are scancode names
// resolved through the US layout. Unknown names yield None.
func FromName(name string) Key {
	if name == "" {
		return None
	}
	r, size := utf8.DecodeRuneInString(name)
	if size == len(name) && r != utf8.RuneError {
		return Key(unicode.ToLower(r))
	}
	sc := scancode.FromName(name)
	if sc == scancode.Unknown {
		return None
	}
	return US.Key(sc)
}

// Name returns the human-readable name of k, or "" for None.
func (k Key) Name() string {
	switch k {
	case None:
		return ""
	case Backspace:
		return "Backspace"
	case Tab:
		return "Tab"
	case Return:
		return "Return"
	case Escape:
		return "Escape"
	case Space:
		return "Space"
	case Delete:
		return "Delete"
	}
	if k&scancodeMask != 0 {
		return scancode.Scancode(k &^ scancodeMask).Name()
	}
	return string(unicode.ToUpper(rune(k)))
}

// String returns the key name, or a numeric form for keys without one.
func (k Key) String() string {
	if n := k.Name(); n != "" {
		return n
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// ScancodeFromName resolves a key name to the scancode that produces it
// on the given layout. It returns scancode.Unknown when the name is
// unknown or the layout has no key producing it.
func ScancodeFromName(name string, l *Layout) scancode.Scancode {
	return l.Scancode(FromName(name))
}
