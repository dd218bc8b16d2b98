// Package terminal turns tcell terminal events into input events.
//
// Terminals report key presses but not releases, so every key press is
// translated into a key-down immediately followed by a key-up. Controls
// bound through a terminal therefore see taps, never holds. Mouse
// buttons are tracked through the button mask tcell reports and do
// produce separate presses and releases.
package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/internal/input"
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/mouse"
	"github.com/dshills/keybind/internal/input/scancode"
)

// Translator converts tcell events. It remembers the last mouse button
// mask, so one Translator must see every event of its screen in order.
type Translator struct {
	layout  *key.Layout
	buttons mouse.Mask
}

// NewTranslator creates a translator resolving runes through layout.
// A nil layout means key.US.
func NewTranslator(layout *key.Layout) *Translator {
	if layout == nil {
		layout = key.US
	}
	return &Translator{layout: layout}
}

// Translate appends the input events ev stands for to dst. Keys that map
// to no scancode are dropped; events of other types become a single
// KindNone event.
func (t *Translator) Translate(ev tcell.Event, dst []input.Event) []input.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		sc := t.Scancode(e)
		if sc == scancode.Unknown {
			return dst
		}
		return append(dst,
			input.Event{Kind: input.KindKeyDown, Scancode: sc, Time: e.When()},
			input.Event{Kind: input.KindKeyUp, Scancode: sc, Time: e.When()},
		)

	case *tcell.EventMouse:
		return t.translateMouse(e, dst)

	case *tcell.EventResize:
		w, h := e.Size()
		return append(dst, input.Event{Kind: input.KindResize, X: w, Y: h, Time: e.When()})

	case nil:
		return dst

	default:
		return append(dst, input.Event{Kind: input.KindNone, Time: ev.When()})
	}
}

// Scancode returns the scancode of the physical key most likely to have
// produced e, or scancode.Unknown.
func (t *Translator) Scancode(e *tcell.EventKey) scancode.Scancode {
	if k, ok := namedKeys[e.Key()]; ok {
		return t.layout.Scancode(k)
	}

	if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ {
		return t.layout.Scancode(key.Key('a' + rune(e.Key()-tcell.KeyCtrlA)))
	}

	if e.Key() != tcell.KeyRune {
		return scancode.Unknown
	}

	r := unicode.ToLower(e.Rune())
	if sc := t.layout.Scancode(key.Key(r)); sc != scancode.Unknown {
		return sc
	}
	if t.layout == key.US {
		if base, ok := shiftedUS[r]; ok {
			return t.layout.Scancode(key.Key(base))
		}
	}
	return scancode.Unknown
}

func (t *Translator) translateMouse(e *tcell.EventMouse, dst []input.Event) []input.Event {
	x, y := e.Position()
	tb := e.Buttons()

	var cur mouse.Mask
	for _, bm := range buttonMap {
		if tb&bm.tcell != 0 {
			cur = cur.With(bm.button)
		}
	}

	pressed, released := cur.Diff(t.buttons)
	t.buttons = cur

	n := len(dst)
	for _, b := range released.Buttons(nil) {
		dst = append(dst, input.Event{Kind: input.KindMouseButtonUp, Button: b, X: x, Y: y, Time: e.When()})
	}
	for _, b := range pressed.Buttons(nil) {
		dst = append(dst, input.Event{Kind: input.KindMouseButtonDown, Button: b, X: x, Y: y, Time: e.When()})
	}

	if dx, dy := wheelDelta(tb); dx != 0 || dy != 0 {
		dst = append(dst, input.Event{Kind: input.KindMouseWheel, X: dx, Y: dy, Time: e.When()})
	}

	if len(dst) == n {
		dst = append(dst, input.Event{Kind: input.KindMouseMotion, X: x, Y: y, Time: e.When()})
	}
	return dst
}

func wheelDelta(b tcell.ButtonMask) (dx, dy int) {
	if b&tcell.WheelUp != 0 {
		dy++
	}
	if b&tcell.WheelDown != 0 {
		dy--
	}
	if b&tcell.WheelRight != 0 {
		dx++
	}
	if b&tcell.WheelLeft != 0 {
		dx--
	}
	return dx, dy
}

// buttonMap maps tcell buttons to mouse buttons. tcell numbers the
// secondary (right) button before the middle one.
var buttonMap = []struct {
	tcell  tcell.ButtonMask
	button mouse.Button
}{
	{tcell.Button1, mouse.ButtonLeft},
	{tcell.Button3, mouse.ButtonMiddle},
	{tcell.Button2, mouse.ButtonRight},
	{tcell.Button4, mouse.ButtonX1},
	{tcell.Button5, mouse.ButtonX2},
	{tcell.Button6, mouse.Button(6)},
	{tcell.Button7, mouse.Button(7)},
	{tcell.Button8, mouse.Button(8)},
}

var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.Return,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBacktab:    key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyEscape:     key.Escape,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyInsert:     key.Insert,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.Up,
	tcell.KeyDown:       key.Down,
	tcell.KeyLeft:       key.Left,
	tcell.KeyRight:      key.Right,
	tcell.KeyPrint:      key.PrintScreen,
	tcell.KeyPause:      key.Pause,
	tcell.KeyF1:         key.F1,
	tcell.KeyF2:         key.F2,
	tcell.KeyF3:         key.F3,
	tcell.KeyF4:         key.F4,
	tcell.KeyF5:         key.F5,
	tcell.KeyF6:         key.F6,
	tcell.KeyF7:         key.F7,
	tcell.KeyF8:         key.F8,
	tcell.KeyF9:         key.F9,
	tcell.KeyF10:        key.F10,
	tcell.KeyF11:        key.F11,
	tcell.KeyF12:        key.F12,
}

// shiftedUS maps shifted US symbols to the key that produces them.
var shiftedUS = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '~': '`', '<': ',', '>': '.', '?': '/',
}
