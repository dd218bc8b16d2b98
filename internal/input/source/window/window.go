// Package window polls an ebiten window for input events.
//
// ebiten reports keys by physical position, so they map onto scancodes
// without consulting a layout. Poll must be called from the game's
// Update method, once per tick, since it relies on inpututil's
// per-tick transition tracking.
package window

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dshills/keybind/internal/input"
	"github.com/dshills/keybind/internal/input/mouse"
	"github.com/dshills/keybind/internal/input/scancode"
)

// Source collects the input transitions of one ebiten tick.
type Source struct {
	keys    []ebiten.Key
	buttons mouse.Mask
	closing bool
}

// NewSource creates a window source.
func NewSource() *Source {
	return &Source{keys: make([]ebiten.Key, 0, 8)}
}

// Poll appends the events of the current tick to dst: key releases, key
// presses, mouse button changes, wheel movement and a quit request when
// the window is being closed. Keys without a scancode are skipped.
func (s *Source) Poll(dst []input.Event) []input.Event {
	now := time.Now()

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if sc := Scancode(k); sc != scancode.Unknown {
			dst = append(dst, input.Event{Kind: input.KindKeyUp, Scancode: sc, Time: now})
		}
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if sc := Scancode(k); sc != scancode.Unknown {
			dst = append(dst, input.Event{Kind: input.KindKeyDown, Scancode: sc, Time: now})
		}
	}

	x, y := ebiten.CursorPosition()
	var cur mouse.Mask
	for _, bm := range buttonMap {
		if ebiten.IsMouseButtonPressed(bm.ebiten) {
			cur = cur.With(bm.button)
		}
	}
	pressed, released := cur.Diff(s.buttons)
	s.buttons = cur
	for _, b := range released.Buttons(nil) {
		dst = append(dst, input.Event{Kind: input.KindMouseButtonUp, Button: b, X: x, Y: y, Time: now})
	}
	for _, b := range pressed.Buttons(nil) {
		dst = append(dst, input.Event{Kind: input.KindMouseButtonDown, Button: b, X: x, Y: y, Time: now})
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		dst = append(dst, input.Event{Kind: input.KindMouseWheel, X: wheelStep(dx), Y: wheelStep(dy), Time: now})
	}

	if ebiten.IsWindowBeingClosed() && !s.closing {
		s.closing = true
		dst = append(dst, input.Event{Kind: input.KindQuit, Time: now})
	}
	return dst
}

// wheelStep rounds a wheel offset away from zero.
func wheelStep(v float64) int {
	if v < 0 {
		return int(math.Floor(v))
	}
	return int(math.Ceil(v))
}

// Scancode returns the scancode of an ebiten key, or scancode.Unknown.
func Scancode(k ebiten.Key) scancode.Scancode {
	return keyMap[k]
}

var buttonMap = []struct {
	ebiten ebiten.MouseButton
	button mouse.Button
}{
	{ebiten.MouseButtonLeft, mouse.ButtonLeft},
	{ebiten.MouseButtonMiddle, mouse.ButtonMiddle},
	{ebiten.MouseButtonRight, mouse.ButtonRight},
	{ebiten.MouseButton3, mouse.ButtonX1},
	{ebiten.MouseButton4, mouse.ButtonX2},
}

var keyMap = map[ebiten.Key]scancode.Scancode{
	ebiten.KeyA: scancode.A, ebiten.KeyB: scancode.B, ebiten.KeyC: scancode.C,
	ebiten.KeyD: scancode.D, ebiten.KeyE: scancode.E, ebiten.KeyF: scancode.F,
	ebiten.KeyG: scancode.G, ebiten.KeyH: scancode.H, ebiten.KeyI: scancode.I,
	ebiten.KeyJ: scancode.J, ebiten.KeyK: scancode.K, ebiten.KeyL: scancode.L,
	ebiten.KeyM: scancode.M, ebiten.KeyN: scancode.N, ebiten.KeyO: scancode.O,
	ebiten.KeyP: scancode.P, ebiten.KeyQ: scancode.Q, ebiten.KeyR: scancode.R,
	ebiten.KeyS: scancode.S, ebiten.KeyT: scancode.T, ebiten.KeyU: scancode.U,
	ebiten.KeyV: scancode.V, ebiten.KeyW: scancode.W, ebiten.KeyX: scancode.X,
	ebiten.KeyY: scancode.Y, ebiten.KeyZ: scancode.Z,

	ebiten.KeyDigit1: scancode.Num1, ebiten.KeyDigit2: scancode.Num2,
	ebiten.KeyDigit3: scancode.Num3, ebiten.KeyDigit4: scancode.Num4,
	ebiten.KeyDigit5: scancode.Num5, ebiten.KeyDigit6: scancode.Num6,
	ebiten.KeyDigit7: scancode.Num7, ebiten.KeyDigit8: scancode.Num8,
	ebiten.KeyDigit9: scancode.Num9, ebiten.KeyDigit0: scancode.Num0,

	ebiten.KeyEnter:        scancode.Return,
	ebiten.KeyEscape:       scancode.Escape,
	ebiten.KeyBackspace:    scancode.Backspace,
	ebiten.KeyTab:          scancode.Tab,
	ebiten.KeySpace:        scancode.Space,
	ebiten.KeyMinus:        scancode.Minus,
	ebiten.KeyEqual:        scancode.Equals,
	ebiten.KeyBracketLeft:  scancode.LeftBracket,
	ebiten.KeyBracketRight: scancode.RightBracket,
	ebiten.KeyBackslash:    scancode.Backslash,
	ebiten.KeySemicolon:    scancode.Semicolon,
	ebiten.KeyQuote:        scancode.Apostrophe,
	ebiten.KeyBackquote:    scancode.Grave,
	ebiten.KeyComma:        scancode.Comma,
	ebiten.KeyPeriod:       scancode.Period,
	ebiten.KeySlash:        scancode.Slash,
	ebiten.KeyCapsLock:     scancode.CapsLock,

	ebiten.KeyF1: scancode.F1, ebiten.KeyF2: scancode.F2, ebiten.KeyF3: scancode.F3,
	ebiten.KeyF4: scancode.F4, ebiten.KeyF5: scancode.F5, ebiten.KeyF6: scancode.F6,
	ebiten.KeyF7: scancode.F7, ebiten.KeyF8: scancode.F8, ebiten.KeyF9: scancode.F9,
	ebiten.KeyF10: scancode.F10, ebiten.KeyF11: scancode.F11, ebiten.KeyF12: scancode.F12,
	ebiten.KeyF13: scancode.F13, ebiten.KeyF14: scancode.F14, ebiten.KeyF15: scancode.F15,
	ebiten.KeyF16: scancode.F16, ebiten.KeyF17: scancode.F17, ebiten.KeyF18: scancode.F18,
	ebiten.KeyF19: scancode.F19, ebiten.KeyF20: scancode.F20, ebiten.KeyF21: scancode.F21,
	ebiten.KeyF22: scancode.F22, ebiten.KeyF23: scancode.F23, ebiten.KeyF24: scancode.F24,

	ebiten.KeyPrintScreen: scancode.PrintScreen,
	ebiten.KeyScrollLock:  scancode.ScrollLock,
	ebiten.KeyPause:       scancode.Pause,
	ebiten.KeyInsert:      scancode.Insert,
	ebiten.KeyHome:        scancode.Home,
	ebiten.KeyPageUp:      scancode.PageUp,
	ebiten.KeyDelete:      scancode.Delete,
	ebiten.KeyEnd:         scancode.End,
	ebiten.KeyPageDown:    scancode.PageDown,
	ebiten.KeyArrowRight:  scancode.Right,
	ebiten.KeyArrowLeft:   scancode.Left,
	ebiten.KeyArrowDown:   scancode.Down,
	ebiten.KeyArrowUp:     scancode.Up,

	ebiten.KeyNumLock:        scancode.NumLockClear,
	ebiten.KeyNumpadDivide:   scancode.KPDivide,
	ebiten.KeyNumpadMultiply: scancode.KPMultiply,
	ebiten.KeyNumpadSubtract: scancode.KPMinus,
	ebiten.KeyNumpadAdd:      scancode.KPPlus,
	ebiten.KeyNumpadEnter:    scancode.KPEnter,
	ebiten.KeyNumpad1:        scancode.KP1,
	ebiten.KeyNumpad2:        scancode.KP2,
	ebiten.KeyNumpad3:        scancode.KP3,
	ebiten.KeyNumpad4:        scancode.KP4,
	ebiten.KeyNumpad5:        scancode.KP5,
	ebiten.KeyNumpad6:        scancode.KP6,
	ebiten.KeyNumpad7:        scancode.KP7,
	ebiten.KeyNumpad8:        scancode.KP8,
	ebiten.KeyNumpad9:        scancode.KP9,
	ebiten.KeyNumpad0:        scancode.KP0,
	ebiten.KeyNumpadDecimal:  scancode.KPPeriod,
	ebiten.KeyNumpadEqual:    scancode.KPEquals,
	ebiten.KeyIntlBackslash:  scancode.NonUSBackslash,
	ebiten.KeyContextMenu:    scancode.Application,

	ebiten.KeyControlLeft:  scancode.LCtrl,
	ebiten.KeyShiftLeft:    scancode.LShift,
	ebiten.KeyAltLeft:      scancode.LAlt,
	ebiten.KeyMetaLeft:     scancode.LGUI,
	ebiten.KeyControlRight: scancode.RCtrl,
	ebiten.KeyShiftRight:   scancode.RShift,
	ebiten.KeyAltRight:     scancode.RAlt,
	ebiten.KeyMetaRight:    scancode.RGUI,
}
