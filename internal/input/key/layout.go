package key

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keybind/internal/input/scancode"
)

// ErrUnknownLayout is returned by LayoutByName for unrecognized names.
var ErrUnknownLayout = errors.New("unknown keyboard layout")

// Layout maps scancodes to the keys they produce.
type Layout struct {
	name string
	keys [scancode.Num]Key
}

// Predefined layouts.
var (
	// US is the default layout.
	US = newUSLayout()

	// AZERTY is the French layout.
	AZERTY = US.With("azerty", map[scancode.Scancode]Key{
		scancode.A: 'q', scancode.Q: 'a', scancode.W: 'z', scancode.Z: 'w',
		scancode.M: ',', scancode.Semicolon: 'm', scancode.Comma: ';',
		scancode.Period: ':', scancode.Slash: '!',
		scancode.Num1: '&', scancode.Num2: 'é', scancode.Num3: '"',
		scancode.Num4: '\'', scancode.Num5: '(', scancode.Num6: '-',
		scancode.Num7: 'è', scancode.Num8: '_', scancode.Num9: 'ç',
		scancode.Num0: 'à', scancode.Minus: ')', scancode.LeftBracket: '^',
		scancode.RightBracket: '$', scancode.Backslash: '*',
		scancode.Apostrophe: 'ù', scancode.Grave: '²',
	})

	// Dvorak is the US Dvorak simplified layout.
	Dvorak = US.With("dvorak", map[scancode.Scancode]Key{
		scancode.Q: '\'', scancode.W: ',', scancode.E: '.', scancode.R: 'p',
		scancode.T: 'y', scancode.Y: 'f', scancode.U: 'g', scancode.I: 'c',
		scancode.O: 'r', scancode.P: 'l', scancode.LeftBracket: '/',
		scancode.RightBracket: '=', scancode.S: 'o', scancode.D: 'e',
		scancode.F: 'u', scancode.G: 'i', scancode.H: 'd', scancode.J: 'h',
		scancode.K: 't', scancode.L: 'n', scancode.Semicolon: 's',
		scancode.Apostrophe: '-', scancode.Z: ';', scancode.X: 'q',
		scancode.C: 'j', scancode.V: 'k', scancode.B: 'x', scancode.N: 'b',
		scancode.Comma: 'w', scancode.Period: 'v', scancode.Slash: 'z',
		scancode.Minus: '[', scancode.Equals: ']',
	})
)

func newUSLayout() *Layout {
	l := &Layout{name: "us"}
	for sc := scancode.A; sc <= scancode.Z; sc++ {
		l.keys[sc] = Key('a' + rune(sc-scancode.A))
	}
	for sc := scancode.Num1; sc <= scancode.Num9; sc++ {
		l.keys[sc] = Key('1' + rune(sc-scancode.Num1))
	}
	l.keys[scancode.Num0] = '0'

	printable := map[scancode.Scancode]Key{
		scancode.Return:       Return,
		scancode.Escape:       Escape,
		scancode.Backspace:    Backspace,
		scancode.Tab:          Tab,
		scancode.Space:        Space,
		scancode.Minus:        '-',
		scancode.Equals:       '=',
		scancode.LeftBracket:  '[',
		scancode.RightBracket: ']',
		scancode.Backslash:    '\\',
		scancode.Semicolon:    ';',
		scancode.Apostrophe:   '\'',
		scancode.Grave:        '`',
		scancode.Comma:        ',',
		scancode.Period:       '.',
		scancode.Slash:        '/',
		scancode.Delete:       Delete,
	}
	for sc, k := range printable {
		l.keys[sc] = k
	}

	// Everything else that has a name is a glyph-less key. NonUSHash
	// produces nothing on this layout.
	for i := range l.keys {
		sc := scancode.Scancode(i)
		if l.keys[i] != None || sc == scancode.NonUSHash || sc.Name() == "" {
			continue
		}
		l.keys[i] = FromScancode(sc)
	}
	return l
}

// Name returns the layout identifier.
func (l *Layout) Name() string {
	return l.name
}

// Key returns the key sc produces, or None.
func (l *Layout) Key(sc scancode.Scancode) Key {
	if !sc.Valid() {
		return None
	}
	return l.keys[sc]
}

// Scancode returns the lowest scancode producing k, or scancode.Unknown.
func (l *Layout) Scancode(k Key) scancode.Scancode {
	if k == None {
		return scancode.Unknown
	}
	for i := range l.keys {
		if l.keys[i] == k {
			return scancode.Scancode(i)
		}
	}
	return scancode.Unknown
}

// With returns a copy of l with the given scancodes remapped.
// Invalid scancodes in overrides are ignored.
func (l *Layout) With(name string, overrides map[scancode.Scancode]Key) *Layout {
	derived := &Layout{name: name, keys: l.keys}
	for sc, k := range overrides {
		if sc.Valid() {
			derived.keys[sc] = k
		}
	}
	return derived
}

// LayoutByName returns a predefined layout.
func LayoutByName(name string) (*Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "us", "qwerty":
		return US, nil
	case "azerty", "fr":
		return AZERTY, nil
	case "dvorak":
		return Dvorak, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}
