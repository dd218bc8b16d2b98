package binding

import (
	"fmt"

	"github.com/dshills/keybind/internal/input"
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/mouse"
	"github.com/dshills/keybind/internal/input/scancode"
	"github.com/dshills/keybind/internal/logging"
)

// Table maps scancodes and mouse buttons to listeners and dispatches
// input events to them. The zero value is not usable; use NewTable.
type Table struct {
	keys  [scancode.Num]Listener
	mouse [mouse.MaxButtons]Listener

	layout *key.Layout
	logger *logging.Logger
	stats  Stats
}

// Option configures a Table.
type Option func(*Table)

// WithLayout sets the layout BindKeyByKeyName resolves names through.
func WithLayout(l *key.Layout) Option {
	return func(t *Table) {
		if l != nil {
			t.layout = l
		}
	}
}

// WithLogger sets the logger for bind operations. Dispatch never logs.
func WithLogger(l *logging.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTable creates a table with every slot unbound.
func NewTable(opts ...Option) *Table {
	t := &Table{
		layout: key.US,
		logger: logging.NullLogger,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.WithComponent("binding")
	return t
}

// Layout returns the layout used by BindKeyByKeyName.
func (t *Table) Layout() *key.Layout {
	return t.layout
}

// ResetBindings unbinds every key and mouse button.
func (t *Table) ResetBindings() {
	clear(t.keys[:])
	clear(t.mouse[:])
	t.logger.Debug("all bindings reset")
}

// BindKey binds l to a scancode, replacing any listener already there.
// A nil l unbinds the key. The same listener may be bound to any number
// of keys and buttons.
func (t *Table) BindKey(sc scancode.Scancode, l Listener) error {
	if !sc.Valid() {
		return fmt.Errorf("%w: %d", ErrScancodeRange, int(sc))
	}
	l = normalize(l)
	t.keys[sc] = l
	if l == nil {
		t.logger.Debug("unbound key %v", sc)
	} else {
		t.logger.Debug("bound key %v", sc)
	}
	return nil
}

// BindKeyByName resolves keyname with scancode.Parse and binds it.
func (t *Table) BindKeyByName(keyname string, l Listener) error {
	return t.bindResolved(keyname, scancode.Parse(keyname), l)
}

// BindKeyByKeyName resolves keyname as a key name and binds the
// scancode that produces that key on the table's layout.
func (t *Table) BindKeyByKeyName(keyname string, l Listener) error {
	return t.bindResolved(keyname, key.ScancodeFromName(keyname, t.layout), l)
}

// BindKeyByScancodeName resolves keyname as a scancode name and binds it.
func (t *Table) BindKeyByScancodeName(keyname string, l Listener) error {
	return t.bindResolved(keyname, scancode.FromName(keyname), l)
}

func (t *Table) bindResolved(keyname string, sc scancode.Scancode, l Listener) error {
	if sc == scancode.Unknown {
		t.logger.Warn("key %q did not resolve; binding unknown scancode", keyname)
	}
	return t.BindKey(sc, l)
}

// UnbindKey removes the binding for a scancode.
func (t *Table) UnbindKey(sc scancode.Scancode) error {
	return t.BindKey(sc, nil)
}

// BindMouseButton binds l to a mouse button, replacing any listener
// already there. A nil l unbinds the button.
func (t *Table) BindMouseButton(b mouse.Button, l Listener) error {
	if !b.Valid() {
		return fmt.Errorf("%w: %d", ErrMouseButtonRange, b)
	}
	l = normalize(l)
	t.mouse[b] = l
	if l == nil {
		t.logger.Debug("unbound mouse button %v", b)
	} else {
		t.logger.Debug("bound mouse button %v", b)
	}
	return nil
}

// UnbindMouseButton removes the binding for a mouse button.
func (t *Table) UnbindMouseButton(b mouse.Button) error {
	return t.BindMouseButton(b, nil)
}

// KeyListener returns the listener bound to sc, or nil.
func (t *Table) KeyListener(sc scancode.Scancode) Listener {
	if !sc.Valid() {
		return nil
	}
	return t.keys[sc]
}

// MouseListener returns the listener bound to b, or nil.
func (t *Table) MouseListener(b mouse.Button) Listener {
	if !b.Valid() {
		return nil
	}
	return t.mouse[b]
}

// BoundKeys returns the bound scancodes in ascending order.
func (t *Table) BoundKeys() []scancode.Scancode {
	var out []scancode.Scancode
	for i := range t.keys {
		if t.keys[i] != nil {
			out = append(out, scancode.Scancode(i))
		}
	}
	return out
}

// BoundMouseButtons returns the bound mouse buttons in ascending order.
func (t *Table) BoundMouseButtons() []mouse.Button {
	var out []mouse.Button
	for i := range t.mouse {
		if t.mouse[i] != nil {
			out = append(out, mouse.Button(i))
		}
	}
	return out
}

// FireEvent dispatches ev to the listener bound to its key or mouse
// button. Presses report active, releases inactive. Unbound slots,
// out-of-range identifiers and every other kind of event are ignored, so
// FireEvent can be handed every event a source produces.
func (t *Table) FireEvent(ev input.Event) {
	var l Listener
	switch ev.Kind {
	case input.KindKeyDown, input.KindKeyUp:
		t.stats.KeyEvents++
		if !ev.Scancode.Valid() {
			t.stats.OutOfRange++
			return
		}
		l = t.keys[ev.Scancode]
	case input.KindMouseButtonDown, input.KindMouseButtonUp:
		t.stats.MouseEvents++
		if !ev.Button.Valid() {
			t.stats.OutOfRange++
			return
		}
		l = t.mouse[ev.Button]
	default:
		t.stats.Ignored++
		return
	}
	if l == nil {
		t.stats.Unbound++
		return
	}
	t.stats.Dispatched++
	l.OnControlChange(ev.Active())
}
