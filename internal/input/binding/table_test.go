package binding

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/keybind/internal/input"
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/mouse"
	"github.com/dshills/keybind/internal/input/scancode"
	"github.com/dshills/keybind/internal/logging"
)

// recorder records every state change it receives.
type recorder struct {
	calls []bool
}

func (r *recorder) OnControlChange(active bool) {
	r.calls = append(r.calls, active)
}

func (r *recorder) assert(t *testing.T, want ...bool) {
	t.Helper()
	if len(want) == 0 && len(r.calls) == 0 {
		return
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}

func TestNewTableIsEmpty(t *testing.T) {
	tbl := NewTable()
	if keys := tbl.BoundKeys(); len(keys) != 0 {
		t.Errorf("BoundKeys() = %v, want none", keys)
	}
	if buttons := tbl.BoundMouseButtons(); len(buttons) != 0 {
		t.Errorf("BoundMouseButtons() = %v, want none", buttons)
	}
	if tbl.Layout() != key.US {
		t.Errorf("Layout() = %s, want us", tbl.Layout().Name())
	}
}

func TestBindKeyDispatchesPressAndRelease(t *testing.T) {
	for _, sc := range []scancode.Scancode{scancode.Unknown, scancode.A, scancode.Space, scancode.Num - 1} {
		tbl := NewTable()
		r := &recorder{}
		if err := tbl.BindKey(sc, r); err != nil {
			t.Fatalf("BindKey(%v) error = %v", sc, err)
		}

		tbl.FireEvent(input.KeyDown(sc))
		r.assert(t, true)
		tbl.FireEvent(input.KeyUp(sc))
		r.assert(t, true, false)
	}
}

func TestBindKeyOutOfRange(t *testing.T) {
	tbl := NewTable()
	r := &recorder{}
	if err := tbl.BindKey(scancode.A, r); err != nil {
		t.Fatalf("BindKey(A) error = %v", err)
	}

	for _, sc := range []scancode.Scancode{-1, scancode.Num, scancode.Num + 100} {
		err := tbl.BindKey(sc, &recorder{})
		if !errors.Is(err, ErrScancodeRange) {
			t.Errorf("BindKey(%d) error = %v, want ErrScancodeRange", int(sc), err)
		}
		if err := tbl.UnbindKey(sc); !errors.Is(err, ErrScancodeRange) {
			t.Errorf("UnbindKey(%d) error = %v, want ErrScancodeRange", int(sc), err)
		}
	}

	if got := tbl.BoundKeys(); !reflect.DeepEqual(got, []scancode.Scancode{scancode.A}) {
		t.Errorf("BoundKeys() = %v, want [A]", got)
	}
	tbl.FireEvent(input.KeyDown(scancode.A))
	r.assert(t, true)
}

func TestBindKeyOverwrites(t *testing.T) {
	tbl := NewTable()
	first, second := &recorder{}, &recorder{}

	_ = tbl.BindKey(scancode.W, first)
	_ = tbl.BindKey(scancode.W, second)
	tbl.FireEvent(input.KeyDown(scancode.W))

	first.assert(t)
	second.assert(t, true)
}

func TestUnbindKey(t *testing.T) {
	tbl := NewTable()
	r := &recorder{}

	_ = tbl.BindKey(scancode.D, r)
	if err := tbl.UnbindKey(scancode.D); err != nil {
		t.Fatalf("UnbindKey error = %v", err)
	}
	tbl.FireEvent(input.KeyDown(scancode.D))

	r.assert(t)
	if l := tbl.KeyListener(scancode.D); l != nil {
		t.Errorf("KeyListener(D) = %v, want nil", l)
	}
}

func TestBindNilListenerFuncUnbinds(t *testing.T) {
	tbl := NewTable()
	_ = tbl.BindKey(scancode.E, &recorder{})

	var fn ListenerFunc
	if err := tbl.BindKey(scancode.E, fn); err != nil {
		t.Fatalf("BindKey error = %v", err)
	}
	if l := tbl.KeyListener(scancode.E); l != nil {
		t.Errorf("KeyListener(E) = %v, want nil", l)
	}
	tbl.FireEvent(input.KeyDown(scancode.E))
}

func TestSameListenerOnManySlots(t *testing.T) {
	tbl := NewTable()
	r := &recorder{}

	_ = tbl.BindKey(scancode.Up, r)
	_ = tbl.BindKey(scancode.W, r)
	_ = tbl.BindMouseButton(mouse.ButtonLeft, r)

	tbl.FireEvent(input.KeyDown(scancode.Up))
	tbl.FireEvent(input.KeyDown(scancode.W))
	tbl.FireEvent(input.MouseUp(mouse.ButtonLeft))
	r.assert(t, true, true, false)
}

func TestResetBindings(t *testing.T) {
	tbl := NewTable()
	r := &recorder{}
	for i := 0; i < scancode.Num; i++ {
		_ = tbl.BindKey(scancode.Scancode(i), r)
	}
	for b := 0; b < mouse.MaxButtons; b++ {
		_ = tbl.BindMouseButton(mouse.Button(b), r)
	}

	tbl.ResetBindings()

	for i := 0; i < scancode.Num; i++ {
		tbl.FireEvent(input.KeyDown(scancode.Scancode(i)))
		tbl.FireEvent(input.KeyUp(scancode.Scancode(i)))
	}
	for b := 0; b < mouse.MaxButtons; b++ {
		tbl.FireEvent(input.MouseDown(mouse.Button(b)))
		tbl.FireEvent(input.MouseUp(mouse.Button(b)))
	}
	r.assert(t)

	if keys := tbl.BoundKeys(); len(keys) != 0 {
		t.Errorf("BoundKeys() after reset = %v, want none", keys)
	}
}

func TestFireEventIgnoresUnboundAndOutOfRange(t *testing.T) {
	tbl := NewTable()
	r := &recorder{}
	_ = tbl.BindKey(scancode.A, r)
	_ = tbl.BindMouseButton(mouse.ButtonLeft, r)

	tbl.FireEvent(input.KeyDown(scancode.B))
	tbl.FireEvent(input.KeyDown(-1))
	tbl.FireEvent(input.KeyDown(scancode.Num))
	tbl.FireEvent(input.MouseDown(mouse.ButtonRight))
	tbl.FireEvent(input.MouseDown(mouse.Button(32)))
	tbl.FireEvent(input.MouseDown(mouse.Button(255)))

	r.assert(t)
}

func TestFireEventIgnoresOtherKinds(t *testing.T) {
	tbl := NewTable()
	r := &recorder{}
	_ = tbl.BindKey(scancode.A, r)
	_ = tbl.BindMouseButton(mouse.ButtonLeft, r)

	kinds := []input.Kind{
		input.KindNone,
		input.KindMouseMotion,
		input.KindMouseWheel,
		input.KindResize,
		input.KindQuit,
		input.Kind(99),
	}
	for _, k := range kinds {
		tbl.FireEvent(input.Event{Kind: k, Scancode: scancode.A, Button: mouse.ButtonLeft})
	}
	r.assert(t)
}

func TestBindMouseButton(t *testing.T) {
	tbl := NewTable()
	r := &recorder{}

	if err := tbl.BindMouseButton(mouse.Button(31), r); err != nil {
		t.Fatalf("BindMouseButton(31) error = %v", err)
	}
	tbl.FireEvent(input.MouseDown(31))
	tbl.FireEvent(input.MouseUp(31))
	r.assert(t, true, false)

	if err := tbl.BindMouseButton(mouse.Button(32), r); !errors.Is(err, ErrMouseButtonRange) {
		t.Errorf("BindMouseButton(32) error = %v, want ErrMouseButtonRange", err)
	}
	if got := tbl.BoundMouseButtons(); !reflect.DeepEqual(got, []mouse.Button{31}) {
		t.Errorf("BoundMouseButtons() = %v, want [31]", got)
	}

	if err := tbl.UnbindMouseButton(31); err != nil {
		t.Fatalf("UnbindMouseButton(31) error = %v", err)
	}
	tbl.FireEvent(input.MouseDown(31))
	r.assert(t, true, false)
}

func TestKeyboardAndMouseSlotsAreSeparate(t *testing.T) {
	tbl := NewTable()
	keyRec, mouseRec := &recorder{}, &recorder{}

	// Scancode 1 and mouse button 1 share an index but not a slot.
	_ = tbl.BindKey(scancode.Scancode(1), keyRec)
	_ = tbl.BindMouseButton(mouse.Button(1), mouseRec)

	tbl.FireEvent(input.MouseDown(1))
	keyRec.assert(t)
	mouseRec.assert(t, true)
}

func TestBindKeyByName(t *testing.T) {
	tests := []struct {
		name string
		want scancode.Scancode
	}{
		{"a", scancode.A},
		{"4", scancode.Num4},
		{"scancode 7", scancode.Scancode(7)},
		{"0x10", scancode.Scancode(16)},
		{"Left Ctrl", scancode.LCtrl},
		{"nonexistent_key_xyz", scancode.Unknown},
	}

	for _, tt := range tests {
		tbl := NewTable()
		r := &recorder{}
		if err := tbl.BindKeyByName(tt.name, r); err != nil {
			t.Errorf("BindKeyByName(%q) error = %v", tt.name, err)
			continue
		}
		if got := tbl.BoundKeys(); !reflect.DeepEqual(got, []scancode.Scancode{tt.want}) {
			t.Errorf("BindKeyByName(%q) bound %v, want [%v]", tt.name, got, tt.want)
		}
	}
}

func TestBindKeyByKeyNameUsesLayout(t *testing.T) {
	tests := []struct {
		layout *key.Layout
		name   string
		want   scancode.Scancode
	}{
		{key.US, "a", scancode.A},
		{key.AZERTY, "a", scancode.Q},
		{key.Dvorak, "s", scancode.Semicolon},
		{key.AZERTY, "Return", scancode.Return},
		{key.AZERTY, "1", scancode.Unknown},
	}

	for _, tt := range tests {
		tbl := NewTable(WithLayout(tt.layout))
		r := &recorder{}
		if err := tbl.BindKeyByKeyName(tt.name, r); err != nil {
			t.Errorf("BindKeyByKeyName(%q) error = %v", tt.name, err)
			continue
		}
		if tbl.KeyListener(tt.want) == nil {
			t.Errorf("%s: BindKeyByKeyName(%q) did not bind %v (bound %v)", tt.layout.Name(), tt.name, tt.want, tbl.BoundKeys())
		}
	}
}

func TestBindKeyByScancodeName(t *testing.T) {
	tests := []struct {
		name string
		want scancode.Scancode
	}{
		{"A", scancode.A},
		{"keypad enter", scancode.KPEnter},
		{"4", scancode.Num4},
		// No literal or prefix handling.
		{"26", scancode.Unknown},
		{"scancode 4", scancode.Unknown},
	}

	for _, tt := range tests {
		tbl := NewTable(WithLayout(key.AZERTY))
		if err := tbl.BindKeyByScancodeName(tt.name, &recorder{}); err != nil {
			t.Errorf("BindKeyByScancodeName(%q) error = %v", tt.name, err)
			continue
		}
		if tbl.KeyListener(tt.want) == nil {
			t.Errorf("BindKeyByScancodeName(%q) did not bind %v (bound %v)", tt.name, tt.want, tbl.BoundKeys())
		}
	}
}

func TestUnresolvedNameBindsUnknownAndWarns(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})
	tbl := NewTable(WithLogger(log))
	r := &recorder{}

	if err := tbl.BindKeyByName("nonexistent_key_xyz", r); err != nil {
		t.Fatalf("BindKeyByName error = %v", err)
	}
	if tbl.KeyListener(scancode.Unknown) != r {
		t.Error("unresolved name did not bind the unknown scancode")
	}
	if !strings.Contains(buf.String(), `"nonexistent_key_xyz" did not resolve`) {
		t.Errorf("missing warning, log = %q", buf.String())
	}

	// A real key event never reaches the dead binding.
	tbl.FireEvent(input.KeyDown(scancode.A))
	r.assert(t)
}

func TestListenerRebindsDuringDispatch(t *testing.T) {
	tbl := NewTable()
	after := &recorder{}
	var calls int

	var first ListenerFunc
	first = func(active bool) {
		calls++
		if err := tbl.BindKey(scancode.Space, after); err != nil {
			t.Errorf("BindKey in callback error = %v", err)
		}
	}
	_ = tbl.BindKey(scancode.Space, first)

	tbl.FireEvent(input.KeyDown(scancode.Space))
	if calls != 1 {
		t.Fatalf("first listener called %d times, want 1", calls)
	}
	after.assert(t)

	tbl.FireEvent(input.KeyUp(scancode.Space))
	if calls != 1 {
		t.Errorf("first listener called %d times after rebind, want 1", calls)
	}
	after.assert(t, false)
}

func TestListenerFunc(t *testing.T) {
	var got []bool
	tbl := NewTable()
	_ = tbl.BindKeyByName("Return", ListenerFunc(func(active bool) {
		got = append(got, active)
	}))

	tbl.FireEvent(input.KeyDown(scancode.Return))
	tbl.FireEvent(input.KeyUp(scancode.Return))
	if !reflect.DeepEqual(got, []bool{true, false}) {
		t.Errorf("got %v, want [true false]", got)
	}
}
