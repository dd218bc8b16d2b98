package key

import (
	"testing"

	"github.com/dshills/keybind/internal/input/scancode"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"a", 'a'},
		{"A", 'a'},
		{"4", '4'},
		{";", ';'},
		{"é", 'é'},
		{"Return", Return},
		{"return", Return},
		{"Escape", Escape},
		{"Space", Space},
		{"Backspace", Backspace},
		{"Delete", Delete},
		{"F1", F1},
		{"Up", Up},
		{"Left Shift", LShift},
		{"Keypad 7", FromScancode(scancode.KP7)},
		{"", None},
		{"nonexistent_key_xyz", None},
	}

	for _, tt := range tests {
		if got := FromName(tt.name); got != tt.want {
			t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{None, ""},
		{'a', "A"},
		{'4', "4"},
		{'[', "["},
		{Return, "Return"},
		{Tab, "Tab"},
		{Space, "Space"},
		{Delete, "Delete"},
		{F12, "F12"},
		{RAlt, "Right Alt"},
		{FromScancode(scancode.KPEnter), "Keypad Enter"},
	}

	for _, tt := range tests {
		if got := tt.key.Name(); got != tt.want {
			t.Errorf("Key(%d).Name() = %q, want %q", int32(tt.key), got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	if got := None.String(); got != "Key(0)" {
		t.Errorf("None.String() = %q, want %q", got, "Key(0)")
	}
	if got := Key('q').String(); got != "Q" {
		t.Errorf("Key('q').String() = %q, want %q", got, "Q")
	}
}

func TestNameRoundTrip(t *testing.T) {
	keys := []Key{'a', 'z', '0', '/', Return, Escape, Space, F5, Home, LCtrl}
	for _, k := range keys {
		if got := FromName(k.Name()); got != k {
			t.Errorf("FromName(%q) = %v, want %v", k.Name(), got, k)
		}
	}
}

func TestScancodeFromName(t *testing.T) {
	tests := []struct {
		name   string
		layout *Layout
		want   scancode.Scancode
	}{
		{"a", US, scancode.A},
		{"Q", US, scancode.Q},
		{"q", AZERTY, scancode.A},
		{"a", AZERTY, scancode.Q},
		{"m", AZERTY, scancode.Semicolon},
		{"1", AZERTY, scancode.Unknown},
		{"&", AZERTY, scancode.Num1},
		{"s", Dvorak, scancode.Semicolon},
		{"Return", AZERTY, scancode.Return},
		{"F3", Dvorak, scancode.F3},
		{"nonexistent_key_xyz", US, scancode.Unknown},
	}

	for _, tt := range tests {
		if got := ScancodeFromName(tt.name, tt.layout); got != tt.want {
			t.Errorf("ScancodeFromName(%q, %s) = %v, want %v", tt.name, tt.layout.Name(), got, tt.want)
		}
	}
}
