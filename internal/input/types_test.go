package input

import (
	"testing"

	"github.com/dshills/keybind/internal/input/mouse"
	"github.com/dshills/keybind/internal/input/scancode"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNone, "none"},
		{KindKeyDown, "key-down"},
		{KindKeyUp, "key-up"},
		{KindMouseButtonDown, "mouse-down"},
		{KindMouseButtonUp, "mouse-up"},
		{KindMouseMotion, "mouse-motion"},
		{KindMouseWheel, "mouse-wheel"},
		{KindResize, "resize"},
		{KindQuit, "quit"},
		{Kind(200), "none"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestKindClassification(t *testing.T) {
	for k := KindNone; k <= KindQuit; k++ {
		wantKey := k == KindKeyDown || k == KindKeyUp
		wantMouse := k == KindMouseButtonDown || k == KindMouseButtonUp
		if k.IsKey() != wantKey {
			t.Errorf("%s.IsKey() = %v, want %v", k, k.IsKey(), wantKey)
		}
		if k.IsMouseButton() != wantMouse {
			t.Errorf("%s.IsMouseButton() = %v, want %v", k, k.IsMouseButton(), wantMouse)
		}
	}
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		kind   Kind
		active bool
	}{
		{"key down", KeyDown(scancode.A), KindKeyDown, true},
		{"key up", KeyUp(scancode.A), KindKeyUp, false},
		{"mouse down", MouseDown(mouse.ButtonLeft), KindMouseButtonDown, true},
		{"mouse up", MouseUp(mouse.ButtonLeft), KindMouseButtonUp, false},
		{"motion", Event{Kind: KindMouseMotion}, KindMouseMotion, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.event.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.event.Kind, tt.kind)
			}
			if got := tt.event.Active(); got != tt.active {
				t.Errorf("Active() = %v, want %v", got, tt.active)
			}
		})
	}
}
